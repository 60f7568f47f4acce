package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/sirupsen/logrus"
)

const maxChatMessageLength = 2000

// ChatService журнал переписки по заказу. Сообщения только добавляются.
type ChatService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	chatRepo  ChatMessageRepository
	notifier  Notifier
	arbiters  ArbiterChecker
	l         *logrus.Entry
}

func NewChatService(u uow.UOW, notifier Notifier, arbiters ArbiterChecker, l *logrus.Logger) (*ChatService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	chatRepo, err := uow.GetRepositoryAs[ChatMessageRepository](u, uow.RepositoryName(repoargs.ChatMessageRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ChatService{
		uow:       u,
		orderRepo: orderRepo,
		chatRepo:  chatRepo,
		notifier:  notifier,
		arbiters:  arbiters,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "chat",
		}),
	}, nil
}

type AppendMessageArgs struct {
	OrderID       string
	SenderID      int64
	Text          string
	AttachmentURL *string
}

// Append добавляет сообщение участника сделки в чат заказа.
func (s *ChatService) Append(ctx context.Context, args AppendMessageArgs) (*domain.ChatMessage, error) {
	text := strings.TrimSpace(args.Text)
	var attachment *string
	if args.AttachmentURL != nil && strings.TrimSpace(*args.AttachmentURL) != "" {
		trimmed := strings.TrimSpace(*args.AttachmentURL)
		attachment = &trimmed
	}
	if text == "" && attachment == nil {
		return nil, domain.NewValidationError("text", "text or attachment is required")
	}
	if utf8.RuneCountInString(text) > maxChatMessageLength {
		return nil, domain.NewValidationError("text", fmt.Sprintf("must be at most %d characters", maxChatMessageLength))
	}

	order, err := s.orderRepo.FindByID(ctx, args.OrderID)
	if err != nil {
		return nil, fmt.Errorf("appending message: %w", err)
	}
	if authErr := requireParty(args.SenderID)(order); authErr != nil {
		return nil, authErr
	}

	senderID := args.SenderID
	msg, err := s.chatRepo.Create(ctx, repoargs.ChatMessageCreate{
		OrderID:       order.ID,
		SenderID:      &senderID,
		Text:          text,
		AttachmentURL: attachment,
	})
	if err != nil {
		return nil, fmt.Errorf("appending message: %w", err)
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventChatMessage,
		OrderID:   order.ID,
		Status:    order.Status,
		ActorID:   senderID,
		Message:   msg,
		Timestamp: msg.CreatedAt,
	})
	return msg, nil
}

// History возвращает переписку по заказу в порядке добавления. Доступна участникам и арбитрам.
func (s *ChatService) History(ctx context.Context, orderID string, callerID int64) ([]domain.ChatMessage, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting chat history: %w", err)
	}
	if !order.IsParty(callerID) {
		isArbiter, arbErr := s.arbiters.IsArbiter(ctx, callerID)
		if arbErr != nil {
			return nil, fmt.Errorf("getting chat history: %w", arbErr)
		}
		if !isArbiter {
			return nil, fmt.Errorf("user %d may not read chat of order %s: %w", callerID, orderID, domain.ErrUnauthorized)
		}
	}
	messages, err := s.chatRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting chat history: %w", err)
	}
	return messages, nil
}

func (s *ChatService) publish(ctx context.Context, event domain.Event) {
	if s.notifier == nil {
		return
	}
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultNotifyTimeout)
	defer cancel()

	if err := s.notifier.Publish(notifyCtx, event); err != nil {
		s.l.WithError(err).WithField("orderID", event.OrderID).Warn("chat event delivery failed")
	}
}

// appendSystemMessage пишет системное сообщение в чат в транзакции tx.
func appendSystemMessage(ctx context.Context, tx uow.TX, orderID, text string) (*domain.ChatMessage, error) {
	repo, err := uow.GetAs[ChatMessageRepository](tx, uow.RepositoryName(repoargs.ChatMessageRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	msg, err := repo.Create(ctx, repoargs.ChatMessageCreate{
		OrderID:  orderID,
		Text:     text,
		IsSystem: true,
	})
	if err != nil {
		return nil, fmt.Errorf("appending system message: %w", err)
	}
	return msg, nil
}
