package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/sirupsen/logrus"
)

const maxDisputeReasonLength = 1000

// DisputeService открывает споры по заказам и разрешает их решением арбитра.
type DisputeService struct {
	*orderTransitioner
	orderRepo OrderRepository
	auditRepo AuditRecordRepository
	arbiters  ArbiterChecker
}

func NewDisputeService(
	u uow.UOW,
	ledger Ledger,
	notifier Notifier,
	arbiters ArbiterChecker,
	l *logrus.Logger,
) (*DisputeService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	auditRepo, err := uow.GetRepositoryAs[AuditRecordRepository](u, uow.RepositoryName(repoargs.AuditRecordRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &DisputeService{
		orderTransitioner: &orderTransitioner{
			uow:      u,
			ledger:   ledger,
			notifier: notifier,
			l: l.WithFields(logrus.Fields{
				"component": "service",
				"module":    "dispute",
			}),
		},
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		arbiters:  arbiters,
	}, nil
}

// RaiseDispute переводит заказ в спор по инициативе покупателя или продавца. Средства остаются в эскроу.
func (s *DisputeService) RaiseDispute(
	ctx context.Context,
	orderID string,
	callerID int64,
	reason string,
) (*domain.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}
	if utf8.RuneCountInString(reason) > maxDisputeReasonLength {
		return nil, domain.NewValidationError("reason", fmt.Sprintf("must be at most %d characters", maxDisputeReasonLength))
	}

	return s.run(ctx, transitionArgs{
		OrderID:   orderID,
		ActorID:   callerID,
		Action:    domain.OrderActionDispute,
		Authorize: requireParty(callerID),
		Effect: func(c context.Context, tx uow.TX, order *domain.Order) error {
			return s.audit(c, tx, repoargs.AuditRecordCreate{
				OrderID: order.ID,
				ActorID: callerID,
				Action:  domain.AuditActionDispute,
				Details: map[string]string{
					"reason":     reason,
					"fromStatus": string(order.Status),
				},
			})
		},
		Narration: func(order *domain.Order) string {
			return fmt.Sprintf("A dispute was opened by the %s: %s", roleOf(order, callerID), reason)
		},
	})
}

type ResolveDisputeArgs struct {
	OrderID   string
	ArbiterID int64
	WinnerID  int64
}

// ResolveDispute отдает средства из эскроу продавца победителю спора. Победителем может быть только
// покупатель или продавец заказа, иначе вернется domain.ErrInvalidWinner.
func (s *DisputeService) ResolveDispute(ctx context.Context, args ResolveDisputeArgs) (*domain.Order, error) {
	isArbiter, err := s.arbiters.IsArbiter(ctx, args.ArbiterID)
	if err != nil {
		return nil, fmt.Errorf("resolving dispute: %w", err)
	}
	if !isArbiter {
		return nil, fmt.Errorf("user %d may not resolve disputes: %w", args.ArbiterID, domain.ErrUnauthorized)
	}

	order, err := s.run(ctx, transitionArgs{
		OrderID: args.OrderID,
		ActorID: args.ArbiterID,
		Action:  domain.OrderActionResolve,
		Effect: func(c context.Context, tx uow.TX, order *domain.Order) error {
			if !order.IsParty(args.WinnerID) {
				return fmt.Errorf("user %d is not a party of order %s: %w", args.WinnerID, order.ID, domain.ErrInvalidWinner)
			}
			if settleErr := s.ledger.Settle(c, tx, order.SellerID, args.WinnerID, order.CryptoAmount,
				domain.OrderRef(order.ID)); settleErr != nil {
				return settleErr //nolint:wrapcheck
			}
			return s.audit(c, tx, repoargs.AuditRecordCreate{
				OrderID: order.ID,
				ActorID: args.ArbiterID,
				Action:  domain.AuditActionResolve,
				Details: map[string]string{
					"winnerId": strconv.FormatInt(args.WinnerID, 10),
					"winner":   roleOf(order, args.WinnerID),
					"amount":   order.CryptoAmount.String(),
				},
			})
		},
		Narration: func(order *domain.Order) string {
			return fmt.Sprintf("The arbiter resolved the dispute in favour of the %s.", roleOf(order, args.WinnerID))
		},
	})
	if err != nil {
		return nil, err
	}

	s.l.WithFields(logrus.Fields{
		"orderID":   order.ID,
		"arbiterID": args.ArbiterID,
		"winnerID":  args.WinnerID,
		"amount":    order.CryptoAmount.String(),
	}).Info("dispute resolved")
	return order, nil
}

// AuditTrail возвращает журнал действий по спору заказа. Доступен участникам и арбитрам.
func (s *DisputeService) AuditTrail(ctx context.Context, orderID string, callerID int64) ([]domain.AuditRecord, error) {
	isArbiter, err := s.arbiters.IsArbiter(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("getting audit trail: %w", err)
	}
	if !isArbiter {
		order, findErr := s.orderRepo.FindByID(ctx, orderID)
		if findErr != nil {
			return nil, fmt.Errorf("getting audit trail: %w", findErr)
		}
		if authErr := requireParty(callerID)(order); authErr != nil {
			return nil, authErr
		}
	}
	records, err := s.auditRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting audit trail: %w", err)
	}
	return records, nil
}

func (s *DisputeService) audit(ctx context.Context, tx uow.TX, args repoargs.AuditRecordCreate) error {
	repo, err := uow.GetAs[AuditRecordRepository](tx, uow.RepositoryName(repoargs.AuditRecordRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	if _, err = repo.Create(ctx, args); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}
