package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/sirupsen/logrus"
)

const defaultNotifyTimeout = 3 * time.Second

// orderTransitioner выполняет переход заказа по таблице состояний. Порядок всегда один и тот же:
// блокировка строки заказа, проверка прав, проверка перехода, движение средств, смена статуса,
// системное сообщение в чат, коммит и только потом уведомление.
type orderTransitioner struct {
	uow      uow.UOW
	ledger   Ledger
	notifier Notifier
	l        *logrus.Entry
}

type transitionArgs struct {
	OrderID string
	ActorID int64
	Action  domain.OrderAction
	// Authorize проверяет право actor на действие. nil означает системное действие.
	Authorize func(order *domain.Order) error
	// Effect выполняет движение средств и прочие побочные эффекты перехода в той же транзакции.
	Effect func(ctx context.Context, tx uow.TX, order *domain.Order) error
	// Narration текст системного сообщения в чат заказа.
	Narration func(order *domain.Order) string
}

func (t *orderTransitioner) run(ctx context.Context, args transitionArgs) (*domain.Order, error) {
	var updated *domain.Order
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orders, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		order, err := orders.FindForUpdate(c, args.OrderID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if args.Authorize != nil {
			if authErr := args.Authorize(order); authErr != nil {
				return authErr
			}
		}
		next, err := domain.NextOrderStatus(order.Status, args.Action)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if args.Effect != nil {
			if effectErr := args.Effect(c, tx, order); effectErr != nil {
				return effectErr
			}
		}
		updated, err = orders.UpdateStatus(c, repoargs.OrderStatusUpdate{
			ID:   order.ID,
			From: order.Status,
			To:   next,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if args.Narration != nil {
			if _, msgErr := appendSystemMessage(c, tx, order.ID, args.Narration(updated)); msgErr != nil {
				return msgErr
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("%s order %s: %w", args.Action, args.OrderID, txErr)
	}

	t.notify(ctx, domain.Event{
		Type:      domain.EventForStatus(updated.Status),
		OrderID:   updated.ID,
		Status:    updated.Status,
		ActorID:   args.ActorID,
		Timestamp: updated.UpdatedAt,
	})
	return updated, nil
}

// notify отправляет событие уже после коммита. Ошибка доставки не влияет на результат операции.
func (t *orderTransitioner) notify(ctx context.Context, event domain.Event) {
	if t.notifier == nil {
		return
	}
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultNotifyTimeout)
	defer cancel()

	if err := t.notifier.Publish(notifyCtx, event); err != nil {
		t.l.WithError(err).WithFields(logrus.Fields{
			"event":   event.Type,
			"orderID": event.OrderID,
		}).Warn("event delivery failed")
	}
}

func requireParty(actorID int64) func(*domain.Order) error {
	return func(order *domain.Order) error {
		if !order.IsParty(actorID) {
			return fmt.Errorf("user %d is not a party of order %s: %w", actorID, order.ID, domain.ErrUnauthorized)
		}
		return nil
	}
}

func requireBuyer(actorID int64) func(*domain.Order) error {
	return func(order *domain.Order) error {
		if order.BuyerID != actorID {
			return fmt.Errorf("user %d is not the buyer of order %s: %w", actorID, order.ID, domain.ErrUnauthorized)
		}
		return nil
	}
}

func requireSeller(actorID int64) func(*domain.Order) error {
	return func(order *domain.Order) error {
		if order.SellerID != actorID {
			return fmt.Errorf("user %d is not the seller of order %s: %w", actorID, order.ID, domain.ErrUnauthorized)
		}
		return nil
	}
}

func roleOf(order *domain.Order, userID int64) string {
	switch userID {
	case order.BuyerID:
		return "buyer"
	case order.SellerID:
		return "seller"
	default:
		return "arbiter"
	}
}
