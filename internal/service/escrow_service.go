package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultOrdersPageLimit uint = 50
	maxOrdersPageLimit     uint = 200
)

// EscrowService ведет заказ по жизненному циклу CREATED -> PAID -> COMPLETED с ответвлениями в отмену и спор.
type EscrowService struct {
	*orderTransitioner
	orderRepo     OrderRepository
	paymentWindow time.Duration
	now           func() time.Time
}

func NewEscrowService(u uow.UOW, ledger Ledger, notifier Notifier, l *logrus.Logger) (*EscrowService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &EscrowService{
		orderTransitioner: &orderTransitioner{
			uow:      u,
			ledger:   ledger,
			notifier: notifier,
			l: l.WithFields(logrus.Fields{
				"component": "service",
				"module":    "escrow",
			}),
		},
		orderRepo:     orderRepo,
		paymentWindow: domain.DefaultPaymentWindow,
		now:           time.Now,
	}, nil
}

// SetPaymentWindow устанавливает срок, после которого неоплаченный заказ отменяется планировщиком.
func (s *EscrowService) SetPaymentWindow(window time.Duration) *EscrowService {
	if window > 0 {
		s.paymentWindow = window
	}
	return s
}

type CreateOrderArgs struct {
	TakerID         int64
	AdvertisementID int64
	FiatAmount      decimal.Decimal
}

// CreateOrder открывает заказ по объявлению. В одной транзакции:
//  1. Блокирует строку объявления и проверяет статус, лимиты и остаток.
//  2. Резервирует сумму в USDT из остатка объявления.
//  3. Удерживает USDT продавца под заказ: для объявления на продажу переносит часть блокировки
//     объявления, для объявления на покупку блокирует средства тейкера.
//  4. Фиксирует реквизиты продавца и пишет системное сообщение о сроке оплаты.
//
// Возвращает domain.ErrAdUnavailable, domain.ErrInsufficientFunds или *domain.ValidationError.
func (s *EscrowService) CreateOrder(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	if !args.FiatAmount.IsPositive() {
		return nil, domain.NewValidationError("fiatAmount", "must be positive")
	}
	fiat := args.FiatAmount.Truncate(domain.FiatScale)

	var order *domain.Order
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		ads, err := uow.GetAs[AdvertisementRepository](tx, uow.RepositoryName(repoargs.AdvertisementRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		ad, err := ads.FindForUpdate(c, args.AdvertisementID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if ad.OwnerID == args.TakerID {
			return domain.NewValidationError("advertisementId", "cannot trade against own advertisement")
		}
		if ad.Status != domain.AdStatusActive {
			return fmt.Errorf("advertisement %d is %s: %w", ad.ID, ad.Status, domain.ErrAdUnavailable)
		}
		if !ad.WithinLimits(fiat) {
			return fmt.Errorf("fiat amount %s outside limits [%s, %s]: %w",
				fiat, ad.MinLimit, ad.MaxLimit, domain.ErrAdUnavailable)
		}

		cryptoAmount := domain.CryptoAmount(fiat, ad.UnitPrice)
		if !cryptoAmount.IsPositive() {
			return fmt.Errorf("amount %s is below the minimal unit: %w", fiat, domain.ErrAdUnavailable)
		}
		if reserveErr := ad.Reserve(cryptoAmount); reserveErr != nil {
			return reserveErr //nolint:wrapcheck
		}
		if updErr := ads.Update(c, repoargs.AdvertisementUpdate{
			ID:                ad.ID,
			RemainingQuantity: ad.RemainingQuantity,
			Status:            ad.Status,
		}); updErr != nil {
			return updErr //nolint:wrapcheck
		}

		buyerID, sellerID := ad.Parties(args.TakerID)
		snapshot, err := s.paymentSnapshot(c, tx, ad, sellerID)
		if err != nil {
			return err
		}

		orders, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		order, err = orders.Create(c, repoargs.OrderCreate{
			ID:              uuid.NewString(),
			AdvertisementID: ad.ID,
			BuyerID:         buyerID,
			SellerID:        sellerID,
			CryptoAmount:    cryptoAmount,
			FiatAmount:      fiat,
			Rate:            ad.UnitPrice,
			PaymentSnapshot: snapshot,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		// По объявлению на продажу средства мейкера заблокированы при публикации под объявление,
		// их часть переводится под заказ.
		var holdErr error
		if ad.Side == domain.SideSell {
			holdErr = s.ledger.Reassign(c, tx, sellerID, cryptoAmount,
				domain.AdvertisementRef(ad.ID), domain.OrderRef(order.ID))
		} else {
			holdErr = s.ledger.Lock(c, tx, sellerID, cryptoAmount, domain.OrderRef(order.ID))
		}
		if holdErr != nil {
			return holdErr //nolint:wrapcheck
		}

		_, msgErr := appendSystemMessage(c, tx, order.ID, fmt.Sprintf(
			"Order created for %s USDT at %s VES. The buyer has %d minutes to pay %s VES and mark the order as paid.",
			order.CryptoAmount, order.Rate, int(s.paymentWindow.Minutes()), order.FiatAmount,
		))
		return msgErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating order: %w", txErr)
	}

	s.notify(ctx, domain.Event{
		Type:      domain.EventOrderCreated,
		OrderID:   order.ID,
		Status:    order.Status,
		ActorID:   args.TakerID,
		Timestamp: order.CreatedAt,
	})
	return order, nil
}

// paymentSnapshot собирает активные реквизиты продавца. Если продавец мейкер, берутся только реквизиты,
// указанные в объявлении.
func (s *EscrowService) paymentSnapshot(
	ctx context.Context,
	tx uow.TX,
	ad *domain.Advertisement,
	sellerID int64,
) (domain.PaymentSnapshot, error) {
	methodsRepo, err := uow.GetAs[PaymentMethodRepository](tx, uow.RepositoryName(repoargs.PaymentMethodRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	methods, err := methodsRepo.GetActiveByUserID(ctx, sellerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	var snapshot = make(domain.PaymentSnapshot, 0, len(methods))
	for _, m := range methods {
		if sellerID == ad.OwnerID && !slices.Contains(ad.PaymentMethodIDs, m.ID) {
			continue
		}
		snapshot = append(snapshot, domain.PaymentDetails{
			BankName:      m.BankName,
			AccountNumber: m.AccountNumber,
			AccountHolder: m.AccountHolder,
			NationalID:    m.NationalID,
		})
	}
	if len(snapshot) == 0 {
		return nil, domain.NewValidationError("paymentMethods", "seller has no active payment methods for this trade")
	}
	return snapshot, nil
}

// MarkPaid отмечает, что покупатель перевел фиат. Движения средств нет.
func (s *EscrowService) MarkPaid(ctx context.Context, orderID string, buyerID int64) (*domain.Order, error) {
	return s.run(ctx, transitionArgs{
		OrderID:   orderID,
		ActorID:   buyerID,
		Action:    domain.OrderActionMarkPaid,
		Authorize: requireBuyer(buyerID),
		Narration: func(*domain.Order) string {
			return "The buyer marked the order as paid. Seller, check the payment and release the funds."
		},
	})
}

// Release переводит USDT из эскроу продавца покупателю и завершает заказ. Повторный вызов вернет
// domain.ErrIllegalTransition, двойного списания не будет.
func (s *EscrowService) Release(ctx context.Context, orderID string, sellerID int64) (*domain.Order, error) {
	return s.run(ctx, transitionArgs{
		OrderID:   orderID,
		ActorID:   sellerID,
		Action:    domain.OrderActionRelease,
		Authorize: requireSeller(sellerID),
		Effect: func(c context.Context, tx uow.TX, order *domain.Order) error {
			if err := s.ledger.Settle(c, tx, order.SellerID, order.BuyerID, order.CryptoAmount,
				domain.OrderRef(order.ID)); err != nil {
				return err //nolint:wrapcheck
			}
			users, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
			if err != nil {
				return err //nolint:wrapcheck
			}
			return users.IncrementTradesCount(c, order.BuyerID, order.SellerID) //nolint:wrapcheck
		},
		Narration: func(order *domain.Order) string {
			return fmt.Sprintf("The seller released %s USDT. The order is completed.", order.CryptoAmount)
		},
	})
}

// Cancel отменяет неоплаченный заказ по инициативе покупателя или продавца и возвращает эскроу продавцу.
// Остаток объявления не восстанавливается.
func (s *EscrowService) Cancel(ctx context.Context, orderID string, actorID int64) (*domain.Order, error) {
	return s.run(ctx, transitionArgs{
		OrderID:   orderID,
		ActorID:   actorID,
		Action:    domain.OrderActionCancel,
		Authorize: requireParty(actorID),
		Effect:    s.refundSeller,
		Narration: func(order *domain.Order) string {
			return fmt.Sprintf("The order was cancelled by the %s.", roleOf(order, actorID))
		},
	})
}

// CancelExpired отменяет заказ, не оплаченный за отведенное время. Если покупатель успел оплатить,
// вернется domain.ErrIllegalTransition.
func (s *EscrowService) CancelExpired(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.run(ctx, transitionArgs{
		OrderID: orderID,
		Action:  domain.OrderActionCancel,
		Effect: func(c context.Context, tx uow.TX, order *domain.Order) error {
			if s.now().Before(order.CreatedAt.Add(s.paymentWindow)) {
				return domain.NewIllegalTransitionError(order.Status, domain.OrderActionCancel)
			}
			return s.refundSeller(c, tx, order)
		},
		Narration: func(*domain.Order) string {
			return "The order was cancelled automatically: the payment window expired."
		},
	})
}

func (s *EscrowService) refundSeller(ctx context.Context, tx uow.TX, order *domain.Order) error {
	return s.ledger.Unlock(ctx, tx, order.SellerID, order.CryptoAmount, domain.OrderRef(order.ID)) //nolint:wrapcheck
}

// ExpiredOrders возвращает неоплаченные заказы, срок оплаты которых истек.
func (s *EscrowService) ExpiredOrders(ctx context.Context, limit uint) ([]domain.Order, error) {
	orders, err := s.orderRepo.GetExpired(ctx, s.now().Add(-s.paymentWindow), limit)
	if err != nil {
		return nil, fmt.Errorf("getting expired orders: %w", err)
	}
	return orders, nil
}

// GetOrder возвращает заказ участнику сделки.
func (s *EscrowService) GetOrder(ctx context.Context, orderID string, callerID int64) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	if err := requireParty(callerID)(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByUserID возвращает заказы пользователя, новые первыми.
func (s *EscrowService) GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Order, error) {
	if limit == 0 {
		limit = defaultOrdersPageLimit
	}
	limit = min(limit, maxOrdersPageLimit)
	orders, err := s.orderRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("getting user orders: %w", err)
	}
	return orders, nil
}
