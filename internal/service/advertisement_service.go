package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultAdsPageLimit uint = 20
	maxAdsPageLimit     uint = 100
	maxAdTermsLength         = 1000
)

type AdvertisementService struct {
	uow    uow.UOW
	adRepo AdvertisementRepository
	ledger Ledger
	l      *logrus.Entry
}

func NewAdvertisementService(u uow.UOW, ledger Ledger, l *logrus.Logger) (*AdvertisementService, error) {
	adRepo, err := uow.GetRepositoryAs[AdvertisementRepository](u, uow.RepositoryName(repoargs.AdvertisementRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &AdvertisementService{
		uow:    u,
		adRepo: adRepo,
		ledger: ledger,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "advertisement",
		}),
	}, nil
}

type PublishAdArgs struct {
	OwnerID          int64
	Side             domain.Side
	UnitPrice        decimal.Decimal
	MinLimit         decimal.Decimal
	MaxLimit         decimal.Decimal
	Quantity         decimal.Decimal
	PaymentMethodIDs []int64
	Terms            string
}

func (a PublishAdArgs) validate() error {
	switch {
	case a.Side != domain.SideBuy && a.Side != domain.SideSell:
		return domain.NewValidationError("side", "must be BUY or SELL")
	case !a.UnitPrice.IsPositive():
		return domain.NewValidationError("unitPrice", "must be positive")
	case !a.Quantity.IsPositive():
		return domain.NewValidationError("quantity", "must be positive")
	case !a.MinLimit.IsPositive():
		return domain.NewValidationError("minLimit", "must be positive")
	case a.MinLimit.GreaterThan(a.MaxLimit):
		return domain.NewValidationError("maxLimit", "must not be less than minLimit")
	case len(a.PaymentMethodIDs) == 0:
		return domain.NewValidationError("paymentMethods", "at least one payment method is required")
	case len([]rune(a.Terms)) > maxAdTermsLength:
		return domain.NewValidationError("terms", fmt.Sprintf("must be at most %d characters", maxAdTermsLength))
	}
	return nil
}

// Publish размещает объявление. Для объявления на продажу весь объем блокируется на кошельке владельца
// в той же транзакции, поэтому при нехватке средств объявление не создается.
func (s *AdvertisementService) Publish(ctx context.Context, args PublishAdArgs) (*domain.Advertisement, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	quantity := args.Quantity.Truncate(domain.CryptoScale)
	if !quantity.IsPositive() {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}
	methodIDs := slices.Clone(args.PaymentMethodIDs)
	slices.Sort(methodIDs)
	methodIDs = slices.Compact(methodIDs)

	var ad *domain.Advertisement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		methodsRepo, err := uow.GetAs[PaymentMethodRepository](tx, uow.RepositoryName(repoargs.PaymentMethodRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		owned, err := methodsRepo.GetActiveByUserID(c, args.OwnerID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		for _, id := range methodIDs {
			if !slices.ContainsFunc(owned, func(m domain.PaymentMethod) bool { return m.ID == id }) {
				return domain.NewValidationError("paymentMethods",
					fmt.Sprintf("payment method %d is not an active method of the publisher", id))
			}
		}

		ads, err := uow.GetAs[AdvertisementRepository](tx, uow.RepositoryName(repoargs.AdvertisementRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		ad, err = ads.Create(c, repoargs.AdvertisementCreate{
			OwnerID:          args.OwnerID,
			Side:             args.Side,
			UnitPrice:        args.UnitPrice,
			MinLimit:         args.MinLimit.Truncate(domain.FiatScale),
			MaxLimit:         args.MaxLimit.Truncate(domain.FiatScale),
			Quantity:         quantity,
			PaymentMethodIDs: methodIDs,
			Terms:            strings.TrimSpace(args.Terms),
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		if ad.Side == domain.SideSell {
			return s.ledger.Lock(c, tx, ad.OwnerID, quantity, domain.AdvertisementRef(ad.ID)) //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("publishing advertisement: %w", txErr)
	}

	s.l.WithFields(logrus.Fields{
		"advertisementID": ad.ID,
		"ownerID":         ad.OwnerID,
		"side":            ad.Side,
		"quantity":        ad.RemainingQuantity.String(),
	}).Debug("advertisement published")
	return ad, nil
}

type ListAdsArgs struct {
	Side       domain.Side
	FiatAmount decimal.NullDecimal
	Bank       string
	Limit      uint
	Offset     uint
}

// ListActive возвращает страницу активных объявлений. Продажа сортируется по цене по возрастанию,
// покупка по убыванию, при равной цене по id.
func (s *AdvertisementService) ListActive(ctx context.Context, args ListAdsArgs) ([]domain.Advertisement, error) {
	side := args.Side
	if side == "" {
		side = domain.SideSell
	}
	if side != domain.SideBuy && side != domain.SideSell {
		return nil, domain.NewValidationError("side", "must be BUY or SELL")
	}
	if args.Bank != "" && !domain.IsSupportedBank(args.Bank) {
		return nil, domain.NewValidationError("bank", "unsupported bank")
	}
	limit := args.Limit
	if limit == 0 {
		limit = defaultAdsPageLimit
	}
	limit = min(limit, maxAdsPageLimit)

	ads, err := s.adRepo.ListActive(ctx, repoargs.AdvertisementFilter{
		Side:       side,
		FiatAmount: args.FiatAmount,
		Bank:       args.Bank,
		Limit:      limit,
		Offset:     args.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing advertisements: %w", err)
	}
	return ads, nil
}

func (s *AdvertisementService) Get(ctx context.Context, id int64) (*domain.Advertisement, error) {
	ad, err := s.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting advertisement: %w", err)
	}
	return ad, nil
}

func (s *AdvertisementService) Pause(ctx context.Context, adID, ownerID int64) (*domain.Advertisement, error) {
	return s.change(ctx, adID, ownerID, "pause", func(_ context.Context, _ uow.TX, ad *domain.Advertisement) error {
		return ad.Pause() //nolint:wrapcheck
	})
}

func (s *AdvertisementService) Resume(ctx context.Context, adID, ownerID int64) (*domain.Advertisement, error) {
	return s.change(ctx, adID, ownerID, "resume", func(_ context.Context, _ uow.TX, ad *domain.Advertisement) error {
		return ad.Resume() //nolint:wrapcheck
	})
}

// Close снимает объявление. Незарезервированный остаток объявления на продажу возвращается владельцу.
// Закрытое объявление не открывается повторно.
func (s *AdvertisementService) Close(ctx context.Context, adID, ownerID int64) (*domain.Advertisement, error) {
	return s.change(ctx, adID, ownerID, "close", func(c context.Context, tx uow.TX, ad *domain.Advertisement) error {
		released, err := ad.Close()
		if err != nil {
			return err //nolint:wrapcheck
		}
		if ad.Side == domain.SideSell && released.IsPositive() {
			return s.ledger.Unlock(c, tx, ad.OwnerID, released, domain.AdvertisementRef(ad.ID)) //nolint:wrapcheck
		}
		return nil
	})
}

func (s *AdvertisementService) change(
	ctx context.Context,
	adID, ownerID int64,
	op string,
	apply func(ctx context.Context, tx uow.TX, ad *domain.Advertisement) error,
) (*domain.Advertisement, error) {
	var ad *domain.Advertisement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		ads, err := uow.GetAs[AdvertisementRepository](tx, uow.RepositoryName(repoargs.AdvertisementRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		ad, err = ads.FindForUpdate(c, adID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if ad.OwnerID != ownerID {
			return fmt.Errorf("user %d does not own advertisement %d: %w", ownerID, adID, domain.ErrUnauthorized)
		}
		if applyErr := apply(c, tx, ad); applyErr != nil {
			return applyErr
		}
		return ads.Update(c, repoargs.AdvertisementUpdate{ //nolint:wrapcheck
			ID:                ad.ID,
			RemainingQuantity: ad.RemainingQuantity,
			Status:            ad.Status,
		})
	})
	if txErr != nil {
		return nil, fmt.Errorf("%s advertisement %d: %w", op, adID, txErr)
	}
	return ad, nil
}
