package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdvertisementServiceTestSuite struct {
	suite.Suite
	*escrowMocks
	ads *AdvertisementService
}

func TestAdvertisementServiceSuite(t *testing.T) {
	suite.Run(t, new(AdvertisementServiceTestSuite))
}

func (s *AdvertisementServiceTestSuite) SetupTest() {
	s.escrowMocks = newEscrowMocks(gomock.NewController(s.T()))

	ads, err := NewAdvertisementService(s.mockUOW, s.mockLedger, s.logger)
	s.Require().NoError(err)
	s.ads = ads
}

func (s *AdvertisementServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AdvertisementServiceTestSuite) publishArgs(side domain.Side) PublishAdArgs {
	return PublishAdArgs{
		OwnerID:          makerID,
		Side:             side,
		UnitPrice:        decimal.NewFromInt(40),
		MinLimit:         decimal.NewFromInt(400),
		MaxLimit:         decimal.NewFromInt(4000),
		Quantity:         decimal.NewFromInt(500),
		PaymentMethodIDs: []int64{1, 1},
		Terms:            "Pago Movil only",
	}
}

func (s *AdvertisementServiceTestSuite) expectCreate() {
	s.mockAds.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AdvertisementCreate) (*domain.Advertisement, error) {
			s.Equal([]int64{1}, args.PaymentMethodIDs)
			return &domain.Advertisement{
				ID: 7, OwnerID: args.OwnerID, Side: args.Side, UnitPrice: args.UnitPrice,
				MinLimit: args.MinLimit, MaxLimit: args.MaxLimit, RemainingQuantity: args.Quantity,
				PaymentMethodIDs: args.PaymentMethodIDs, Terms: args.Terms, Status: domain.AdStatusActive,
			}, nil
		})
}

func (s *AdvertisementServiceTestSuite) TestPublishSellLocksQuantity() {
	s.mockMethods.EXPECT().GetActiveByUserID(gomock.Any(), makerID).
		Return([]domain.PaymentMethod{{ID: 1, UserID: makerID, IsActive: true}}, nil)
	s.expectCreate()
	s.mockLedger.EXPECT().
		Lock(gomock.Any(), s.mockTX, makerID, gomock.Any(), domain.AdvertisementRef(7)).
		DoAndReturn(func(_ context.Context, _ uow.TX, _ int64, amount decimal.Decimal, _ domain.LedgerRef) error {
			s.True(amount.Equal(decimal.NewFromInt(500)))
			return nil
		})

	ad, err := s.ads.Publish(s.T().Context(), s.publishArgs(domain.SideSell))
	s.Require().NoError(err)
	s.Equal(int64(7), ad.ID)
}

func (s *AdvertisementServiceTestSuite) TestPublishSellInsufficientFunds() {
	s.mockMethods.EXPECT().GetActiveByUserID(gomock.Any(), makerID).
		Return([]domain.PaymentMethod{{ID: 1, UserID: makerID, IsActive: true}}, nil)
	s.expectCreate()
	s.mockLedger.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrInsufficientFunds)

	_, err := s.ads.Publish(s.T().Context(), s.publishArgs(domain.SideSell))
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *AdvertisementServiceTestSuite) TestPublishBuyDoesNotLock() {
	s.mockMethods.EXPECT().GetActiveByUserID(gomock.Any(), makerID).
		Return([]domain.PaymentMethod{{ID: 1, UserID: makerID, IsActive: true}}, nil)
	s.expectCreate()
	s.mockLedger.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.ads.Publish(s.T().Context(), s.publishArgs(domain.SideBuy))
	s.Require().NoError(err)
}

func (s *AdvertisementServiceTestSuite) TestPublishValidation() {
	cases := []struct {
		name   string
		modify func(a *PublishAdArgs)
	}{
		{name: "unknown side", modify: func(a *PublishAdArgs) { a.Side = "HOLD" }},
		{name: "zero price", modify: func(a *PublishAdArgs) { a.UnitPrice = decimal.Zero }},
		{name: "negative quantity", modify: func(a *PublishAdArgs) { a.Quantity = decimal.NewFromInt(-1) }},
		{name: "min above max", modify: func(a *PublishAdArgs) { a.MinLimit = decimal.NewFromInt(5000) }},
		{name: "no payment methods", modify: func(a *PublishAdArgs) { a.PaymentMethodIDs = nil }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			args := s.publishArgs(domain.SideSell)
			tc.modify(&args)
			_, err := s.ads.Publish(s.T().Context(), args)
			s.Require().ErrorIs(err, domain.ErrValidation)
		})
	}

	s.Run("foreign payment method", func() {
		s.mockMethods.EXPECT().GetActiveByUserID(gomock.Any(), makerID).
			Return([]domain.PaymentMethod{{ID: 2, UserID: makerID, IsActive: true}}, nil)
		s.mockAds.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.ads.Publish(s.T().Context(), s.publishArgs(domain.SideSell))
		s.Require().ErrorIs(err, domain.ErrValidation)
	})
}

func (s *AdvertisementServiceTestSuite) TestListActiveDefaults() {
	s.mockAds.EXPECT().ListActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repoargs.AdvertisementFilter) ([]domain.Advertisement, error) {
			s.Equal(domain.SideSell, filter.Side)
			s.Equal(defaultAdsPageLimit, filter.Limit)
			s.False(filter.FiatAmount.Valid)
			return []domain.Advertisement{{ID: 1}}, nil
		})

	ads, err := s.ads.ListActive(s.T().Context(), ListAdsArgs{})
	s.Require().NoError(err)
	s.Len(ads, 1)

	_, err = s.ads.ListActive(s.T().Context(), ListAdsArgs{Bank: "CHASE"})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *AdvertisementServiceTestSuite) TestPauseResumeClose() {
	ad := &domain.Advertisement{
		ID: 3, OwnerID: makerID, Side: domain.SideSell,
		RemainingQuantity: decimal.NewFromInt(120), Status: domain.AdStatusActive,
	}
	s.mockAds.EXPECT().FindForUpdate(gomock.Any(), ad.ID).Return(ad, nil).AnyTimes()
	s.mockAds.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.Run("stranger may not pause", func() {
		_, err := s.ads.Pause(s.T().Context(), ad.ID, takerID)
		s.Require().ErrorIs(err, domain.ErrUnauthorized)
	})

	s.Run("pause and resume", func() {
		paused, err := s.ads.Pause(s.T().Context(), ad.ID, makerID)
		s.Require().NoError(err)
		s.Equal(domain.AdStatusPaused, paused.Status)

		resumed, err := s.ads.Resume(s.T().Context(), ad.ID, makerID)
		s.Require().NoError(err)
		s.Equal(domain.AdStatusActive, resumed.Status)
	})

	s.Run("close unlocks remaining", func() {
		s.mockLedger.EXPECT().
			Unlock(gomock.Any(), s.mockTX, makerID, gomock.Any(), domain.AdvertisementRef(ad.ID)).
			DoAndReturn(func(_ context.Context, _ uow.TX, _ int64, amount decimal.Decimal, _ domain.LedgerRef) error {
				s.True(amount.Equal(decimal.NewFromInt(120)))
				return nil
			})

		closed, err := s.ads.Close(s.T().Context(), ad.ID, makerID)
		s.Require().NoError(err)
		s.Equal(domain.AdStatusFinished, closed.Status)
		s.True(closed.RemainingQuantity.IsZero())
	})

	s.Run("closed advertisement stays closed", func() {
		_, err := s.ads.Resume(s.T().Context(), ad.ID, makerID)
		s.Require().ErrorIs(err, domain.ErrAdUnavailable)

		_, err = s.ads.Close(s.T().Context(), ad.ID, makerID)
		s.Require().ErrorIs(err, domain.ErrAdUnavailable)
	})
}
