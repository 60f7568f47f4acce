package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdvertisementTestSuite struct {
	suite.Suite
}

func TestAdvertisementSuite(t *testing.T) {
	suite.Run(t, new(AdvertisementTestSuite))
}

func (s *AdvertisementTestSuite) TestReserve() {
	ad := &Advertisement{ID: 1, Status: AdStatusActive, RemainingQuantity: decimal.NewFromInt(10)}

	s.Require().NoError(ad.Reserve(decimal.NewFromInt(4)))
	s.True(decimal.NewFromInt(6).Equal(ad.RemainingQuantity))
	s.Equal(AdStatusActive, ad.Status)

	s.Require().ErrorIs(ad.Reserve(decimal.NewFromInt(7)), ErrAdUnavailable)
	s.True(decimal.NewFromInt(6).Equal(ad.RemainingQuantity))

	s.Require().NoError(ad.Reserve(decimal.NewFromInt(6)))
	s.True(ad.RemainingQuantity.IsZero())
	s.Equal(AdStatusFinished, ad.Status)

	s.Require().ErrorIs(ad.Reserve(decimal.NewFromInt(1)), ErrAdUnavailable)
}

func (s *AdvertisementTestSuite) TestReservePaused() {
	ad := &Advertisement{ID: 1, Status: AdStatusActive, RemainingQuantity: decimal.NewFromInt(10)}
	s.Require().NoError(ad.Pause())
	s.Require().ErrorIs(ad.Reserve(decimal.NewFromInt(1)), ErrAdUnavailable)
	s.Require().NoError(ad.Resume())
	s.Require().NoError(ad.Reserve(decimal.NewFromInt(1)))
	s.Require().ErrorIs(ad.Resume(), ErrAdUnavailable)
}

func (s *AdvertisementTestSuite) TestClose() {
	ad := &Advertisement{ID: 1, Status: AdStatusPaused, RemainingQuantity: decimal.RequireFromString("2.5")}

	released, err := ad.Close()
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("2.5").Equal(released))
	s.Equal(AdStatusFinished, ad.Status)

	_, err = ad.Close()
	s.Require().ErrorIs(err, ErrAdUnavailable)
}

func (s *AdvertisementTestSuite) TestParties() {
	sell := &Advertisement{OwnerID: 1, Side: SideSell}
	buyer, seller := sell.Parties(2)
	s.Equal(int64(2), buyer)
	s.Equal(int64(1), seller)

	buy := &Advertisement{OwnerID: 1, Side: SideBuy}
	buyer, seller = buy.Parties(2)
	s.Equal(int64(1), buyer)
	s.Equal(int64(2), seller)
}

func (s *AdvertisementTestSuite) TestWithinLimits() {
	ad := &Advertisement{MinLimit: decimal.NewFromInt(100), MaxLimit: decimal.NewFromInt(500)}
	s.True(ad.WithinLimits(decimal.NewFromInt(100)))
	s.True(ad.WithinLimits(decimal.NewFromInt(500)))
	s.False(ad.WithinLimits(decimal.RequireFromString("99.99")))
	s.False(ad.WithinLimits(decimal.RequireFromString("500.01")))
}
