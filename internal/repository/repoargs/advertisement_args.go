package repoargs

import (
	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/shopspring/decimal"
)

type AdvertisementCreate struct {
	OwnerID          int64
	Side             domain.Side
	UnitPrice        decimal.Decimal
	MinLimit         decimal.Decimal
	MaxLimit         decimal.Decimal
	Quantity         decimal.Decimal
	PaymentMethodIDs []int64
	Terms            string
}

type AdvertisementUpdate struct {
	ID                int64
	RemainingQuantity decimal.Decimal
	Status            domain.AdStatus
}

// AdvertisementFilter параметры выборки активных объявлений. FiatAmount и Bank опциональны.
type AdvertisementFilter struct {
	Side       domain.Side
	FiatAmount decimal.NullDecimal
	Bank       string
	Limit      uint
	Offset     uint
}
