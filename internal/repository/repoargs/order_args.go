package repoargs

import (
	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderCreate struct {
	ID              string
	AdvertisementID int64
	BuyerID         int64
	SellerID        int64
	CryptoAmount    decimal.Decimal
	FiatAmount      decimal.Decimal
	Rate            decimal.Decimal
	PaymentSnapshot domain.PaymentSnapshot
}

type OrderStatusUpdate struct {
	ID   string
	From domain.OrderStatus
	To   domain.OrderStatus
}
