package api

import (
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/shopspring/decimal"
)

// Суммы отдаются строками, чтобы клиент не терял точность.

type OrderResponse struct {
	ID              string                 `json:"id"`
	AdvertisementID int64                  `json:"advertisementId"`
	BuyerID         int64                  `json:"buyerId"`
	SellerID        int64                  `json:"sellerId"`
	CryptoAmount    decimal.Decimal        `json:"cryptoAmount"`
	FiatAmount      decimal.Decimal        `json:"fiatAmount"`
	Rate            decimal.Decimal        `json:"rate"`
	Status          domain.OrderStatus     `json:"status"`
	PaymentDetails  domain.PaymentSnapshot `json:"paymentDetails"`
	CreatedAt       time.Time              `json:"createdAt"`
	PaidAt          *time.Time             `json:"paidAt,omitempty"`
	CompletedAt     *time.Time             `json:"completedAt,omitempty"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		AdvertisementID: o.AdvertisementID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		CryptoAmount:    o.CryptoAmount,
		FiatAmount:      o.FiatAmount,
		Rate:            o.Rate,
		Status:          o.Status,
		PaymentDetails:  o.PaymentSnapshot,
		CreatedAt:       o.CreatedAt,
		PaidAt:          o.PaidAt,
		CompletedAt:     o.CompletedAt,
	}
}

type AdvertisementResponse struct {
	ID                int64           `json:"id"`
	OwnerID           int64           `json:"ownerId"`
	Side              domain.Side     `json:"side"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	MinLimit          decimal.Decimal `json:"minLimit"`
	MaxLimit          decimal.Decimal `json:"maxLimit"`
	RemainingQuantity decimal.Decimal `json:"remainingQuantity"`
	PaymentMethodIDs  []int64         `json:"paymentMethodIds"`
	Terms             string          `json:"terms,omitempty"`
	Status            domain.AdStatus `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func newAdvertisementResponse(a *domain.Advertisement) AdvertisementResponse {
	return AdvertisementResponse{
		ID:                a.ID,
		OwnerID:           a.OwnerID,
		Side:              a.Side,
		UnitPrice:         a.UnitPrice,
		MinLimit:          a.MinLimit,
		MaxLimit:          a.MaxLimit,
		RemainingQuantity: a.RemainingQuantity,
		PaymentMethodIDs:  a.PaymentMethodIDs,
		Terms:             a.Terms,
		Status:            a.Status,
		CreatedAt:         a.CreatedAt,
	}
}

type MessageResponse struct {
	ID            int64     `json:"id"`
	OrderID       string    `json:"orderId"`
	SenderID      *int64    `json:"senderId,omitempty"`
	Text          string    `json:"text"`
	AttachmentURL *string   `json:"attachmentUrl,omitempty"`
	IsSystem      bool      `json:"isSystem"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newMessageResponse(m *domain.ChatMessage) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		OrderID:       m.OrderID,
		SenderID:      m.SenderID,
		Text:          m.Text,
		AttachmentURL: m.AttachmentURL,
		IsSystem:      m.IsSystem,
		CreatedAt:     m.CreatedAt,
	}
}

type AuditRecordResponse struct {
	ID        int64              `json:"id"`
	ActorID   int64              `json:"actorId"`
	Action    domain.AuditAction `json:"action"`
	Details   map[string]string  `json:"details"`
	CreatedAt time.Time          `json:"createdAt"`
}

type WalletResponse struct {
	Available decimal.Decimal `json:"available"`
	Locked    decimal.Decimal `json:"locked"`
	Total     decimal.Decimal `json:"total"`
}

type LedgerEntryResponse struct {
	ID              int64                  `json:"id"`
	OrderID         *string                `json:"orderId,omitempty"`
	AdvertisementID *int64                 `json:"advertisementId,omitempty"`
	Kind            domain.LedgerEntryKind `json:"kind"`
	Amount          decimal.Decimal        `json:"amount"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type PaymentMethodResponse struct {
	ID            int64       `json:"id"`
	BankName      domain.Bank `json:"bankName"`
	AccountNumber string      `json:"accountNumber"`
	AccountHolder string      `json:"accountHolder"`
	NationalID    string      `json:"nationalId"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func newPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:            m.ID,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		AccountHolder: m.AccountHolder,
		NationalID:    m.NationalID,
		CreatedAt:     m.CreatedAt,
	}
}

type UserResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	TradesCount int64     `json:"tradesCount"`
	IsArbiter   bool      `json:"isArbiter"`
	CreatedAt   time.Time `json:"createdAt"`
}
