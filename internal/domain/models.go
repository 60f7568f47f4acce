package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// CryptoScale кол-во знаков после запятой для сумм в USDT.
	CryptoScale int32 = 8
	// FiatScale кол-во знаков после запятой для сумм в фиате.
	FiatScale int32 = 2
)

type User struct {
	ID          int64
	CreatedAt   time.Time
	Username    string
	TradesCount int64
	IsArbiter   bool
}

type Wallet struct {
	UserID    int64
	UpdatedAt time.Time
	Available decimal.Decimal
	Locked    decimal.Decimal
}

// LedgerRef указывает, к какому заказу или объявлению относится движение средств.
type LedgerRef struct {
	OrderID         *string
	AdvertisementID *int64
}

func OrderRef(orderID string) LedgerRef {
	return LedgerRef{OrderID: &orderID}
}

func AdvertisementRef(adID int64) LedgerRef {
	return LedgerRef{AdvertisementID: &adID}
}

type LedgerEntry struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Ref       LedgerRef
	Kind      LedgerEntryKind
	Amount    decimal.Decimal
}

type PaymentMethod struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	BankName      Bank
	AccountNumber string
	AccountHolder string
	NationalID    string
	IsActive      bool
}

// PaymentDetails реквизиты продавца, зафиксированные в заказе на момент его создания.
type PaymentDetails struct {
	BankName      Bank   `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	NationalID    string `json:"nationalId"`
}

type PaymentSnapshot []PaymentDetails

type Advertisement struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	OwnerID           int64
	Side              Side
	UnitPrice         decimal.Decimal
	MinLimit          decimal.Decimal
	MaxLimit          decimal.Decimal
	RemainingQuantity decimal.Decimal
	PaymentMethodIDs  []int64
	Terms             string
	Status            AdStatus
}

type Order struct {
	ID              string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PaidAt          *time.Time
	CompletedAt     *time.Time
	AdvertisementID int64
	BuyerID         int64
	SellerID        int64
	CryptoAmount    decimal.Decimal
	FiatAmount      decimal.Decimal
	Rate            decimal.Decimal
	Status          OrderStatus
	PaymentSnapshot PaymentSnapshot
}

type ChatMessage struct {
	ID            int64
	CreatedAt     time.Time
	OrderID       string
	SenderID      *int64
	Text          string
	AttachmentURL *string
	IsSystem      bool
}

type AuditRecord struct {
	ID        int64
	CreatedAt time.Time
	OrderID   string
	ActorID   int64
	Action    AuditAction
	Details   map[string]string
}

// Event уведомление об изменении заказа, отправляемое после фиксации транзакции.
type Event struct {
	Type      EventType
	OrderID   string
	Status    OrderStatus
	ActorID   int64
	Message   *ChatMessage
	Timestamp time.Time
}
