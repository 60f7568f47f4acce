package service

import (
	"context"
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	IncrementTradesCount(ctx context.Context, ids ...int64) error
}

type WalletRepository interface {
	Create(ctx context.Context, userID int64, available decimal.Decimal) (*domain.Wallet, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	FindForUpdate(ctx context.Context, userID int64) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, wallet domain.Wallet) error
}

type LedgerEntryRepository interface {
	Create(ctx context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error)
	GetByOrderID(ctx context.Context, orderID string) ([]domain.LedgerEntry, error)
	GetByUserID(ctx context.Context, userID int64, limit uint) ([]domain.LedgerEntry, error)
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, args repoargs.PaymentMethodCreate) (*domain.PaymentMethod, error)
	GetActiveByUserID(ctx context.Context, userID int64) ([]domain.PaymentMethod, error)
	Deactivate(ctx context.Context, id, userID int64) error
}

type AdvertisementRepository interface {
	Create(ctx context.Context, args repoargs.AdvertisementCreate) (*domain.Advertisement, error)
	FindByID(ctx context.Context, id int64) (*domain.Advertisement, error)
	FindForUpdate(ctx context.Context, id int64) (*domain.Advertisement, error)
	Update(ctx context.Context, args repoargs.AdvertisementUpdate) error
	ListActive(ctx context.Context, filter repoargs.AdvertisementFilter) ([]domain.Advertisement, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.OrderCreate) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindForUpdate(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, args repoargs.OrderStatusUpdate) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Order, error)
	GetExpired(ctx context.Context, createdBefore time.Time, limit uint) ([]domain.Order, error)
}

type ChatMessageRepository interface {
	Create(ctx context.Context, args repoargs.ChatMessageCreate) (*domain.ChatMessage, error)
	GetByOrderID(ctx context.Context, orderID string) ([]domain.ChatMessage, error)
}

type AuditRecordRepository interface {
	Create(ctx context.Context, args repoargs.AuditRecordCreate) (*domain.AuditRecord, error)
	GetByOrderID(ctx context.Context, orderID string) ([]domain.AuditRecord, error)
}

// Ledger примитивы движения средств. Вызываются только внутри транзакции tx вызывающего.
type Ledger interface {
	Lock(ctx context.Context, tx uow.TX, userID int64, amount decimal.Decimal, ref domain.LedgerRef) error
	Unlock(ctx context.Context, tx uow.TX, userID int64, amount decimal.Decimal, ref domain.LedgerRef) error
	Settle(ctx context.Context, tx uow.TX, fromID, toID int64, amount decimal.Decimal, ref domain.LedgerRef) error
	Reassign(ctx context.Context, tx uow.TX, userID int64, amount decimal.Decimal, from, to domain.LedgerRef) error
}

// WalletOpener создает кошелек нового пользователя в транзакции tx.
type WalletOpener interface {
	OpenWallet(ctx context.Context, tx uow.TX, userID int64, opening decimal.Decimal) (*domain.Wallet, error)
}

// Notifier доставляет события клиентам. Вызывается только после фиксации транзакции.
type Notifier interface {
	Publish(ctx context.Context, event domain.Event) error
}

// ArbiterChecker определяет, есть ли у пользователя право разрешать споры.
type ArbiterChecker interface {
	IsArbiter(ctx context.Context, userID int64) (bool, error)
}
