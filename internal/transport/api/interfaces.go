package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/service"
)

type EscrowServicer interface {
	CreateOrder(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID string, buyerID int64) (*domain.Order, error)
	Release(ctx context.Context, orderID string, sellerID int64) (*domain.Order, error)
	Cancel(ctx context.Context, orderID string, actorID int64) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string, callerID int64) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Order, error)
}

type DisputeServicer interface {
	RaiseDispute(ctx context.Context, orderID string, callerID int64, reason string) (*domain.Order, error)
	ResolveDispute(ctx context.Context, args service.ResolveDisputeArgs) (*domain.Order, error)
	AuditTrail(ctx context.Context, orderID string, callerID int64) ([]domain.AuditRecord, error)
}

type AdServicer interface {
	Publish(ctx context.Context, args service.PublishAdArgs) (*domain.Advertisement, error)
	ListActive(ctx context.Context, args service.ListAdsArgs) ([]domain.Advertisement, error)
	Get(ctx context.Context, id int64) (*domain.Advertisement, error)
	Pause(ctx context.Context, adID, ownerID int64) (*domain.Advertisement, error)
	Resume(ctx context.Context, adID, ownerID int64) (*domain.Advertisement, error)
	Close(ctx context.Context, adID, ownerID int64) (*domain.Advertisement, error)
}

type ChatServicer interface {
	Append(ctx context.Context, args service.AppendMessageArgs) (*domain.ChatMessage, error)
	History(ctx context.Context, orderID string, callerID int64) ([]domain.ChatMessage, error)
}

type WalletServicer interface {
	Balance(ctx context.Context, userID int64) (*domain.Wallet, error)
	History(ctx context.Context, userID int64, limit uint) ([]domain.LedgerEntry, error)
}

type PaymentMethodServicer interface {
	Add(ctx context.Context, args service.AddPaymentMethodArgs) (*domain.PaymentMethod, error)
	List(ctx context.Context, userID int64) ([]domain.PaymentMethod, error)
	Deactivate(ctx context.Context, id, userID int64) error
}

type UserServicer interface {
	Profile(ctx context.Context, id int64) (*domain.User, error)
}
