package expiry

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
)

type Servicer interface {
	ExpiredOrders(ctx context.Context, limit uint) ([]domain.Order, error)
	CancelExpired(ctx context.Context, orderID string) (*domain.Order, error)
}
