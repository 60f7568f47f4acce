package repoargs

import (
	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerEntryCreate struct {
	UserID int64
	Ref    domain.LedgerRef
	Kind   domain.LedgerEntryKind
	Amount decimal.Decimal
}
