package repoargs

import "github.com/fsdevblog/p2p-escrow/internal/domain"

type AuditRecordCreate struct {
	OrderID string
	ActorID int64
	Action  domain.AuditAction
	Details map[string]string
}
