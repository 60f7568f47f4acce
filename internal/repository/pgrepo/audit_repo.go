package pgrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
)

const auditRecordColumns = "id, created_at, order_id::text, actor_id, action, details"

// AuditRecordRepository журнал действий арбитража и споров. Записи только добавляются.
type AuditRecordRepository struct {
	conn uow.DBTX
}

func NewAuditRecordRepository(conn uow.DBTX) *AuditRecordRepository {
	return &AuditRecordRepository{conn: conn}
}

func (a *AuditRecordRepository) Create(
	ctx context.Context,
	args repoargs.AuditRecordCreate,
) (*domain.AuditRecord, error) {
	details, marshalErr := json.Marshal(args.Details)
	if marshalErr != nil {
		return nil, convertErr(marshalErr, "marshaling audit details of order `%s`", args.OrderID)
	}
	row := a.conn.QueryRow(ctx,
		`INSERT INTO audit_log (order_id, actor_id, action, details)
		VALUES ($1::text::uuid, $2, $3, $4::jsonb)
		RETURNING `+auditRecordColumns,
		args.OrderID, args.ActorID, args.Action, details,
	)
	record, err := scanAuditRecord(row)
	if err != nil {
		return nil, convertErr(err, "creating %s audit record for order `%s`", args.Action, args.OrderID)
	}
	return record, nil
}

func (a *AuditRecordRepository) GetByOrderID(ctx context.Context, orderID string) ([]domain.AuditRecord, error) {
	rows, err := a.conn.Query(ctx,
		`SELECT `+auditRecordColumns+` FROM audit_log WHERE order_id = $1::text::uuid ORDER BY created_at, id`,
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "getting audit records of order `%s`", orderID)
	}
	defer rows.Close()

	var records = make([]domain.AuditRecord, 0)
	for rows.Next() {
		record, scanErr := scanAuditRecord(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning audit record of order `%s`", orderID)
		}
		records = append(records, *record)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting audit records of order `%s`", orderID)
	}
	return records, nil
}

func scanAuditRecord(row rowScanner) (*domain.AuditRecord, error) {
	var record domain.AuditRecord
	var details []byte
	if err := row.Scan(
		&record.ID, &record.CreatedAt, &record.OrderID, &record.ActorID, &record.Action, &details,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if err := json.Unmarshal(details, &record.Details); err != nil {
		return nil, fmt.Errorf("unmarshaling audit details: %w", err)
	}
	return &record, nil
}
