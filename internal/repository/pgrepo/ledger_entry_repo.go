package pgrepo

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const ledgerEntryColumns = "id, created_at, user_id, order_id::text, advertisement_id, kind, amount::text"

// LedgerEntryRepository журнал движений по кошелькам. Записи только добавляются.
type LedgerEntryRepository struct {
	conn uow.DBTX
}

func NewLedgerEntryRepository(conn uow.DBTX) *LedgerEntryRepository {
	return &LedgerEntryRepository{conn: conn}
}

func (l *LedgerEntryRepository) Create(
	ctx context.Context,
	args repoargs.LedgerEntryCreate,
) (*domain.LedgerEntry, error) {
	row := l.conn.QueryRow(ctx,
		`INSERT INTO ledger_entries (user_id, order_id, advertisement_id, kind, amount)
		VALUES ($1, $2::text::uuid, $3, $4, $5::text::numeric)
		RETURNING `+ledgerEntryColumns,
		args.UserID, args.Ref.OrderID, args.Ref.AdvertisementID, args.Kind, args.Amount,
	)
	entry, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating %s ledger entry for user %d", args.Kind, args.UserID)
	}
	return entry, nil
}

// GetByOrderID возвращает движения по заказу в порядке их записи.
func (l *LedgerEntryRepository) GetByOrderID(ctx context.Context, orderID string) ([]domain.LedgerEntry, error) {
	rows, err := l.conn.Query(ctx,
		`SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE order_id = $1::text::uuid ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "getting ledger entries of order `%s`", orderID)
	}
	entries, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, convertErr(err, "getting ledger entries of order `%s`", orderID)
	}
	return entries, nil
}

// GetByUserID возвращает последние движения пользователя, новые первыми.
func (l *LedgerEntryRepository) GetByUserID(
	ctx context.Context,
	userID int64,
	limit uint,
) ([]domain.LedgerEntry, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	rows, err := l.conn.Query(ctx,
		`SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE user_id = $1 ORDER BY id DESC LIMIT $2`,
		userID, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting ledger entries of user %d", userID)
	}
	entries, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, convertErr(err, "getting ledger entries of user %d", userID)
	}
	return entries, nil
}

func collectLedgerEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()
	var entries = make([]domain.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err() //nolint:wrapcheck
}

func scanLedgerEntry(row rowScanner) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	if err := row.Scan(
		&entry.ID,
		&entry.CreatedAt,
		&entry.UserID,
		&entry.Ref.OrderID,
		&entry.Ref.AdvertisementID,
		&entry.Kind,
		&entry.Amount,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &entry, nil
}
