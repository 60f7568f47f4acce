package pgrepo

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/shopspring/decimal"
)

// Суммы читаются как text и разбираются decimal.Decimal без потери точности.
const walletColumns = "user_id, updated_at, available::text, locked::text"

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

func (w *WalletRepository) Create(ctx context.Context, userID int64, available decimal.Decimal) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx,
		`INSERT INTO wallets (user_id, available) VALUES ($1, $2::text::numeric) RETURNING `+walletColumns,
		userID, available,
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "creating wallet for user %d", userID)
	}
	return wallet, nil
}

func (w *WalletRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "finding wallet of user %d", userID)
	}
	return wallet, nil
}

// FindForUpdate читает кошелек с блокировкой строки до конца транзакции.
func (w *WalletRepository) FindForUpdate(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 FOR UPDATE`, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "locking wallet of user %d", userID)
	}
	return wallet, nil
}

// UpdateBalances сохраняет остатки кошелька. Вызывается только сервисом леджера.
func (w *WalletRepository) UpdateBalances(ctx context.Context, wallet domain.Wallet) error {
	tag, err := w.conn.Exec(ctx,
		`UPDATE wallets SET available = $2::text::numeric, locked = $3::text::numeric, updated_at = now()
		WHERE user_id = $1`,
		wallet.UserID, wallet.Available, wallet.Locked,
	)
	if err != nil {
		return convertErr(err, "updating wallet of user %d", wallet.UserID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRows, "updating wallet of user %d", wallet.UserID)
	}
	return nil
}

func scanWallet(row rowScanner) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := row.Scan(&wallet.UserID, &wallet.UpdatedAt, &wallet.Available, &wallet.Locked); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &wallet, nil
}
