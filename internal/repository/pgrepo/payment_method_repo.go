package pgrepo

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
)

const paymentMethodColumns = "id, created_at, user_id, bank_name, account_number, account_holder, national_id, is_active"

type PaymentMethodRepository struct {
	conn uow.DBTX
}

func NewPaymentMethodRepository(conn uow.DBTX) *PaymentMethodRepository {
	return &PaymentMethodRepository{conn: conn}
}

func (p *PaymentMethodRepository) Create(
	ctx context.Context,
	args repoargs.PaymentMethodCreate,
) (*domain.PaymentMethod, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO payment_methods (user_id, bank_name, account_number, account_holder, national_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+paymentMethodColumns,
		args.UserID, args.BankName, args.AccountNumber, args.AccountHolder, args.NationalID,
	)
	method, err := scanPaymentMethod(row)
	if err != nil {
		return nil, convertErr(err, "creating payment method for user %d", args.UserID)
	}
	return method, nil
}

// GetActiveByUserID возвращает активные реквизиты пользователя в порядке добавления.
func (p *PaymentMethodRepository) GetActiveByUserID(ctx context.Context, userID int64) ([]domain.PaymentMethod, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+paymentMethodColumns+` FROM payment_methods WHERE user_id = $1 AND is_active ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting payment methods of user %d", userID)
	}
	defer rows.Close()

	var methods = make([]domain.PaymentMethod, 0)
	for rows.Next() {
		method, scanErr := scanPaymentMethod(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning payment method of user %d", userID)
		}
		methods = append(methods, *method)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting payment methods of user %d", userID)
	}
	return methods, nil
}

// Deactivate выключает реквизиты. Уже созданные заказы хранят свой снимок и не затрагиваются.
func (p *PaymentMethodRepository) Deactivate(ctx context.Context, id, userID int64) error {
	tag, err := p.conn.Exec(ctx,
		`UPDATE payment_methods SET is_active = FALSE WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return convertErr(err, "deactivating payment method %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRows, "deactivating payment method %d", id)
	}
	return nil
}

func scanPaymentMethod(row rowScanner) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	if err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UserID, &m.BankName, &m.AccountNumber, &m.AccountHolder, &m.NationalID, &m.IsActive,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
