package pgrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id::text, created_at, updated_at, paid_at, completed_at, advertisement_id, buyer_id, seller_id,
	crypto_amount::text, fiat_amount::text, rate::text, status, payment_snapshot`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func (o *OrderRepository) Create(ctx context.Context, args repoargs.OrderCreate) (*domain.Order, error) {
	snapshot, marshalErr := json.Marshal(args.PaymentSnapshot)
	if marshalErr != nil {
		return nil, convertErr(marshalErr, "marshaling payment snapshot of order `%s`", args.ID)
	}
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders
			(id, advertisement_id, buyer_id, seller_id, crypto_amount, fiat_amount, rate, payment_snapshot)
		VALUES ($1::text::uuid, $2, $3, $4, $5::text::numeric, $6::text::numeric, $7::text::numeric, $8::jsonb)
		RETURNING `+orderColumns,
		args.ID,
		args.AdvertisementID,
		args.BuyerID,
		args.SellerID,
		args.CryptoAmount,
		args.FiatAmount,
		args.Rate,
		snapshot,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order `%s`", args.ID)
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1::text::uuid`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order `%s`", id)
	}
	return order, nil
}

// FindForUpdate читает заказ с блокировкой строки. Все переходы статуса заказа сериализуются этой блокировкой.
func (o *OrderRepository) FindForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1::text::uuid FOR UPDATE`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "locking order `%s`", id)
	}
	return order, nil
}

// UpdateStatus переводит заказ из статуса From в To и проставляет временные метки оплаты и завершения.
// Если заказ уже не в статусе From, вернется ErrRecordNotFound.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.OrderStatusUpdate) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders
		SET status = $3,
			updated_at = now(),
			paid_at = CASE WHEN $3 = 'PAID' THEN now() ELSE paid_at END,
			completed_at = CASE WHEN $3 IN ('COMPLETED', 'CANCELLED', 'RESOLVED') THEN now() ELSE completed_at END
		WHERE id = $1::text::uuid AND status = $2
		RETURNING `+orderColumns,
		args.ID, args.From, args.To,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "moving order `%s` from %s to %s", args.ID, args.From, args.To)
	}
	return order, nil
}

// GetByUserID возвращает заказы, где пользователь покупатель или продавец, новые первыми.
func (o *OrderRepository) GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Order, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	safeOffset, offsetErr := safeConvertUintToInt32(offset)
	if offsetErr != nil {
		return nil, convertErr(offsetErr, "converting offset to int32")
	}
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE buyer_id = $1 OR seller_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		userID, safeLimit, safeOffset,
	)
	if err != nil {
		return nil, convertErr(err, "getting orders by userID `%d`", userID)
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, convertErr(err, "getting orders by userID `%d`", userID)
	}
	return orders, nil
}

// GetExpired возвращает неоплаченные заказы, созданные раньше createdBefore, старые первыми.
func (o *OrderRepository) GetExpired(ctx context.Context, createdBefore time.Time, limit uint) ([]domain.Order, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE status = 'CREATED' AND created_at < $1
		ORDER BY created_at
		LIMIT $2`,
		createdBefore, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting orders created before %s", createdBefore)
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, convertErr(err, "getting orders created before %s", createdBefore)
	}
	return orders, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()
	var orders = make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err() //nolint:wrapcheck
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var snapshot []byte
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.PaidAt,
		&order.CompletedAt,
		&order.AdvertisementID,
		&order.BuyerID,
		&order.SellerID,
		&order.CryptoAmount,
		&order.FiatAmount,
		&order.Rate,
		&order.Status,
		&snapshot,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if err := json.Unmarshal(snapshot, &order.PaymentSnapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling payment snapshot: %w", err)
	}
	return &order, nil
}
