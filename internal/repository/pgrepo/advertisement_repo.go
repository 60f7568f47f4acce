package pgrepo

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
)

const advertisementColumns = `id, created_at, updated_at, owner_id, side, unit_price::text, min_limit::text,
	max_limit::text, remaining_quantity::text, payment_method_ids, terms, status`

type AdvertisementRepository struct {
	conn uow.DBTX
}

func NewAdvertisementRepository(conn uow.DBTX) *AdvertisementRepository {
	return &AdvertisementRepository{conn: conn}
}

func (a *AdvertisementRepository) Create(
	ctx context.Context,
	args repoargs.AdvertisementCreate,
) (*domain.Advertisement, error) {
	row := a.conn.QueryRow(ctx,
		`INSERT INTO advertisements
			(owner_id, side, unit_price, min_limit, max_limit, remaining_quantity, payment_method_ids, terms)
		VALUES ($1, $2, $3::text::numeric, $4::text::numeric, $5::text::numeric, $6::text::numeric, $7, $8)
		RETURNING `+advertisementColumns,
		args.OwnerID,
		args.Side,
		args.UnitPrice,
		args.MinLimit,
		args.MaxLimit,
		args.Quantity,
		args.PaymentMethodIDs,
		args.Terms,
	)
	ad, err := scanAdvertisement(row)
	if err != nil {
		return nil, convertErr(err, "creating %s advertisement for user %d", args.Side, args.OwnerID)
	}
	return ad, nil
}

func (a *AdvertisementRepository) FindByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+advertisementColumns+` FROM advertisements WHERE id = $1`, id)
	ad, err := scanAdvertisement(row)
	if err != nil {
		return nil, convertErr(err, "finding advertisement %d", id)
	}
	return ad, nil
}

// FindForUpdate читает объявление с блокировкой строки. Все резервирования остатка идут через эту блокировку.
func (a *AdvertisementRepository) FindForUpdate(ctx context.Context, id int64) (*domain.Advertisement, error) {
	row := a.conn.QueryRow(ctx,
		`SELECT `+advertisementColumns+` FROM advertisements WHERE id = $1 FOR UPDATE`, id,
	)
	ad, err := scanAdvertisement(row)
	if err != nil {
		return nil, convertErr(err, "locking advertisement %d", id)
	}
	return ad, nil
}

// Update сохраняет остаток и статус объявления. Остаток в БД не может увеличиться.
func (a *AdvertisementRepository) Update(ctx context.Context, args repoargs.AdvertisementUpdate) error {
	tag, err := a.conn.Exec(ctx,
		`UPDATE advertisements
		SET remaining_quantity = $2::text::numeric, status = $3, updated_at = now()
		WHERE id = $1 AND remaining_quantity >= $2::text::numeric`,
		args.ID, args.RemainingQuantity, args.Status,
	)
	if err != nil {
		return convertErr(err, "updating advertisement %d", args.ID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRows, "updating advertisement %d", args.ID)
	}
	return nil
}

// ListActive возвращает страницу активных объявлений. Продажи отсортированы по возрастанию цены,
// покупки по убыванию, при равной цене по id, поэтому выборку можно продолжать смещением.
func (a *AdvertisementRepository) ListActive(
	ctx context.Context,
	filter repoargs.AdvertisementFilter,
) ([]domain.Advertisement, error) {
	limit, limitErr := safeConvertUintToInt32(filter.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	offset, offsetErr := safeConvertUintToInt32(filter.Offset)
	if offsetErr != nil {
		return nil, convertErr(offsetErr, "converting offset to int32")
	}

	rows, err := a.conn.Query(ctx,
		`SELECT `+advertisementColumns+` FROM advertisements a
		WHERE a.status = 'ACTIVE'
		  AND a.side = $1
		  AND ($2::text::numeric IS NULL OR $2::text::numeric BETWEEN a.min_limit AND a.max_limit)
		  AND ($3 = '' OR EXISTS (
			SELECT 1 FROM payment_methods pm
			WHERE pm.id = ANY (a.payment_method_ids) AND pm.is_active AND pm.bank_name = $3
		  ))
		ORDER BY
			CASE WHEN $1 = 'SELL' THEN a.unit_price END,
			CASE WHEN $1 = 'BUY' THEN a.unit_price END DESC,
			a.id
		LIMIT $4 OFFSET $5`,
		filter.Side, filter.FiatAmount, filter.Bank, limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing %s advertisements", filter.Side)
	}
	defer rows.Close()

	var ads = make([]domain.Advertisement, 0, filter.Limit)
	for rows.Next() {
		ad, scanErr := scanAdvertisement(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning advertisement")
		}
		ads = append(ads, *ad)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing %s advertisements", filter.Side)
	}
	return ads, nil
}

func scanAdvertisement(row rowScanner) (*domain.Advertisement, error) {
	var ad domain.Advertisement
	if err := row.Scan(
		&ad.ID,
		&ad.CreatedAt,
		&ad.UpdatedAt,
		&ad.OwnerID,
		&ad.Side,
		&ad.UnitPrice,
		&ad.MinLimit,
		&ad.MaxLimit,
		&ad.RemainingQuantity,
		&ad.PaymentMethodIDs,
		&ad.Terms,
		&ad.Status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ad, nil
}
