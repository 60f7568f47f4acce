package pgrepo

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
)

const userColumns = "id, created_at, username, trades_count, is_arbiter"

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (username, is_arbiter) VALUES ($1, $2) RETURNING `+userColumns,
		args.Username, args.IsArbiter,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.Username)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username `%s`", username)
	}
	return user, nil
}

// IncrementTradesCount увеличивает счетчик завершенных сделок у каждого из пользователей.
func (u *UserRepository) IncrementTradesCount(ctx context.Context, ids ...int64) error {
	if _, err := u.conn.Exec(ctx,
		`UPDATE users SET trades_count = trades_count + 1 WHERE id = ANY($1)`, ids,
	); err != nil {
		return convertErr(err, "incrementing trades count for users `%v`", ids)
	}
	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.Username, &user.TradesCount, &user.IsArbiter); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
