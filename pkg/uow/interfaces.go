package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TX открытая транзакция. Репозитории, полученные из нее, видят только ее изменения.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// DBTX общий интерфейс пула соединений и транзакции pgx, с которым работают репозитории.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	// Do выполняет fn в транзакции и коммитит ее, если fn не вернула ошибку.
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	// GetRepository возвращает репозиторий вне транзакции, для чтения.
	GetRepository(name RepositoryName) (Repository, error)
}
