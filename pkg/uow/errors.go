package uow

import "errors"

var (
	ErrRepositoryNotRegistered     = errors.New("[uow] repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	ErrInvalidRepositoryType       = errors.New("[uow] invalid repository type")
	// ErrRetriesExhausted транзакция так и не прошла из-за конкурентного доступа.
	ErrRetriesExhausted = errors.New("[uow] transaction retries exhausted")
)
