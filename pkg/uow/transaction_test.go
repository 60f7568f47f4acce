package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

type stubRepo struct {
	db DBTX
}

type stubReader interface {
	read() string
}

func (s *stubRepo) read() string { return "ok" }

func (s *TransactionTestSuite) TestGetAs() {
	tx := NewTransaction(nil, map[RepositoryName]RepositoryFactory{
		"stub": func(db DBTX) Repository { return &stubRepo{db: db} },
		"int":  func(DBTX) Repository { return 1 },
	})

	repo, err := GetAs[stubReader](tx, "stub")
	s.Require().NoError(err)
	s.Equal("ok", repo.read())

	_, err = GetAs[stubReader](tx, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)

	_, err = GetAs[stubReader](tx, "int")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)
}

func (s *TransactionTestSuite) TestRegisterTwice() {
	u := NewUnitOfWork(nil)
	factory := func(DBTX) Repository { return &stubRepo{} }
	s.Require().NoError(u.Register("stub", factory))
	s.Require().ErrorIs(u.Register("stub", factory), ErrRepositoryAlreadyRegistered)

	_, err := GetRepositoryAs[stubReader](u, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}
