package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
)

// PaymentMethodService реестр банковских реквизитов пользователей. Из него собирается снимок реквизитов заказа.
type PaymentMethodService struct {
	methodRepo PaymentMethodRepository
}

func NewPaymentMethodService(u uow.UOW) (*PaymentMethodService, error) {
	methodRepo, err := uow.GetRepositoryAs[PaymentMethodRepository](u, uow.RepositoryName(repoargs.PaymentMethodRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PaymentMethodService{methodRepo: methodRepo}, nil
}

type AddPaymentMethodArgs struct {
	UserID        int64
	BankName      string
	AccountNumber string
	AccountHolder string
	NationalID    string
}

// Add сохраняет реквизиты. Принимаются только банки из domain.SupportedBanks.
func (s *PaymentMethodService) Add(ctx context.Context, args AddPaymentMethodArgs) (*domain.PaymentMethod, error) {
	bank := strings.ToUpper(strings.TrimSpace(args.BankName))
	if !domain.IsSupportedBank(bank) {
		return nil, domain.NewValidationError("bankName", "unsupported bank")
	}
	account := strings.TrimSpace(args.AccountNumber)
	holder := strings.TrimSpace(args.AccountHolder)
	nationalID := strings.TrimSpace(args.NationalID)
	switch {
	case account == "":
		return nil, domain.NewValidationError("accountNumber", "is required")
	case holder == "":
		return nil, domain.NewValidationError("accountHolder", "is required")
	case nationalID == "":
		return nil, domain.NewValidationError("nationalId", "is required")
	}

	method, err := s.methodRepo.Create(ctx, repoargs.PaymentMethodCreate{
		UserID:        args.UserID,
		BankName:      domain.Bank(bank),
		AccountNumber: account,
		AccountHolder: holder,
		NationalID:    nationalID,
	})
	if err != nil {
		return nil, fmt.Errorf("adding payment method: %w", err)
	}
	return method, nil
}

func (s *PaymentMethodService) List(ctx context.Context, userID int64) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing payment methods: %w", err)
	}
	return methods, nil
}

func (s *PaymentMethodService) Deactivate(ctx context.Context, id, userID int64) error {
	if err := s.methodRepo.Deactivate(ctx, id, userID); err != nil {
		return fmt.Errorf("deactivating payment method: %w", err)
	}
	return nil
}
