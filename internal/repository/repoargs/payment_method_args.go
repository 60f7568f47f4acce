package repoargs

import "github.com/fsdevblog/p2p-escrow/internal/domain"

type PaymentMethodCreate struct {
	UserID        int64
	BankName      domain.Bank
	AccountNumber string
	AccountHolder string
	NationalID    string
}
