package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultLedgerHistoryLimit uint = 50

// LedgerService единственная точка изменения кошельков. Lock, Unlock и Settle работают в транзакции
// вызывающего: кошельки читаются с блокировкой строки, меняются методами domain.Wallet и сохраняются
// вместе с записью в журнале движений.
type LedgerService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	entryRepo  LedgerEntryRepository
	l          *logrus.Entry
}

func NewLedgerService(u uow.UOW, l *logrus.Logger) (*LedgerService, error) {
	walletRepo, err := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	entryRepo, err := uow.GetRepositoryAs[LedgerEntryRepository](u, uow.RepositoryName(repoargs.LedgerEntryRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		uow:        u,
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "ledger",
		}),
	}, nil
}

// Lock блокирует amount на кошельке userID. Возвращает domain.ErrInsufficientFunds, если доступных средств мало.
func (s *LedgerService) Lock(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount decimal.Decimal,
	ref domain.LedgerRef,
) error {
	if err := s.applySingle(ctx, tx, userID, amount, ref, domain.LedgerEntryLock, (*domain.Wallet).Lock); err != nil {
		return fmt.Errorf("ledger lock: %w", err)
	}
	return nil
}

// Unlock возвращает amount из заблокированных средств userID в доступные.
func (s *LedgerService) Unlock(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount decimal.Decimal,
	ref domain.LedgerRef,
) error {
	if err := s.applySingle(ctx, tx, userID, amount, ref, domain.LedgerEntryUnlock, (*domain.Wallet).Unlock); err != nil {
		return fmt.Errorf("ledger unlock: %w", err)
	}
	return nil
}

// Settle списывает amount из заблокированных средств fromID и зачисляет в доступные toID.
// Кошельки блокируются в порядке возрастания id пользователя, чтобы встречные расчеты не взаимоблокировались.
func (s *LedgerService) Settle(
	ctx context.Context,
	tx uow.TX,
	fromID, toID int64,
	amount decimal.Decimal,
	ref domain.LedgerRef,
) error {
	if err := s.settle(ctx, tx, fromID, toID, amount, ref); err != nil {
		return fmt.Errorf("ledger settle: %w", err)
	}
	return nil
}

func (s *LedgerService) settle(
	ctx context.Context,
	tx uow.TX,
	fromID, toID int64,
	amount decimal.Decimal,
	ref domain.LedgerRef,
) error {
	wallets, entries, err := s.txRepos(tx)
	if err != nil {
		return err
	}

	firstID, secondID := fromID, toID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}
	locked := make(map[int64]*domain.Wallet, 2) //nolint:mnd
	for _, id := range []int64{firstID, secondID} {
		if _, ok := locked[id]; ok {
			continue
		}
		w, findErr := wallets.FindForUpdate(ctx, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		locked[id] = w
	}

	from, to := locked[fromID], locked[toID]
	if debitErr := from.Debit(amount); debitErr != nil {
		s.reportViolation(debitErr, ref)
		return debitErr
	}
	if creditErr := to.Credit(amount); creditErr != nil {
		s.reportViolation(creditErr, ref)
		return creditErr
	}

	for _, id := range []int64{firstID, secondID} {
		w, ok := locked[id]
		if !ok {
			continue
		}
		if updErr := wallets.UpdateBalances(ctx, *w); updErr != nil {
			s.reportViolation(updErr, ref)
			return updErr //nolint:wrapcheck
		}
		delete(locked, id)
	}

	if _, entryErr := entries.Create(ctx, repoargs.LedgerEntryCreate{
		UserID: fromID, Ref: ref, Kind: domain.LedgerEntrySettleDebit, Amount: amount,
	}); entryErr != nil {
		return entryErr //nolint:wrapcheck
	}
	if _, entryErr := entries.Create(ctx, repoargs.LedgerEntryCreate{
		UserID: toID, Ref: ref, Kind: domain.LedgerEntrySettleCredit, Amount: amount,
	}); entryErr != nil {
		return entryErr //nolint:wrapcheck
	}
	return nil
}

func (s *LedgerService) applySingle(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount decimal.Decimal,
	ref domain.LedgerRef,
	kind domain.LedgerEntryKind,
	op func(*domain.Wallet, decimal.Decimal) error,
) error {
	wallets, entries, err := s.txRepos(tx)
	if err != nil {
		return err
	}
	w, err := wallets.FindForUpdate(ctx, userID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if opErr := op(w, amount); opErr != nil {
		s.reportViolation(opErr, ref)
		return opErr
	}
	if updErr := wallets.UpdateBalances(ctx, *w); updErr != nil {
		s.reportViolation(updErr, ref)
		return updErr //nolint:wrapcheck
	}
	if _, entryErr := entries.Create(ctx, repoargs.LedgerEntryCreate{
		UserID: userID, Ref: ref, Kind: kind, Amount: amount,
	}); entryErr != nil {
		return entryErr //nolint:wrapcheck
	}
	return nil
}

// Reassign переносит уже заблокированные amount средств userID с основания from на основание to.
// Остатки кошелька не меняются, в журнал пишутся UNLOCK по from и LOCK по to.
func (s *LedgerService) Reassign(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount decimal.Decimal,
	from, to domain.LedgerRef,
) error {
	if err := s.reassign(ctx, tx, userID, amount, from, to); err != nil {
		return fmt.Errorf("ledger reassign: %w", err)
	}
	return nil
}

func (s *LedgerService) reassign(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount decimal.Decimal,
	from, to domain.LedgerRef,
) error {
	wallets, entries, err := s.txRepos(tx)
	if err != nil {
		return err
	}
	w, err := wallets.FindForUpdate(ctx, userID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	// после Unlock доступных средств хватает на Lock той же суммы, итоговые остатки прежние
	if opErr := w.Unlock(amount); opErr != nil {
		s.reportViolation(opErr, from)
		return opErr
	}
	if opErr := w.Lock(amount); opErr != nil {
		s.reportViolation(opErr, to)
		return opErr
	}

	if _, entryErr := entries.Create(ctx, repoargs.LedgerEntryCreate{
		UserID: userID, Ref: from, Kind: domain.LedgerEntryUnlock, Amount: amount,
	}); entryErr != nil {
		return entryErr //nolint:wrapcheck
	}
	if _, entryErr := entries.Create(ctx, repoargs.LedgerEntryCreate{
		UserID: userID, Ref: to, Kind: domain.LedgerEntryLock, Amount: amount,
	}); entryErr != nil {
		return entryErr //nolint:wrapcheck
	}
	return nil
}

// OpenWallet создает кошелек пользователя со стартовым остатком.
func (s *LedgerService) OpenWallet(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	opening decimal.Decimal,
) (*domain.Wallet, error) {
	if opening.IsNegative() {
		return nil, domain.NewValidationError("opening balance", "must not be negative")
	}
	wallets, err := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	w, err := wallets.Create(ctx, userID, opening)
	if err != nil {
		return nil, fmt.Errorf("opening wallet: %w", err)
	}
	return w, nil
}

// Balance возвращает текущие остатки кошелька.
func (s *LedgerService) Balance(ctx context.Context, userID int64) (*domain.Wallet, error) {
	w, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}
	return w, nil
}

// History возвращает последние движения по кошельку пользователя.
func (s *LedgerService) History(ctx context.Context, userID int64, limit uint) ([]domain.LedgerEntry, error) {
	if limit == 0 || limit > defaultLedgerHistoryLimit {
		limit = defaultLedgerHistoryLimit
	}
	entries, err := s.entryRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("getting ledger history: %w", err)
	}
	return entries, nil
}

// HeldForOrder считает сумму, которая по журналу движений сейчас удерживается в эскроу под заказ.
func (s *LedgerService) HeldForOrder(ctx context.Context, orderID string) (decimal.Decimal, error) {
	entries, err := s.entryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting ledger entries of order: %w", err)
	}
	held := decimal.Zero
	for _, e := range entries {
		switch e.Kind {
		case domain.LedgerEntryLock:
			held = held.Add(e.Amount)
		case domain.LedgerEntryUnlock, domain.LedgerEntrySettleDebit:
			held = held.Sub(e.Amount)
		case domain.LedgerEntrySettleCredit:
		}
	}
	return held, nil
}

func (s *LedgerService) txRepos(tx uow.TX) (WalletRepository, LedgerEntryRepository, error) {
	wallets, err := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	entries, err := uow.GetAs[LedgerEntryRepository](tx, uow.RepositoryName(repoargs.LedgerEntryRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	return wallets, entries, nil
}

// reportViolation пишет в лог подробности нарушения инварианта кошелька. Клиенту они не отдаются.
// Нарушение CHECK в БД приходит из репозитория как domain.ErrInvariantViolation без подробностей.
func (s *LedgerService) reportViolation(err error, ref domain.LedgerRef) {
	if !errors.Is(err, domain.ErrInvariantViolation) {
		return
	}
	fields := logrus.Fields{}
	var violation *domain.InvariantViolationError
	if errors.As(err, &violation) {
		fields["op"] = violation.Op
		fields["userID"] = violation.UserID
		fields["detail"] = violation.Detail
	} else {
		fields["detail"] = err.Error()
	}
	if ref.OrderID != nil {
		fields["orderID"] = *ref.OrderID
	}
	if ref.AdvertisementID != nil {
		fields["advertisementID"] = *ref.AdvertisementID
	}
	s.l.WithFields(fields).Error("ledger invariant violation")
}
