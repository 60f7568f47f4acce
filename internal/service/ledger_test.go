package service

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/internal/service/mocks"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	uowmocks "github.com/fsdevblog/p2p-escrow/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockWalletRepo *mocks.MockWalletRepository
	mockEntryRepo  *mocks.MockLedgerEntryRepository
	ledger         *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockEntryRepo = mocks.NewMockLedgerEntryRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.LedgerEntryRepoName)).
		Return(s.mockEntryRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.LedgerEntryRepoName)).
		Return(s.mockEntryRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)
	ledger, err := NewLedgerService(s.mockUOW, l)
	s.Require().NoError(err)
	s.ledger = ledger
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func testWallet(userID int64, available, locked string) *domain.Wallet {
	return &domain.Wallet{
		UserID:    userID,
		Available: decimal.RequireFromString(available),
		Locked:    decimal.RequireFromString(locked),
	}
}

func (s *LedgerServiceTestSuite) TestLock() {
	ref := domain.OrderRef("order-1")

	s.Run("ok", func() {
		s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(testWallet(1, "100", "0"), nil)
		s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w domain.Wallet) error {
				s.True(w.Available.Equal(decimal.NewFromInt(60)))
				s.True(w.Locked.Equal(decimal.NewFromInt(40)))
				return nil
			})
		s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
				s.Equal(domain.LedgerEntryLock, args.Kind)
				s.Equal(int64(1), args.UserID)
				s.Equal(ref, args.Ref)
				return &domain.LedgerEntry{ID: 1, UserID: args.UserID, Kind: args.Kind, Amount: args.Amount}, nil
			})

		err := s.ledger.Lock(s.T().Context(), s.mockTX, 1, decimal.NewFromInt(40), ref)
		s.Require().NoError(err)
	})

	s.Run("insufficient funds", func() {
		s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(2)).Return(testWallet(2, "10", "0"), nil)
		s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Times(0)
		s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		err := s.ledger.Lock(s.T().Context(), s.mockTX, 2, decimal.NewFromInt(40), ref)
		s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	})
}

func (s *LedgerServiceTestSuite) TestUnlockViolation() {
	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(testWallet(1, "100", "5"), nil)
	s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Times(0)

	err := s.ledger.Unlock(s.T().Context(), s.mockTX, 1, decimal.NewFromInt(10), domain.OrderRef("order-1"))
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)

	var violation *domain.InvariantViolationError
	s.Require().ErrorAs(err, &violation)
	s.Equal(int64(1), violation.UserID)
}

func (s *LedgerServiceTestSuite) TestSettleLocksWalletsInAscendingOrder() {
	ref := domain.OrderRef("order-1")
	amount := decimal.RequireFromString("12.5")

	gomock.InOrder(
		s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(3)).Return(testWallet(3, "0", "0"), nil),
		s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(7)).Return(testWallet(7, "0", "20"), nil),
	)
	updated := make(map[int64]domain.Wallet)
	s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w domain.Wallet) error {
			updated[w.UserID] = w
			return nil
		}).Times(2)
	var kinds []domain.LedgerEntryKind
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
			kinds = append(kinds, args.Kind)
			return &domain.LedgerEntry{UserID: args.UserID, Kind: args.Kind, Amount: args.Amount}, nil
		}).Times(2)

	// продавец 7 отдает покупателю 3
	err := s.ledger.Settle(s.T().Context(), s.mockTX, 7, 3, amount, ref)
	s.Require().NoError(err)

	s.True(updated[7].Locked.Equal(decimal.RequireFromString("7.5")))
	s.True(updated[7].Available.IsZero())
	s.True(updated[3].Available.Equal(amount))
	s.Equal([]domain.LedgerEntryKind{domain.LedgerEntrySettleDebit, domain.LedgerEntrySettleCredit}, kinds)

	// сумма средств двух кошельков не изменилась
	seller, buyer := updated[7], updated[3]
	total := seller.Total().Add(buyer.Total())
	s.True(total.Equal(decimal.NewFromInt(20)))
}

func (s *LedgerServiceTestSuite) TestSettleToSelf() {
	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(5)).Return(testWallet(5, "1", "4"), nil).Times(1)
	s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w domain.Wallet) error {
			s.True(w.Available.Equal(decimal.NewFromInt(5)))
			s.True(w.Locked.IsZero())
			return nil
		}).Times(1)
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.LedgerEntry{}, nil).Times(2)

	err := s.ledger.Settle(s.T().Context(), s.mockTX, 5, 5, decimal.NewFromInt(4), domain.OrderRef("order-1"))
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestSettleInsufficientEscrow() {
	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(testWallet(1, "0", "0"), nil)
	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(2)).Return(testWallet(2, "100", "1"), nil)
	s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Times(0)

	err := s.ledger.Settle(s.T().Context(), s.mockTX, 2, 1, decimal.NewFromInt(2), domain.OrderRef("order-1"))
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)
}

func (s *LedgerServiceTestSuite) TestHeldForOrder() {
	s.mockEntryRepo.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return([]domain.LedgerEntry{
		{Kind: domain.LedgerEntryLock, Amount: decimal.NewFromInt(10)},
		{Kind: domain.LedgerEntrySettleDebit, Amount: decimal.NewFromInt(10)},
		{Kind: domain.LedgerEntrySettleCredit, Amount: decimal.NewFromInt(10)},
	}, nil)
	s.mockEntryRepo.EXPECT().GetByOrderID(gomock.Any(), "order-2").Return([]domain.LedgerEntry{
		{Kind: domain.LedgerEntryLock, Amount: decimal.NewFromInt(7)},
	}, nil)

	held, err := s.ledger.HeldForOrder(s.T().Context(), "order-1")
	s.Require().NoError(err)
	s.True(held.IsZero())

	held, err = s.ledger.HeldForOrder(s.T().Context(), "order-2")
	s.Require().NoError(err)
	s.True(held.Equal(decimal.NewFromInt(7)))
}

// Сценарий: продавец опубликовал объявление на 100 USDT, покупатель открыл заказ на 30 и получил их.
func (s *LedgerServiceTestSuite) TestReassignedHoldIsTracedByOrder() {
	adRef := domain.AdvertisementRef(1)
	orderRef := domain.OrderRef("order-1")
	amount := decimal.NewFromInt(30)

	var journal []domain.LedgerEntry
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
			entry := domain.LedgerEntry{
				ID: int64(len(journal) + 1), UserID: args.UserID, Ref: args.Ref, Kind: args.Kind, Amount: args.Amount,
			}
			journal = append(journal, entry)
			return &entry, nil
		}).AnyTimes()
	s.mockEntryRepo.EXPECT().GetByOrderID(gomock.Any(), "order-1").
		DoAndReturn(func(_ context.Context, orderID string) ([]domain.LedgerEntry, error) {
			var res []domain.LedgerEntry
			for _, e := range journal {
				if e.Ref.OrderID != nil && *e.Ref.OrderID == orderID {
					res = append(res, e)
				}
			}
			return res, nil
		}).AnyTimes()

	// перенос основания блокировки не меняет остатков
	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(7)).Return(testWallet(7, "0", "100"), nil)
	s.Require().NoError(s.ledger.Reassign(s.T().Context(), s.mockTX, 7, amount, adRef, orderRef))
	s.Require().Len(journal, 2)
	s.Equal(domain.LedgerEntryUnlock, journal[0].Kind)
	s.Equal(adRef, journal[0].Ref)
	s.Equal(domain.LedgerEntryLock, journal[1].Kind)
	s.Equal(orderRef, journal[1].Ref)

	held, err := s.ledger.HeldForOrder(s.T().Context(), "order-1")
	s.Require().NoError(err)
	s.True(held.Equal(amount), "held %s", held)

	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(3)).Return(testWallet(3, "0", "0"), nil)
	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(7)).Return(testWallet(7, "0", "100"), nil)
	s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.Require().NoError(s.ledger.Settle(s.T().Context(), s.mockTX, 7, 3, amount, orderRef))

	held, err = s.ledger.HeldForOrder(s.T().Context(), "order-1")
	s.Require().NoError(err)
	s.True(held.IsZero(), "held %s", held)
}

func (s *LedgerServiceTestSuite) TestReassignMoreThanLocked() {
	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(7)).Return(testWallet(7, "500", "10"), nil)
	s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Times(0)
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := s.ledger.Reassign(s.T().Context(), s.mockTX, 7, decimal.NewFromInt(11),
		domain.AdvertisementRef(1), domain.OrderRef("order-1"))
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)
}

func (s *LedgerServiceTestSuite) TestStorageCheckViolationIsLogged() {
	l, hook := test.NewNullLogger()
	ledger, err := NewLedgerService(s.mockUOW, l)
	s.Require().NoError(err)

	s.mockWalletRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(testWallet(1, "100", "0"), nil)
	s.mockWalletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("wallet check constraint: %w", domain.ErrInvariantViolation))
	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err = ledger.Lock(s.T().Context(), s.mockTX, 1, decimal.NewFromInt(10), domain.OrderRef("order-1"))
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)

	entry := hook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.ErrorLevel, entry.Level)
	s.Equal("ledger invariant violation", entry.Message)
	s.Equal("order-1", entry.Data["orderID"])
}

func (s *LedgerServiceTestSuite) TestHistoryLimit() {
	s.mockEntryRepo.EXPECT().GetByUserID(gomock.Any(), int64(1), defaultLedgerHistoryLimit).Return(nil, nil).Times(2)

	_, err := s.ledger.History(s.T().Context(), 1, 0)
	s.Require().NoError(err)
	_, err = s.ledger.History(s.T().Context(), 1, 1000)
	s.Require().NoError(err)
}
