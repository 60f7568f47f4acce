package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/pgrepo"
	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/fsdevblog/p2p-escrow/internal/transport/notify"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// Тесты работают с настоящей базой и запускаются только при заданном TEST_DATABASE_URI.
// Таблицы очищаются перед каждым тестом.
type EscrowIntegrationTestSuite struct {
	suite.Suite
	conn     *pgxpool.Pool
	services *service.AppServices
}

func TestEscrowIntegrationSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, new(EscrowIntegrationTestSuite))
}

func (s *EscrowIntegrationTestSuite) SetupSuite() {
	l := logrus.New()
	l.SetOutput(io.Discard)

	conn, err := pgrepo.Connect(s.T().Context(), pgrepo.ConnectArgs{
		DSN:           os.Getenv("TEST_DATABASE_URI"),
		MigrationsDir: "../db/migrations",
		MaxAttempts:   1,
	}, l)
	s.Require().NoError(err)
	s.conn = conn

	unitOfWork, err := InitUOW(conn)
	s.Require().NoError(err)

	s.services, err = service.Factory(unitOfWork, service.FactoryArgs{
		Notifier:      notify.NewLogNotifier(l),
		PaymentWindow: time.Minute,
		Logger:        l,
	})
	s.Require().NoError(err)
}

func (s *EscrowIntegrationTestSuite) TearDownSuite() {
	if s.conn != nil {
		s.conn.Close()
	}
}

func (s *EscrowIntegrationTestSuite) SetupTest() {
	_, err := s.conn.Exec(s.T().Context(), `TRUNCATE audit_log, chat_messages, ledger_entries, orders,
		advertisements, payment_methods, wallets, users RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *EscrowIntegrationTestSuite) register(balance int64, arbiter bool) *domain.User {
	user, _, err := s.services.UserService.Register(s.T().Context(), service.RegisterUserArgs{
		Username:       fmt.Sprintf("%s_%d", gofakeit.Username(), gofakeit.Number(1, 1_000_000)),
		OpeningBalance: decimal.NewFromInt(balance),
		IsArbiter:      arbiter,
	})
	s.Require().NoError(err)

	_, err = s.services.PaymentMethodService.Add(s.T().Context(), service.AddPaymentMethodArgs{
		UserID:        user.ID,
		BankName:      string(domain.BankBanesco),
		AccountNumber: gofakeit.Numerify("0134################"),
		AccountHolder: gofakeit.Name(),
		NationalID:    gofakeit.Numerify("V-########"),
	})
	s.Require().NoError(err)
	return user
}

func (s *EscrowIntegrationTestSuite) publishSell(owner *domain.User, quantity, price, minLimit, maxLimit string) int64 {
	methods, err := s.services.PaymentMethodService.List(s.T().Context(), owner.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(methods)

	ad, err := s.services.AdService.Publish(s.T().Context(), service.PublishAdArgs{
		OwnerID:          owner.ID,
		Side:             domain.SideSell,
		UnitPrice:        decimal.RequireFromString(price),
		MinLimit:         decimal.RequireFromString(minLimit),
		MaxLimit:         decimal.RequireFromString(maxLimit),
		Quantity:         decimal.RequireFromString(quantity),
		PaymentMethodIDs: []int64{methods[0].ID},
	})
	s.Require().NoError(err)
	return ad.ID
}

func (s *EscrowIntegrationTestSuite) wallet(userID int64) *domain.Wallet {
	w, err := s.services.LedgerService.Balance(s.T().Context(), userID)
	s.Require().NoError(err)
	return w
}

func (s *EscrowIntegrationTestSuite) totalSupply() decimal.Decimal {
	var total string
	err := s.conn.QueryRow(s.T().Context(),
		`SELECT COALESCE(SUM(available + locked), 0)::text FROM wallets`).Scan(&total)
	s.Require().NoError(err)
	return decimal.RequireFromString(total)
}

func (s *EscrowIntegrationTestSuite) TestHappyPath() {
	seller := s.register(1000, false)
	buyer := s.register(0, false)
	adID := s.publishSell(seller, "100", "40", "400", "4000")

	s.True(s.wallet(seller.ID).Locked.Equal(decimal.NewFromInt(100)))

	ctx := s.T().Context()
	order, err := s.services.EscrowService.CreateOrder(ctx, service.CreateOrderArgs{
		TakerID:         buyer.ID,
		AdvertisementID: adID,
		FiatAmount:      decimal.NewFromInt(4000),
	})
	s.Require().NoError(err)
	s.True(order.CryptoAmount.Equal(decimal.NewFromInt(100)))
	s.Equal(seller.ID, order.SellerID)
	s.NotEmpty(order.PaymentSnapshot)

	held, err := s.services.LedgerService.HeldForOrder(ctx, order.ID)
	s.Require().NoError(err)
	s.True(held.Equal(decimal.NewFromInt(100)), "held %s", held)
	s.True(s.wallet(seller.ID).Locked.Equal(decimal.NewFromInt(100)))

	ad, err := s.services.AdService.Get(ctx, adID)
	s.Require().NoError(err)
	s.True(ad.RemainingQuantity.IsZero())
	s.Equal(domain.AdStatusFinished, ad.Status)

	_, err = s.services.EscrowService.Release(ctx, order.ID, seller.ID)
	s.Require().ErrorIs(err, domain.ErrIllegalTransition)

	_, err = s.services.EscrowService.MarkPaid(ctx, order.ID, buyer.ID)
	s.Require().NoError(err)
	completed, err := s.services.EscrowService.Release(ctx, order.ID, seller.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCompleted, completed.Status)

	sellerWallet := s.wallet(seller.ID)
	s.True(sellerWallet.Available.Equal(decimal.NewFromInt(900)))
	s.True(sellerWallet.Locked.IsZero())
	s.True(s.wallet(buyer.ID).Available.Equal(decimal.NewFromInt(100)))
	s.True(s.totalSupply().Equal(decimal.NewFromInt(1000)))

	held, err = s.services.LedgerService.HeldForOrder(ctx, order.ID)
	s.Require().NoError(err)
	s.True(held.IsZero(), "held %s", held)

	messages, err := s.services.ChatService.History(ctx, order.ID, buyer.ID)
	s.Require().NoError(err)
	s.Len(messages, 3)

	profile, err := s.services.UserService.Profile(ctx, buyer.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), profile.TradesCount)
}

func (s *EscrowIntegrationTestSuite) TestConcurrentOrdersDoNotOversell() {
	const buyers = 20
	seller := s.register(10, false)
	adID := s.publishSell(seller, "10", "1", "1", "10")

	takers := make([]*domain.User, buyers)
	for i := range takers {
		takers[i] = s.register(0, false)
	}

	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		created     int
		unavailable int
		unexpected  []error
	)
	for _, taker := range takers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.services.EscrowService.CreateOrder(context.Background(), service.CreateOrderArgs{
				TakerID:         taker.ID,
				AdvertisementID: adID,
				FiatAmount:      decimal.NewFromInt(1),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, domain.ErrAdUnavailable):
				unavailable++
			default:
				unexpected = append(unexpected, err)
			}
		}()
	}
	wg.Wait()

	s.Empty(unexpected)
	s.Equal(10, created)
	s.Equal(buyers-10, unavailable)

	ad, err := s.services.AdService.Get(s.T().Context(), adID)
	s.Require().NoError(err)
	s.True(ad.RemainingQuantity.IsZero())
	s.True(s.wallet(seller.ID).Locked.Equal(decimal.NewFromInt(10)))
}

func (s *EscrowIntegrationTestSuite) TestConcurrentReleaseSettlesOnce() {
	seller := s.register(50, false)
	buyer := s.register(0, false)
	adID := s.publishSell(seller, "50", "2", "2", "100")

	ctx := s.T().Context()
	order, err := s.services.EscrowService.CreateOrder(ctx, service.CreateOrderArgs{
		TakerID: buyer.ID, AdvertisementID: adID, FiatAmount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)
	_, err = s.services.EscrowService.MarkPaid(ctx, order.ID, buyer.ID)
	s.Require().NoError(err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		released int
		illegal  int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, relErr := s.services.EscrowService.Release(context.Background(), order.ID, seller.ID)
			mu.Lock()
			defer mu.Unlock()
			if relErr == nil {
				released++
			} else if errors.Is(relErr, domain.ErrIllegalTransition) {
				illegal++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, released)
	s.Equal(9, illegal)
	s.True(s.wallet(buyer.ID).Available.Equal(decimal.NewFromInt(50)))
	s.True(s.totalSupply().Equal(decimal.NewFromInt(50)))
}

func (s *EscrowIntegrationTestSuite) TestCancelReturnsEscrowToSeller() {
	seller := s.register(100, false)
	buyer := s.register(0, false)
	adID := s.publishSell(seller, "100", "10", "10", "1000")

	ctx := s.T().Context()
	order, err := s.services.EscrowService.CreateOrder(ctx, service.CreateOrderArgs{
		TakerID: buyer.ID, AdvertisementID: adID, FiatAmount: decimal.NewFromInt(250),
	})
	s.Require().NoError(err)

	cancelled, err := s.services.EscrowService.Cancel(ctx, order.ID, buyer.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, cancelled.Status)

	held, err := s.services.LedgerService.HeldForOrder(ctx, order.ID)
	s.Require().NoError(err)
	s.True(held.IsZero(), "held %s", held)

	// 25 USDT вернулись продавцу, остальные 75 все еще заблокированы объявлением.
	sellerWallet := s.wallet(seller.ID)
	s.True(sellerWallet.Available.Equal(decimal.NewFromInt(25)))
	s.True(sellerWallet.Locked.Equal(decimal.NewFromInt(75)))

	_, err = s.services.AdService.Close(ctx, adID, seller.ID)
	s.Require().NoError(err)
	sellerWallet = s.wallet(seller.ID)
	s.True(sellerWallet.Available.Equal(decimal.NewFromInt(100)))
	s.True(sellerWallet.Locked.IsZero())
}

func (s *EscrowIntegrationTestSuite) TestDisputeResolvedForBuyer() {
	seller := s.register(30, false)
	buyer := s.register(0, false)
	arbiter := s.register(0, true)
	adID := s.publishSell(seller, "30", "3", "3", "90")

	ctx := s.T().Context()
	order, err := s.services.EscrowService.CreateOrder(ctx, service.CreateOrderArgs{
		TakerID: buyer.ID, AdvertisementID: adID, FiatAmount: decimal.NewFromInt(90),
	})
	s.Require().NoError(err)
	_, err = s.services.EscrowService.MarkPaid(ctx, order.ID, buyer.ID)
	s.Require().NoError(err)
	_, err = s.services.DisputeService.RaiseDispute(ctx, order.ID, buyer.ID, "seller is not responding")
	s.Require().NoError(err)

	_, err = s.services.EscrowService.Release(ctx, order.ID, seller.ID)
	s.Require().ErrorIs(err, domain.ErrIllegalTransition)

	_, err = s.services.DisputeService.ResolveDispute(ctx, service.ResolveDisputeArgs{
		OrderID: order.ID, ArbiterID: seller.ID, WinnerID: seller.ID,
	})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	resolved, err := s.services.DisputeService.ResolveDispute(ctx, service.ResolveDisputeArgs{
		OrderID: order.ID, ArbiterID: arbiter.ID, WinnerID: buyer.ID,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusResolved, resolved.Status)
	s.True(s.wallet(buyer.ID).Available.Equal(decimal.NewFromInt(30)))
	s.True(s.wallet(seller.ID).Locked.IsZero())

	trail, err := s.services.DisputeService.AuditTrail(ctx, order.ID, arbiter.ID)
	s.Require().NoError(err)
	s.Len(trail, 2)
}
