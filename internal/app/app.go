package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/config"
	"github.com/fsdevblog/p2p-escrow/internal/repository/pgrepo"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/fsdevblog/p2p-escrow/internal/transport/api"
	"github.com/fsdevblog/p2p-escrow/internal/transport/expiry"
	"github.com/fsdevblog/p2p-escrow/internal/transport/notify"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout  = 10 * time.Second
	txRetries        = 3
	txRetryBackoff   = 50 * time.Millisecond
	expiryBatchLimit = 100
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":        a.Config.RunAddress,
		"migrationsDir":  a.Config.MigrationsDir,
		"amqpExchange":   a.Config.AMQPExchange,
		"paymentWindow":  a.Config.PaymentWindow.String(),
		"expiryInterval": a.Config.ExpiryInterval.String(),
		"expiryWorkers":  a.Config.ExpiryWorkers,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, pgrepo.ConnectArgs{
		DSN:           a.Config.DatabaseDSN,
		MigrationsDir: a.Config.MigrationsDir,
	}, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := InitUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %w", uowErr)
	}

	notifier, closeNotifier, notifierErr := a.newNotifier()
	if notifierErr != nil {
		return fmt.Errorf("app run: %w", notifierErr)
	}
	defer closeNotifier()

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		Notifier:      notifier,
		PaymentWindow: a.Config.PaymentWindow,
		Logger:        a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:               a.Logger,
		EscrowService:        services.EscrowService,
		DisputeService:       services.DisputeService,
		AdService:            services.AdService,
		ChatService:          services.ChatService,
		WalletService:        services.LedgerService,
		PaymentMethodService: services.PaymentMethodService,
		UserService:          services.UserService,
		JWTSecretKey:         []byte(a.Config.JWTSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	sweeper := expiry.New(services.EscrowService, a.Logger, expiry.Options{
		BatchSize: expiryBatchLimit,
		Workers:   int(a.Config.ExpiryWorkers), //nolint:gosec
		Interval:  a.Config.ExpiryInterval,
	})

	go sweeper.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// newNotifier подключается к RabbitMQ. Без AMQP_URL события только пишутся в лог.
func (a *App) newNotifier() (service.Notifier, func(), error) {
	if a.Config.AMQPURL == "" {
		a.Logger.Warn("AMQP_URL is not set, order events will only be logged")
		return notify.NewLogNotifier(a.Logger), func() {}, nil
	}
	publisher, err := notify.Dial(a.Config.AMQPURL, a.Config.AMQPExchange, a.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init notifier: %w", err)
	}
	return publisher, func() {
		if closeErr := publisher.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("close notifier")
		}
	}, nil
}

// InitUOW регистрирует все postgres репозитории. Конкурентный доступ к кошелькам и объявлениям
// упорядочивается блокировками строк (FOR UPDATE), поэтому достаточно READ COMMITTED.
func InitUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn,
		uow.WithIsoLevel(pgx.ReadCommitted),
		uow.WithRetries(txRetries, txRetryBackoff),
	)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.WalletRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWalletRepository(dbtx)
		},
		repoargs.LedgerEntryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLedgerEntryRepository(dbtx)
		},
		repoargs.PaymentMethodRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentMethodRepository(dbtx)
		},
		repoargs.AdvertisementRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAdvertisementRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.ChatMessageRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewChatMessageRepository(dbtx)
		},
		repoargs.AuditRecordRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAuditRecordRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}
	return unitOfWork, nil
}
