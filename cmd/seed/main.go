// seed создает демонстрационных пользователей с начальным балансом и реквизитами и печатает их токены.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/p2p-escrow/internal/app"
	"github.com/fsdevblog/p2p-escrow/internal/config"
	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/logger"
	"github.com/fsdevblog/p2p-escrow/internal/repository/pgrepo"
	"github.com/fsdevblog/p2p-escrow/internal/service"
	"github.com/fsdevblog/p2p-escrow/internal/transport/api/tokens"
	"github.com/fsdevblog/p2p-escrow/internal/transport/notify"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	_ "github.com/golang-migrate/migrate/v4/source/file"       //nolint:revive
)

const tokenTTL = 24 * time.Hour

type demoUser struct {
	role    string
	balance decimal.Decimal
	arbiter bool
	bank    domain.Bank
}

var demoUsers = []demoUser{
	{role: "seller", balance: decimal.NewFromInt(1000), bank: domain.BankBanesco},
	{role: "buyer", balance: decimal.NewFromInt(0), bank: domain.BankPagoMovil},
	{role: "arbiter", balance: decimal.NewFromInt(0), arbiter: true},
}

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stderr)

	if err := run(conf, l); err != nil {
		l.WithError(err).Fatal("seed failed")
	}
}

func run(conf *config.Config, l *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := pgrepo.Connect(ctx, pgrepo.ConnectArgs{
		DSN:           conf.DatabaseDSN,
		MigrationsDir: conf.MigrationsDir,
		MaxAttempts:   3, //nolint:mnd
	}, l)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer conn.Close()

	unitOfWork, err := app.InitUOW(conn)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	services, err := service.Factory(unitOfWork, service.FactoryArgs{
		Notifier:      notify.NewLogNotifier(l),
		PaymentWindow: conf.PaymentWindow,
		Logger:        l,
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	for _, demo := range demoUsers {
		user, wallet, regErr := services.UserService.Register(ctx, service.RegisterUserArgs{
			Username:       fmt.Sprintf("%s_%s_%d", demo.role, gofakeit.Username(), gofakeit.Number(100, 999)),
			OpeningBalance: demo.balance,
			IsArbiter:      demo.arbiter,
		})
		if regErr != nil {
			return fmt.Errorf("seed %s: %w", demo.role, regErr)
		}

		if demo.bank != "" {
			if _, pmErr := services.PaymentMethodService.Add(ctx, service.AddPaymentMethodArgs{
				UserID:        user.ID,
				BankName:      string(demo.bank),
				AccountNumber: gofakeit.Numerify("0134####################"),
				AccountHolder: gofakeit.Name(),
				NationalID:    gofakeit.Numerify("V-########"),
			}); pmErr != nil {
				return fmt.Errorf("seed %s payment method: %w", demo.role, pmErr)
			}
		}

		token, tokenErr := tokens.GenerateUserJWT(user.ID, tokenTTL, []byte(conf.JWTSecret))
		if tokenErr != nil {
			return fmt.Errorf("seed %s token: %w", demo.role, tokenErr)
		}
		fmt.Printf("%-8s id=%d username=%s available=%s token=%s\n",
			demo.role, user.ID, user.Username, wallet.Available.String(), token)
	}
	return nil
}
