package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultPaymentWindow  = 15 * time.Minute
	defaultExpiryInterval = 30 * time.Second
	defaultExpiryWorkers  = 4
)

type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	DatabaseDSN    string        `env:"DATABASE_URI"`
	MigrationsDir  string        `env:"MIGRATIONS_DIR"`
	JWTSecret      string        `env:"JWT_SECRET"`
	AMQPURL        string        `env:"AMQP_URL"`
	AMQPExchange   string        `env:"AMQP_EXCHANGE"`
	PaymentWindow  time.Duration `env:"PAYMENT_WINDOW"`
	ExpiryInterval time.Duration `env:"EXPIRY_INTERVAL"`
	ExpiryWorkers  uint          `env:"EXPIRY_WORKERS"`
}

// LoadConfig собирает конфигурацию. Переменные окружения (в том числе из .env в рабочей директории)
// имеют приоритет над флагами.
func LoadConfig(args []string) (*Config, error) {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", dotenvErr)
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %w", envParseErr)
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("p2pescrow", flag.ContinueOnError)

	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")
	fs.StringVar(&flagConfig.AMQPURL, "q", "", "RabbitMQ URL, events are only logged when empty")
	fs.StringVar(&flagConfig.AMQPExchange, "x", "p2p.events", "RabbitMQ topic exchange for order events")
	fs.DurationVar(&flagConfig.PaymentWindow, "w", defaultPaymentWindow, "Time the buyer has to pay an order")
	fs.DurationVar(&flagConfig.ExpiryInterval, "i", defaultExpiryInterval, "Pause between expired orders scans")
	fs.UintVar(&flagConfig.ExpiryWorkers, "n", defaultExpiryWorkers, "Workers cancelling expired orders")

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:     defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:    defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:  defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:      defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		AMQPURL:        defaultIfBlank(envConfig.AMQPURL, flagsConfig.AMQPURL),
		AMQPExchange:   defaultIfBlank(envConfig.AMQPExchange, flagsConfig.AMQPExchange),
		PaymentWindow:  defaultIfBlank(envConfig.PaymentWindow, flagsConfig.PaymentWindow),
		ExpiryInterval: defaultIfBlank(envConfig.ExpiryInterval, flagsConfig.ExpiryInterval),
		ExpiryWorkers:  defaultIfBlank(envConfig.ExpiryWorkers, flagsConfig.ExpiryWorkers),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
