// Package expiry отменяет заказы, которые покупатель не оплатил за отведенное окно.
package expiry

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrNoOrders = errors.New("no expired orders")

// Options параметры обхода. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	// BatchSize сколько просроченных заказов выбирается за один обход.
	BatchSize uint
	// Workers сколько заказов отменяется одновременно.
	Workers int
	// Interval пауза между обходами, когда просроченных заказов не осталось.
	Interval time.Duration
	// CallTimeout ограничение на один вызов сервиса.
	CallTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.BatchSize == 0 {
		o.BatchSize = 100
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	if o.Interval <= 0 {
		o.Interval = 30 * time.Second //nolint:mnd
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = 3 * time.Second //nolint:mnd
	}
	return o
}

// Sweeper периодически находит неоплаченные заказы с истекшим окном оплаты и отменяет их
// тем же переходом CANCEL, что и участники сделки.
type Sweeper struct {
	svs  Servicer
	opts Options
	l    *logrus.Entry
}

func New(svs Servicer, l *logrus.Logger, opts Options) *Sweeper {
	return &Sweeper{
		svs:  svs,
		opts: opts.withDefaults(),
		l: l.WithFields(logrus.Fields{
			"component": "expiry",
			"module":    "sweeper",
		}),
	}
}

type sweepStats struct {
	Found     int
	Cancelled int
	Skipped   int
	Failed    int
}

// Run обходит просроченные заказы до отмены контекста. Полная выборка без ошибок означает,
// что в очереди могут остаться заказы, и следующий обход начинается сразу.
func (s *Sweeper) Run(ctx context.Context) {
	s.l.WithFields(logrus.Fields{
		"batchSize": s.opts.BatchSize,
		"workers":   s.opts.Workers,
		"interval":  s.opts.Interval.String(),
	}).Info("Starting")

	for {
		stats, err := s.sweep(ctx)
		switch {
		case errors.Is(err, ErrNoOrders):
		case err != nil:
			s.l.WithError(err).Error("sweep expired orders")
		default:
			s.l.WithFields(logrus.Fields{
				"found":     stats.Found,
				"cancelled": stats.Cancelled,
				"skipped":   stats.Skipped,
				"failed":    stats.Failed,
			}).Debug("sweep done")
		}

		wait := s.opts.Interval
		if err == nil && stats.Failed == 0 && uint(stats.Found) >= s.opts.BatchSize { //nolint:gosec
			wait = 0
		}
		select {
		case <-ctx.Done():
			s.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(wait):
		}
	}
}

// sweep выбирает одну порцию просроченных заказов и отменяет их не более чем Workers одновременно.
func (s *Sweeper) sweep(ctx context.Context) (sweepStats, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	orders, err := s.svs.ExpiredOrders(listCtx, s.opts.BatchSize)
	cancel()
	if err != nil {
		return sweepStats{}, fmt.Errorf("listing expired orders: %w", err)
	}
	if len(orders) == 0 {
		return sweepStats{}, ErrNoOrders
	}

	var cancelled, skipped, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for _, order := range orders {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			switch err := s.cancel(ctx, order.ID); {
			case err == nil:
				cancelled.Add(1)
			case errors.Is(err, domain.ErrIllegalTransition):
				skipped.Add(1)
			default:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return sweepStats{
		Found:     len(orders),
		Cancelled: int(cancelled.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

// cancel отменяет один заказ. Оплаченный или спорный к этому моменту заказ сервис не отменит,
// вернется domain.ErrIllegalTransition.
func (s *Sweeper) cancel(ctx context.Context, orderID string) error {
	callCtx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()

	l := s.l.WithField("orderID", orderID)
	_, err := s.svs.CancelExpired(callCtx, orderID)
	switch {
	case err == nil:
		l.Info("expired order cancelled")
	case errors.Is(err, domain.ErrIllegalTransition):
		l.Debug("order moved on before expiry, skipped")
	default:
		l.WithError(err).Error("cancel expired order")
	}
	return err //nolint:wrapcheck
}
