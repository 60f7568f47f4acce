package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Reserve уменьшает остаток объявления на quantity. Когда остаток доходит до нуля, объявление
// переходит в FINISHED. Остаток никогда не увеличивается.
func (a *Advertisement) Reserve(quantity decimal.Decimal) error {
	if a.Status != AdStatusActive {
		return fmt.Errorf("advertisement %d is %s: %w", a.ID, a.Status, ErrAdUnavailable)
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("reserve %s: %w", quantity, ErrAdUnavailable)
	}
	if a.RemainingQuantity.LessThan(quantity) {
		return fmt.Errorf(
			"advertisement %d has %s left, requested %s: %w", a.ID, a.RemainingQuantity, quantity, ErrAdUnavailable,
		)
	}
	a.RemainingQuantity = a.RemainingQuantity.Sub(quantity)
	if a.RemainingQuantity.IsZero() {
		a.Status = AdStatusFinished
	}
	return nil
}

// WithinLimits проверяет, что фиатная сумма укладывается в лимиты объявления.
func (a *Advertisement) WithinLimits(fiat decimal.Decimal) bool {
	return fiat.GreaterThanOrEqual(a.MinLimit) && fiat.LessThanOrEqual(a.MaxLimit)
}

func (a *Advertisement) Pause() error {
	if a.Status != AdStatusActive {
		return fmt.Errorf("pause advertisement in status %s: %w", a.Status, ErrAdUnavailable)
	}
	a.Status = AdStatusPaused
	return nil
}

func (a *Advertisement) Resume() error {
	if a.Status != AdStatusPaused {
		return fmt.Errorf("resume advertisement in status %s: %w", a.Status, ErrAdUnavailable)
	}
	a.Status = AdStatusActive
	return nil
}

// Close завершает объявление и возвращает остаток, который был зарезервирован под него.
func (a *Advertisement) Close() (decimal.Decimal, error) {
	if a.Status == AdStatusFinished {
		return decimal.Zero, fmt.Errorf("advertisement %d already finished: %w", a.ID, ErrAdUnavailable)
	}
	released := a.RemainingQuantity
	a.RemainingQuantity = decimal.Zero
	a.Status = AdStatusFinished
	return released, nil
}

// Parties определяет покупателя и продавца для заказа, открытого takerID по этому объявлению.
func (a *Advertisement) Parties(takerID int64) (buyerID, sellerID int64) {
	if a.Side == SideSell {
		return takerID, a.OwnerID
	}
	return a.OwnerID, takerID
}
