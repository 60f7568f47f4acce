package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Методы ниже единственное место, где меняются остатки кошелька. Они не ходят в БД:
// сервис леджера загружает кошелек под блокировкой строки, применяет операцию и сохраняет результат.

// Lock переводит amount из доступных средств в заблокированные.
// Возвращает ErrInsufficientFunds, если доступных средств меньше amount.
func (w *Wallet) Lock(amount decimal.Decimal) error {
	if err := w.checkAmount("lock", amount); err != nil {
		return err
	}
	if w.Available.LessThan(amount) {
		return fmt.Errorf("lock %s, available %s: %w", amount, w.Available, ErrInsufficientFunds)
	}
	w.Available = w.Available.Sub(amount)
	w.Locked = w.Locked.Add(amount)
	return nil
}

// Unlock возвращает amount из заблокированных средств в доступные.
func (w *Wallet) Unlock(amount decimal.Decimal) error {
	if err := w.checkAmount("unlock", amount); err != nil {
		return err
	}
	if w.Locked.LessThan(amount) {
		return NewInvariantViolation("unlock", w.UserID,
			fmt.Sprintf("locked %s is less than %s", w.Locked, amount))
	}
	w.Locked = w.Locked.Sub(amount)
	w.Available = w.Available.Add(amount)
	return nil
}

// Debit списывает amount из заблокированных средств. Дебетовая половина расчета.
func (w *Wallet) Debit(amount decimal.Decimal) error {
	if err := w.checkAmount("settle", amount); err != nil {
		return err
	}
	if w.Locked.LessThan(amount) {
		return NewInvariantViolation("settle", w.UserID,
			fmt.Sprintf("locked %s is less than %s", w.Locked, amount))
	}
	w.Locked = w.Locked.Sub(amount)
	return nil
}

// Credit зачисляет amount в доступные средства. Кредитовая половина расчета.
func (w *Wallet) Credit(amount decimal.Decimal) error {
	if err := w.checkAmount("settle", amount); err != nil {
		return err
	}
	w.Available = w.Available.Add(amount)
	return nil
}

func (w *Wallet) Total() decimal.Decimal {
	return w.Available.Add(w.Locked)
}

func (w *Wallet) checkAmount(op string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewInvariantViolation(op, w.UserID, fmt.Sprintf("non-positive amount %s", amount))
	}
	return nil
}
