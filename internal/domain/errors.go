package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAdUnavailable      = errors.New("advertisement unavailable")
	ErrIllegalTransition  = errors.New("illegal transition")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidWinner      = errors.New("invalid winner")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrValidation         = errors.New("validation failed")
)

// InvariantViolationError означает, что операция привела бы кошелек в недопустимое состояние.
// Такая ошибка никогда не должна возникать при корректной работе и требует разбора.
type InvariantViolationError struct {
	Op     string
	UserID int64
	Detail string
}

func NewInvariantViolation(op string, userID int64, detail string) error {
	return &InvariantViolationError{Op: op, UserID: userID, Detail: detail}
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %s for user %d: %s", ErrInvariantViolation, e.Op, e.UserID, e.Detail)
}

func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}

type IllegalTransitionError struct {
	From   OrderStatus
	Action OrderAction
}

func NewIllegalTransitionError(from OrderStatus, action OrderAction) error {
	return &IllegalTransitionError{From: from, Action: action}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in status %s", ErrIllegalTransition, e.Action, e.From)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
