package pgrepo

import (
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
)

// errNoRows возвращается, когда UPDATE не затронул ни одной строки.
var errNoRows = pgx.ErrNoRows

// rowScanner общий интерфейс pgx.Row и pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки диапазона
// возвращает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil //nolint:gosec
}
