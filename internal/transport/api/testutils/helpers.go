package testutils

import "strings"

// OverByteLimit возвращает строку, которая укладывается в maxBytes по количеству рун, но превышает
// его в байтах. Нужна для проверки тега max_bytes.
func OverByteLimit(maxBytes int) string {
	symbol := "ñ" // 2 байта, 1 руна
	return strings.Repeat(symbol, maxBytes/2+1)
}
