// Package conv provides bounded conversion helpers for pattern escape codes.
//
// Callers hand character codes to the generator as loosely typed values
// (any Go integer, or a string of hex digits). These helpers check the range
// before formatting, so an out-of-range code is reported to the caller
// instead of being silently truncated to fit the escape.
package conv

import (
	"math"
	"strconv"
	"strings"
)

// Int64 converts any Go integer value to int64.
// Returns false for non-integers and for unsigned values above math.MaxInt64.
func Int64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uint64ToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uint64ToInt64(n)
	case uintptr:
		return uint64ToInt64(uint64(n))
	}
	return 0, false
}

func uint64ToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

// Decimal formats any Go integer value in base 10.
func Decimal(v any) (string, bool) {
	if n, ok := v.(uint64); ok {
		return strconv.FormatUint(n, 10), true
	}
	if n, ok := v.(uint); ok {
		return strconv.FormatUint(uint64(n), 10), true
	}
	n, ok := Int64(v)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(n, 10), true
}

// Hex formats n as exactly digits lowercase hex digits, zero padded.
// Returns false if n is negative or needs more than digits digits.
func Hex(n int64, digits int) (string, bool) {
	if n < 0 || digits <= 0 || digits > 15 || n >= int64(1)<<(4*digits) {
		return "", false
	}
	s := strconv.FormatInt(n, 16)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s, true
}

// IsHex reports whether s consists of exactly digits hex digits.
func IsHex(s string, digits int) bool {
	if len(s) != digits {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// ParseHex decodes a string accepted by IsHex.
func ParseHex(s string) (rune, bool) {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
