package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// Persian digits: ۰۱۲۳۴۵۶۷۸۹
var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// ToPersianDigits stringifies value and replaces every ASCII digit with its
// Persian glyph. Everything else passes through unchanged.
func ToPersianDigits(value interface{}) string {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}

	var result strings.Builder
	result.Grow(len(s))
	for _, char := range s {
		if char >= '0' && char <= '9' {
			result.WriteRune(persianDigits[char-'0'])
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

// NormalizePersianNumbers converts Persian/Arabic numerals to Latin
func NormalizePersianNumbers(input string) string {
	// Arabic digits: ٠١٢٣٤٥٦٧٨٩
	var result strings.Builder
	result.Grow(len(input))
	for _, char := range input {
		switch {
		case char >= '۰' && char <= '۹':
			result.WriteRune('0' + (char - '۰'))
		case char >= '٠' && char <= '٩':
			result.WriteRune('0' + (char - '٠'))
		default:
			result.WriteRune(char)
		}
	}
	return result.String()
}

// ParseInt parses a string to int64 after normalizing Persian numbers
func ParseInt(s string) (int64, error) {
	normalized := NormalizePersianNumbers(strings.TrimSpace(s))
	return strconv.ParseInt(normalized, 10, 64)
}
