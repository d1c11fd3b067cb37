package utils

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// FormatNumber renders a float without trailing zeros ("3100", "1943.75").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CapitalizeFirst upper-cases the first rune, leaving the rest untouched.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
