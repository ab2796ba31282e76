package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// StringToUint64 parses a numeric id from a query/URL parameter.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// NormalizeName is the storage form of a service name: trimmed, lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Capitalize is the read-back form: first rune upper, rest as stored.
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
