package utils

import "strings"

// NormalizePlate brings a plate to its storage form: no whitespace, no
// hyphen, upper case. "abc-123" and "ABC 123" both become "ABC123".
func NormalizePlate(raw string) string {
	normalized := stripWhitespace(raw)
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}

// NormalizeIdentityNumber removes every whitespace character from a cédula.
func NormalizeIdentityNumber(raw string) string {
	return stripWhitespace(raw)
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
