package utils

import "strings"

// NormalizeEmail lower-cases and trims an email address so invited
// candidates match reliably regardless of how the address was typed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
