package util

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// NormalizeEmail is applied before every store or lookup so the unique
// index and the login lookup agree on case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ValidateTransactionType accepts income/expense in any casing.
func ValidateTransactionType(t string) bool {
	return strings.EqualFold(t, "income") || strings.EqualFold(t, "expense")
}
