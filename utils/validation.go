// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex = regexp.MustCompile(`^[1-9]\d{0,15}$`)
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NormalizePhone strips spaces, dashes, parentheses and a leading plus sign,
// leaving the bare digit string used for validation and storage.
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return strings.TrimPrefix(cleaned, "+")
}

// ValidatePhone checks if a phone number is in a valid international format:
// after normalization, a leading 1-9 digit followed by up to 15 more digits.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// ValidateEmail checks a basic local@domain.tld shape. Empty is not valid;
// callers decide whether the field is optional.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
