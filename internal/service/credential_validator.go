package service

import (
	"regexp"
	"unicode"
)

const minPasswordLength = 8

// Local part, dotted domain, final label of two or more letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// CredentialValidator validates registration credentials.
type CredentialValidator struct{}

// NewCredentialValidator creates a new credential validator.
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// ValidateEmail reports whether the string is a well-formed address.
// Case-folding is the caller's job.
func (v *CredentialValidator) ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword checks password strength and returns the first failing
// reason as human-readable text.
func (v *CredentialValidator) ValidatePassword(password string) (bool, string) {
	if len(password) < minPasswordLength {
		return false, "password must be at least 8 characters long"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return false, "password must contain an uppercase letter"
	}
	if !hasLower {
		return false, "password must contain a lowercase letter"
	}
	if !hasDigit {
		return false, "password must contain a digit"
	}
	return true, ""
}
