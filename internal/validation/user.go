// Package validation contains input validation rules for user-supplied data.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// emailRegex is deliberately permissive; the definitive check is the
// confirmation the mail provider gives, not this regex.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateUsername checks username format: 3-30 chars, letters, digits and
// underscores, not starting or ending with an underscore.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-30 characters and contain only letters, numbers, and underscores")
	}
	if strings.HasPrefix(username, "_") || strings.HasSuffix(username, "_") {
		return fmt.Errorf("username cannot start or end with an underscore")
	}
	return nil
}

// ValidateEmail checks basic email shape and the RFC length cap.
func ValidateEmail(email string) error {
	if len(email) > 254 {
		return fmt.Errorf("email is too long")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if strings.HasSuffix(email, ".") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword enforces password strength: 8-128 characters with at
// least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must be at most 128 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}
	return nil
}
