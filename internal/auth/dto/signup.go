package dto

import (
	"regexp"
	"unicode"

	autherror "github.com/dev-charan/Digi-Locker/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs before any persistence. Failures here must never reach the
// repository.
func (in SignupInput) Validate() error {
	if !emailPattern.MatchString(in.Email) {
		return autherror.ErrInvalidEmail
	}
	return ValidatePassword(in.Password)
}

// ValidatePassword enforces the shared policy: at least 8 characters with
// one uppercase letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return autherror.ErrWeakPassword
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return autherror.ErrWeakPassword
	}
	return nil
}
