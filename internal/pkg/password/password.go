// Package password handles credential hashing for claimed supplier accounts.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength matches the claim-completion password policy.
const MinLength = 8

var (
	ErrTooShort         = errors.New("password below minimum length")
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
)

func HashPassword(plain string) (string, error) {
	if len(plain) < MinLength {
		return "", ErrTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrComparisonFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}
