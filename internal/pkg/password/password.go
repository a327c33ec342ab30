// Package password hashes account passwords with bcrypt.
package password

import (
	"errors"

	"turnera/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const MinLength = 8

// bcrypt ignores everything past 72 bytes.
const maxLength = 72

var (
	ErrTooShort = errs.Newf("password must be at least %d characters long", MinLength)
	ErrTooLong  = errs.Newf("password must be at most %d bytes long", maxLength)
	ErrMismatch = errs.New("password does not match")
)

func Hash(plain string) (string, error) {
	switch {
	case len(plain) < MinLength:
		return "", ErrTooShort
	case len(plain) > maxLength:
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Compare returns ErrMismatch for a wrong password, including an empty one.
func Compare(hashed, plain string) error {
	if plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return errs.Wrap(err, "compare password")
	}
	return nil
}
