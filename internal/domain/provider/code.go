package provider

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const CodeLength = 8

// Ambiguous glyphs (0/O, 1/I) are left out so codes can be read aloud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var ErrInvalidCode = errors.New("invalid provider code")

type Code struct {
	value string
}

func GenerateCode() (Code, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	b := make([]byte, CodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return Code{}, err
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return Code{value: string(b)}, nil
}

// ParseCode normalizes user input (trim + upper) before validating it.
func ParseCode(s string) (Code, error) {
	s = NormalizeCode(s)
	if s == "" || len(s) > 32 {
		return Code{}, ErrInvalidCode
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return Code{}, ErrInvalidCode
		}
	}
	return Code{value: s}, nil
}

func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (c Code) Value() string { return c.value }
func (c Code) IsZero() bool  { return c.value == "" }
