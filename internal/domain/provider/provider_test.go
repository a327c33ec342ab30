//go:build unit

package provider_test

import (
	"strings"
	"testing"

	"turnera/internal/domain/provider"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code, err := provider.GenerateCode()
		require.NoError(t, err)
		require.Len(t, code.Value(), provider.CodeLength)
		assert.False(t, strings.ContainsAny(code.Value(), "0O1I"))

		parsed, err := provider.ParseCode(code.Value())
		require.NoError(t, err)
		assert.Equal(t, code, parsed)
		seen[code.Value()] = struct{}{}
	}
	assert.Greater(t, len(seen), 45, "コードはほぼ一意であるべき")
}

func TestParseCode(t *testing.T) {
	code, err := provider.ParseCode("  ab12cd34 ")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", code.Value())

	for _, in := range []string{"", "   ", "ab-12", "año", strings.Repeat("A", 33)} {
		_, err := provider.ParseCode(in)
		assert.ErrorIs(t, err, provider.ErrInvalidCode, "input %q", in)
	}
}

func TestNewProvider(t *testing.T) {
	code, err := provider.GenerateCode()
	require.NoError(t, err)

	p, err := provider.NewProvider(uuid.New(), provider.Profile{BusinessName: "Peluquería Sol"}, code)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, code, p.Code())

	_, err = provider.NewProvider(uuid.New(), provider.Profile{BusinessName: "  "}, code)
	assert.ErrorIs(t, err, provider.ErrBusinessNameRequired)

	_, err = provider.NewProvider(uuid.New(), provider.Profile{BusinessName: "Sol"}, provider.Code{})
	assert.ErrorIs(t, err, provider.ErrInvalidCode)
}
