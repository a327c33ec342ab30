//go:build unit || e2e

// Package testutil turns request DTOs into JSON maps that table tests can bend.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body before it is sent.
type Mutation func(body map[string]any)

// DtoMap round-trips v through JSON and applies muts in order.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mut := range muts {
		if mut != nil {
			mut(body)
		}
	}
	return body
}

// Field sets key to value. A nil value drops the key so required-field
// validation can be exercised.
func Field(key string, value any) Mutation {
	if value == nil {
		return func(body map[string]any) { delete(body, key) }
	}
	return func(body map[string]any) { body[key] = value }
}
