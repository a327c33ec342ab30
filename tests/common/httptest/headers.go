//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertCookieCleared expects a Set-Cookie for name that expires it.
func AssertCookieCleared(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()
	c := ExtractCookie(w, name)
	if assert.NotNil(t, c, "cookie %s not set", name) {
		assert.Empty(t, c.Value, "cookie %s still has a value", name)
		assert.Negative(t, c.MaxAge, "cookie %s not expired", name)
	}
}
