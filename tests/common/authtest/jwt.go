//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"turnera/internal/domain/user"
	"turnera/internal/pkg/config"
	"turnera/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the same secret as the app under test.
type JWTHelper struct {
	secret  string
	access  time.Duration
	refresh time.Duration
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	require.NoError(t, err, "アクセストークン有効期間の解析に失敗")
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	require.NoError(t, err, "リフレッシュトークン有効期間の解析に失敗")
	return &JWTHelper{secret: cfg.Secret, access: access, refresh: refresh}
}

func (h *JWTHelper) service(access time.Duration) *jwt.Service {
	return jwt.NewService(h.secret, access, h.refresh)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.access).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.access).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken returns an access token that is already past its expiry.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(time.Millisecond).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	// exp has second granularity
	time.Sleep(1100 * time.Millisecond)
	return token
}
