package usecase

import (
	"turnera/internal/domain/user"
	"turnera/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer access token into the caller's account.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type accessTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &accessTokenValidator{jwtService: jwtService}
}

// ValidateToken rejects refresh tokens; they are only good for /auth/refresh.
func (v *accessTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
