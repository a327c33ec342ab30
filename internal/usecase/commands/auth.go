package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"turnera/internal/domain/user"
	reqdto "turnera/internal/handler/dto/request"
	"turnera/internal/infra"
	"turnera/internal/pkg/clock"
	"turnera/internal/pkg/errs"
	"turnera/internal/pkg/jwt"
	"turnera/internal/pkg/password"
	"turnera/internal/pkg/patch"
	"turnera/internal/usecase/queries"
	"turnera/internal/usecase/shared"
)

const (
	userEmailKey    = "users_email_key"
	userUsernameKey = "users_username_key"
)

var (
	ErrUserNotFound            = errs.New("account not found")
	ErrInvalidCredentials      = errs.New("invalid credentials")
	ErrAuthenticationFailed    = errs.New("authentication failed")
	ErrTokenGeneration         = errs.New("token generation failed")
	ErrTokenValidation         = errs.New("token validation failed")
	ErrEmailTaken              = errs.New("email already registered")
	ErrUsernameTaken           = errs.New("username already taken")
	ErrCurrentPasswordRequired = errs.New("current password required to set a new one")
	ErrCurrentPasswordMismatch = errs.New("current password does not match")
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// IssueTokens signs a fresh pair with the role currently stored for userID.
	IssueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, req reqdto.UpdateAccountRequest) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	email, username, pw, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(email, username, hash, req.FirstName, req.LastName, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		return nil, takenAs(err)
	}

	pair, err := a.sign(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	slog.Info("account registered", "user_id", u.ID().String())
	return &LoginResult{UserID: u.ID(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.sign(userView.ID, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:    userView.ID,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The stored role wins over the claim so role changes survive a refresh.
	return a.IssueTokens(ctx, claims.UserID)
}

func (a *authCommandsImpl) IssueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	userView, err := a.readStore.FindByID(ctx, userID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.sign(userID, role)
}

func (a *authCommandsImpl) UpdateAccount(ctx context.Context, userID uuid.UUID, req reqdto.UpdateAccountRequest) error {
	var newHash string
	if req.NewPassword != nil {
		if req.CurrentPassword == nil {
			return ErrCurrentPasswordRequired
		}
		pw, err := user.NewPassword(*req.NewPassword)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if newHash, err = password.Hash(pw.Value()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindForUpdate(ctx, tx.DB(), userID)
		if err != nil {
			return notFoundAs(err, queries.ErrUserNotFound)
		}

		if newHash != "" {
			if err := password.Compare(u.PasswordHash(), *req.CurrentPassword); err != nil {
				return ErrCurrentPasswordMismatch
			}
			u.ChangePasswordHash(newHash)
		}

		email := u.Email()
		if req.Email != nil {
			if email, err = user.NewEmail(*req.Email); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		username := u.Username()
		if req.Username != nil {
			if username, err = user.NewUsername(*req.Username); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		u.ChangeProfile(email, username,
			patch.Optional(req.FirstName, u.FirstName()),
			patch.Optional(req.LastName, u.LastName()))

		return tx.Users().Update(ctx, tx.DB(), u)
	})
	if err != nil {
		return takenAs(err)
	}

	slog.Info("account updated", "user_id", userID.String(), "password_changed", newHash != "")
	return nil
}

// takenAs maps a unique violation on the account columns onto its sentinel.
func takenAs(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		switch infra.ConstraintOf(err) {
		case userEmailKey:
			return ErrEmailTaken
		case userUsernameKey:
			return ErrUsernameTaken
		}
	}
	return err
}

func (a *authCommandsImpl) sign(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.UserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userView == nil {
		return nil, ErrUserNotFound
	}

	err = password.Compare(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}
