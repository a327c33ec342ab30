//go:build unit || e2e

package builder

import (
	"time"

	"turnera/internal/domain/user"
	"turnera/internal/infra/query"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Email        string
	Username     string
	PasswordHash string
	Role         string
	FirstName    *string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		Username:     "test.user",
		PasswordHash: "hashed_password",
		Role:         "customer",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, username, u.PasswordHash, u.FirstName, nil, time.Now().UTC()), nil
}

func (u *UserBuilder) BuildInfra() query.User {
	var firstName pgtype.Text
	if u.FirstName != nil {
		firstName = pgtype.Text{String: *u.FirstName, Valid: true}
	}

	return query.User{
		ID:           uuid.New(),
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		FirstName:    firstName,
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.New(),
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		FirstName: u.FirstName,
		CreatedAt: time.Now().UTC(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithFirstName(name string) *UserBuilder {
	u.FirstName = &name
	return u
}

func (u *UserBuilder) AsEntrepreneur() *UserBuilder {
	u.Role = string(user.RoleEntrepreneur)
	return u
}
