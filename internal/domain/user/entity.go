package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Customers book slots; entrepreneurs additionally own
// one provider.
type User struct {
	id           uuid.UUID
	email        Email
	username     Username
	passwordHash string
	role         Role
	firstName    *string
	lastName     *string
	createdAt    time.Time
}

func NewUser(email Email, username Username, passwordHash string, firstName, lastName *string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		role:         RoleCustomer,
		firstName:    firstName,
		lastName:     lastName,
		createdAt:    now,
	}
}

// Restore rebuilds a stored account.
func Restore(id uuid.UUID, email Email, username Username, passwordHash string, role Role, firstName, lastName *string, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		firstName:    firstName,
		lastName:     lastName,
		createdAt:    createdAt,
	}
}

// ChangeProfile replaces the editable fields. The role only changes through
// provider activation and deletion.
func (u *User) ChangeProfile(email Email, username Username, firstName, lastName *string) {
	u.email = email
	u.username = username
	u.firstName = firstName
	u.lastName = lastName
}

func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) FirstName() *string   { return u.firstName }
func (u *User) LastName() *string    { return u.lastName }
func (u *User) CreatedAt() time.Time { return u.createdAt }
