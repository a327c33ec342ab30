package request

import (
	"turnera/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Username  string  `json:"username" binding:"required,min=3,max=50"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
}

func (r *RegisterRequest) ToDomain() (user.Email, user.Username, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Username{}, user.Password{}, err
	}
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return user.Email{}, user.Username{}, user.Password{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Username{}, user.Password{}, err
	}
	return email, username, pw, nil
}

// UpdateAccountRequest edits the caller's own account. Absent fields keep
// their value; changing the password requires the current one.
type UpdateAccountRequest struct {
	Email           *string `json:"email" binding:"omitempty,email"`
	Username        *string `json:"username" binding:"omitempty,min=3,max=50"`
	FirstName       *string `json:"firstName" binding:"omitempty,max=100"`
	LastName        *string `json:"lastName" binding:"omitempty,max=100"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" binding:"omitempty,min=8"`
}
