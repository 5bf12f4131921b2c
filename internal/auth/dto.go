package auth

import (
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// LoginRequest carries the credential pair submitted by the client.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates a shopper account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenPair is an access token and its paired refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserProfile is the public shape of an account.
type UserProfile struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Avatar             string         `json:"avatar"`
	Phone              string         `json:"phone"`
	City               string         `json:"city"`
	Role               enums.UserRole `json:"role"`
	MustChangePassword bool           `json:"must_change_password"`
}

// AuthResponse pairs the authenticated profile with its session tokens.
type AuthResponse struct {
	User   UserProfile `json:"user"`
	Tokens TokenPair   `json:"tokens"`
}

func profileFromModel(u *models.User) UserProfile {
	return UserProfile{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Avatar:             u.Avatar,
		Phone:              u.Phone,
		City:               u.City,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
	}
}
