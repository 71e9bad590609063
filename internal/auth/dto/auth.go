package dto

import (
	"time"

	"taskflow-backend/pkg/token"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserResponse is the public projection of a user. The password hash and the
// stored refresh token never appear here.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User   *UserResponse `json:"user"`
	Tokens *token.Pair   `json:"tokens"`
}
