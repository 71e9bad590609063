package usecase

import (
	"errors"

	authdto "taskflow-backend/internal/auth/dto"
	"taskflow-backend/pkg/token"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when a refresh token fails
	// verification or no longer matches the stored slot
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrRefreshTokenExpired is returned when a refresh token is correctly
	// signed but past its expiry
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user and opens a session
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login verifies credentials and opens a session, invalidating any
	// previously issued refresh token
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// Refresh rotates the token pair for a valid, currently stored refresh token
	Refresh(refreshToken string) (*token.Pair, error)

	// Logout clears the user's refresh token slot
	Logout(userID string) error
}
