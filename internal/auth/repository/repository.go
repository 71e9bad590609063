package repository

import authdomain "taskflow-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user, assigning its ID and timestamps
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email; returns (nil, nil) when absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by ID; returns (nil, nil) when absent
	FindByID(id string) (*authdomain.User, error)

	// SetRefreshToken overwrites the user's refresh token slot in a single
	// statement, invalidating whatever was stored before
	SetRefreshToken(userID, refreshToken string) error

	// ClearRefreshToken sets the refresh token slot to NULL
	ClearRefreshToken(userID string) error
}
