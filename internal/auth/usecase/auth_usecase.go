package usecase

import (
	"errors"
	"strings"

	authdomain "taskflow-backend/internal/auth/domain"
	authdto "taskflow-backend/internal/auth/dto"
	"taskflow-backend/internal/auth/repository"
	"taskflow-backend/pkg/token"

	"gorm.io/gorm"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// Fast-path check; the unique index on email is the real enforcement
	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    email,
		Password: hashedPassword,
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = &name
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	pair, err := u.openSession(user)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{User: publicUser(user), Tokens: pair}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := u.openSession(user)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{User: publicUser(user), Tokens: pair}, nil
}

func (u *authUsecase) Refresh(refreshToken string) (*token.Pair, error) {
	claims, err := u.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return nil, ErrRefreshTokenExpired
		}
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	// The presented token must exactly match the stored slot. A logged-out or
	// rotated-away token fails here even before its natural expiry.
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	return u.openSession(user)
}

func (u *authUsecase) Logout(userID string) error {
	return u.userRepo.ClearRefreshToken(userID)
}

// openSession issues a fresh token pair and overwrites the user's refresh
// token slot, invalidating any prior session.
func (u *authUsecase) openSession(user *authdomain.User) (*token.Pair, error) {
	pair, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.SetRefreshToken(user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	return &pair, nil
}

func publicUser(user *authdomain.User) *authdto.UserResponse {
	return &authdto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
