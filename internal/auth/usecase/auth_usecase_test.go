package usecase

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	authdomain "taskflow-backend/internal/auth/domain"
	authdto "taskflow-backend/internal/auth/dto"
	"taskflow-backend/internal/auth/repository"
	"taskflow-backend/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestAuth(t *testing.T) (AuthUsecase, repository.UserRepository, *token.Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))

	tokens := token.NewService("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
	userRepo := repository.NewUserRepository(db)
	return NewAuthUsecase(userRepo, tokens), userRepo, tokens
}

func register(t *testing.T, uc AuthUsecase, email string) *authdto.AuthResponse {
	t.Helper()
	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    email,
		Password: "secret123",
		Name:     "Test User",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	uc, _, tokens := newTestAuth(t)

	resp := register(t, uc, "alice@example.com")

	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	require.NotNil(t, resp.User.Name)
	assert.Equal(t, "Test User", *resp.User.Name)
	assert.False(t, resp.User.CreatedAt.IsZero())

	// The issued pair must verify under the matching token class
	claims, err := tokens.VerifyAccess(resp.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	claims, err = tokens.VerifyRefresh(resp.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegister_NeverExposesPasswordHash(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	resp := register(t, uc, "alice@example.com")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "Password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	register(t, uc, "alice@example.com")

	_, err := uc.Register(&authdto.RegisterRequest{Email: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Case-normalized duplicate is also rejected
	_, err = uc.Register(&authdto.RegisterRequest{Email: "Alice@Example.COM", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	uc, _, tokens := newTestAuth(t)
	registered := register(t, uc, "alice@example.com")

	resp, err := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	claims, err := tokens.VerifyAccess(resp.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
}

func TestLogin_UniformFailure(t *testing.T) {
	uc, _, _ := newTestAuth(t)
	register(t, uc, "alice@example.com")

	// Wrong password and unknown email are indistinguishable
	_, wrongPassword := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	_, unknownEmail := uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_InvalidatesPreviousSession(t *testing.T) {
	uc, _, _ := newTestAuth(t)
	first := register(t, uc, "alice@example.com")

	_, err := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	// The slot was overwritten, so the earlier refresh token is dead
	_, err = uc.Refresh(first.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefresh_RotatesPair(t *testing.T) {
	uc, _, _ := newTestAuth(t)
	registered := register(t, uc, "alice@example.com")

	pair, err := uc.Refresh(registered.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.Tokens.RefreshToken, pair.RefreshToken)

	// The old token fails after rotation, the new one succeeds
	_, err = uc.Refresh(registered.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = uc.Refresh(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_RejectsGarbageAndAccessTokens(t *testing.T) {
	uc, _, _ := newTestAuth(t)
	registered := register(t, uc, "alice@example.com")

	_, err := uc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// An access token is signed with the other secret and must be rejected
	_, err = uc.Refresh(registered.Tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	uc, userRepo, _ := newTestAuth(t)
	registered := register(t, uc, "alice@example.com")

	// Same secrets, negative lifetime: correctly signed but already expired
	expired := token.NewService("test-access-secret", "test-refresh-secret", -time.Minute, -time.Minute)
	pair, err := expired.Issue(registered.User.ID, registered.User.Email)
	require.NoError(t, err)
	require.NoError(t, userRepo.SetRefreshToken(registered.User.ID, pair.RefreshToken))

	_, err = uc.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenExpired)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	uc, _, _ := newTestAuth(t)
	registered := register(t, uc, "alice@example.com")

	require.NoError(t, uc.Logout(registered.User.ID))

	// The token has not reached its time-based expiry but the slot is clear
	_, err := uc.Refresh(registered.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
