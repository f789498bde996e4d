package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaconnect/derma-api/internal/model"
)

func testService() JWTService {
	return NewJWTService(Config{
		Secret:        "test-secret",
		RefreshSecret: "test-refresh-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func testUser() *model.User {
	u := &model.User{
		Email: "doc@example.com",
		Role:  model.RoleDoctor,
	}
	u.ID = uuid.New()
	return u
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	user := testUser()

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleDoctor, claims.Role)
}

func TestRefreshSecretIsSeparate(t *testing.T) {
	svc := testService()
	user := testUser()

	refresh, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(refresh)
	assert.Error(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService(Config{
		Secret:        "test-secret",
		RefreshSecret: "test-refresh-secret",
		Expiry:        -time.Minute,
		RefreshExpiry: time.Hour,
	})

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := testService().ValidateToken("not-a-token")
	assert.Error(t, err)
}
