package auth_test

import (
	"testing"
	"time"

	"library-services/internal/auth"
	"library-services/internal/config"
	"library-services/internal/models"
	"library-services/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthService(t *testing.T) *auth.Service {
	t.Helper()

	db, err := store.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := config.AuthConfig{
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Hour,
		BCryptCost:     bcrypt.MinCost,
	}
	return auth.NewService(store.NewUserStore(db), cfg)
}

func TestService_RegisterAndLogin(t *testing.T) {
	service := setupAuthService(t)

	user, err := service.Register("alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "correct horse battery", user.Password)

	token, err := service.Login("alice", "correct horse battery")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["user_id"])
}

func TestService_LoginWrongPassword(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register("alice", "correct horse battery")
	require.NoError(t, err)

	_, err = service.Login("alice", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_LoginUnknownUser(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Login("nobody", "whatever")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_RegisterDuplicateUsername(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register("alice", "correct horse battery")
	require.NoError(t, err)

	_, err = service.Register("alice", "another password")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}
