package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curaious/tasker/internal/config"
)

func newTestAuthenticator(expiry time.Duration) *Authenticator {
	return New(&config.Config{
		JWT_SECRET: "test-secret",
		JWT_EXPIRY: expiry,
	})
}

func TestPasswordHashing(t *testing.T) {
	auth := newTestAuthenticator(time.Hour)

	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, auth.CheckPassword("s3cret-pass", hash))
	assert.False(t, auth.CheckPassword("wrong-pass", hash))
	assert.False(t, auth.CheckPassword("s3cret-pass", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	auth := newTestAuthenticator(time.Hour)

	token, err := auth.GenerateToken(42, "jo@example.com", "Jo")
	require.NoError(t, err)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, "Jo", claims.Name)
}

func TestVerifyTokenRejections(t *testing.T) {
	auth := newTestAuthenticator(time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := auth.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newTestAuthenticator(-time.Hour)
		token, err := expired.GenerateToken(42, "jo@example.com", "Jo")
		require.NoError(t, err)

		_, err = auth.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := New(&config.Config{JWT_SECRET: "other-secret", JWT_EXPIRY: time.Hour})
		token, err := other.GenerateToken(42, "jo@example.com", "Jo")
		require.NoError(t, err)

		_, err = auth.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := auth.GenerateToken(0, "jo@example.com", "Jo")
		require.NoError(t, err)

		_, err = auth.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
