package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/instagram-insights-api/internal/config"
)

func newTestService(secret string) *Service {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}}).(*Service)
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestService("test-secret")

	token, err := s.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, ScopeAggregator, claims.Scope)
}

func TestValidateToken_Expired(t *testing.T) {
	s := newTestService("test-secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := newTestService("one").GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	_, err = newTestService("two").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDisabledService(t *testing.T) {
	s := newTestService("")
	assert.False(t, s.Enabled())

	_, err := s.GenerateToken("ops", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerateToken_MissingSubject(t *testing.T) {
	_, err := newTestService("x").GenerateToken("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingData)
}
