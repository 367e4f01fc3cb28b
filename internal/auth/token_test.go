package auth_test

import (
	"strings"
	"testing"
	"time"
	"touchhub/backend/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestNewTokenService(t *testing.T) {
	t.Run("refuses empty secret", func(t *testing.T) {
		_, err := auth.NewTokenService("", time.Minute)
		assert.ErrorIs(t, err, auth.ErrMissingSecret)
	})

	t.Run("zero ttl uses default", func(t *testing.T) {
		clock := newClock()
		svc, err := auth.NewTokenService("secret", 0, auth.WithClock(clock.Now))
		require.NoError(t, err)

		_, expiresAt, err := svc.Issue("alice")
		require.NoError(t, err)
		assert.Equal(t, clock.now.Add(auth.DefaultTokenTTL), expiresAt)
	})
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	clock := newClock()
	svc, err := auth.NewTokenService("secret", 30*time.Minute, auth.WithClock(clock.Now))
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(30*time.Minute), expiresAt)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	t.Run("still valid just before expiry", func(t *testing.T) {
		clock.now = expiresAt.Add(-time.Second)
		subject, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	t.Run("invalid once expired", func(t *testing.T) {
		clock.now = expiresAt.Add(time.Second)
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestTokenService_IssueWithTTL(t *testing.T) {
	clock := newClock()
	svc, err := auth.NewTokenService("secret", time.Hour, auth.WithClock(clock.Now))
	require.NoError(t, err)

	token, expiresAt, err := svc.IssueWithTTL("bob", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(5*time.Second), expiresAt)

	clock.now = clock.now.Add(10 * time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	clock := newClock()
	svc, err := auth.NewTokenService("secret", time.Hour, auth.WithClock(clock.Now))
	require.NoError(t, err)
	other, err := auth.NewTokenService("another-secret", time.Hour, auth.WithClock(clock.Now))
	require.NoError(t, err)

	valid, _, err := svc.Issue("alice")
	require.NoError(t, err)
	forged, _, err := other.Issue("alice")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "alice",
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"signed with another secret", forged},
		{"tampered payload", tampered},
		{"alg none", noneToken},
		{"unexpected algorithm", hs512},
		{"missing expiry", noExpiry},
		{"missing subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
			assert.Empty(t, subject)
		})
	}
}
