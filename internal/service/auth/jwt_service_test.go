package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestJWTService(t *testing.T, secret string, now time.Time) JWTService {
	t.Helper()
	svc, err := newJWTService(secret, func() time.Time { return now })
	require.NoError(t, err)
	return svc
}

func newTestToken(lifetime time.Duration) *domain.AuthToken {
	return &domain.AuthToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		IssuedAt:  fixedTime,
		ExpiresAt: fixedTime.Add(lifetime),
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short"})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, testSecret, fixedTime)
	record := newTestToken(time.Hour)

	token, err := svc.GenerateToken(context.Background(), record)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, record.UserID, claims.UserID)
	assert.Equal(t, record.ID, claims.TokenID)
	// Compare Unix timestamps; JWT time claims have second precision.
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	lifetime := time.Hour

	sign := func(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				svc := newTestJWTService(t, testSecret, fixedTime)
				token, err := svc.GenerateToken(context.Background(), newTestToken(lifetime))
				require.NoError(t, err)
				return svc, token
			},
		},
		{
			name: "within clock skew after expiry",
			setupFunc: func(t *testing.T) (JWTService, string) {
				gen := newTestJWTService(t, testSecret, fixedTime)
				token, err := gen.GenerateToken(context.Background(), newTestToken(lifetime))
				require.NoError(t, err)
				return newTestJWTService(t, testSecret, fixedTime.Add(lifetime+time.Minute)), token
			},
		},
		{
			name: "expired token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				gen := newTestJWTService(t, testSecret, fixedTime)
				token, err := gen.GenerateToken(context.Background(), newTestToken(lifetime))
				require.NoError(t, err)
				return newTestJWTService(t, testSecret, fixedTime.Add(lifetime+time.Hour)), token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "issued in the future",
			setupFunc: func(t *testing.T) (JWTService, string) {
				gen := newTestJWTService(t, testSecret, fixedTime)
				token, err := gen.GenerateToken(context.Background(), newTestToken(lifetime))
				require.NoError(t, err)
				return newTestJWTService(t, testSecret, fixedTime.Add(-time.Hour)), token
			},
			wantErr: ErrTokenNotYetValid,
		},
		{
			name: "invalid signature",
			setupFunc: func(t *testing.T) (JWTService, string) {
				gen := newTestJWTService(t, testSecret, fixedTime)
				token, err := gen.GenerateToken(context.Background(), newTestToken(lifetime))
				require.NoError(t, err)
				return newTestJWTService(t, wrongSecret, fixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestJWTService(t, testSecret, fixedTime), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong signing method",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token := sign(t, testSecret, jwt.SigningMethodHS512, jwt.RegisteredClaims{
					Subject:   uuid.NewString(),
					ID:        uuid.NewString(),
					IssuedAt:  jwt.NewNumericDate(fixedTime),
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(lifetime)),
				})
				return newTestJWTService(t, testSecret, fixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token := sign(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject: uuid.NewString(),
					ID:      uuid.NewString(),
				})
				return newTestJWTService(t, testSecret, fixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "subject is not a uuid",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token := sign(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   "42",
					ID:        uuid.NewString(),
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(lifetime)),
				})
				return newTestJWTService(t, testSecret, fixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing token id",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token := sign(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   uuid.NewString(),
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(lifetime)),
				})
				return newTestJWTService(t, testSecret, fixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc(t)
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}
