package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thisisdkyadav/hdnotes/internal/api"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	tests := []struct {
		name  string
		token string
		want  time.Time
	}{
		{"valid exp claim", signedToken(t, exp), exp},
		{"no exp claim", signedToken(t, time.Time{}), time.Time{}},
		{"opaque token", "not-a-jwt", time.Time{}},
		{"empty token", "", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(NewMemPort())
			if tt.token != "" {
				require.NoError(t, store.Login(Session{
					User:  api.User{ID: "u1"},
					Token: tt.token,
				}))
			}
			assert.True(t, store.TokenExpiry().Equal(tt.want))
		})
	}
}
