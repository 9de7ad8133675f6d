package taskmanager_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	taskmanager "github.com/vaishnavvp/task-manager-backend"
)

func TestJWTClaims(t *testing.T) {
	now := time.Now()
	claims := &taskmanager.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "subject-id",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UID:      "user-id",
		UserRole: "admin",
	}

	assert.Equal(t, "subject-id", claims.Subject())
	assert.Equal(t, "user-id", claims.UserID())
	assert.Equal(t, "admin", claims.Role())
	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("member"))
	assert.WithinDuration(t, now, claims.IssuedAt(), time.Second)
	assert.WithinDuration(t, now.Add(time.Hour), claims.Expires(), time.Second)
}

func TestJWTClaimsUserIDFallsBackToSubject(t *testing.T) {
	claims := &taskmanager.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "subject-id"},
	}

	assert.Equal(t, "subject-id", claims.UserID())
}

func TestJWTClaimsZeroTimes(t *testing.T) {
	claims := &taskmanager.JWTClaims{}

	assert.True(t, claims.Expires().IsZero())
	assert.True(t, claims.IssuedAt().IsZero())
}
