package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"job-portal-backend/pkg/token"
)

func TestGenerateAndParse(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	signed, err := svc.Generate("user1", "asha@example.com", "candidate")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := svc.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, "user1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "candidate", claims.Role)
	assert.Equal(t, "user1", claims.Subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := token.NewService("issuer-secret", time.Hour)
	verifier := token.NewService("other-secret", time.Hour)

	signed, err := issuer.Generate("user1", "asha@example.com", "candidate")
	assert.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	// Negative lifetime issues a token that is already past its expiry.
	svc := token.NewService("test-secret", -time.Minute)

	signed, err := svc.Generate("user1", "asha@example.com", "candidate")
	assert.NoError(t, err)

	_, err = svc.Parse(signed)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestGenerateRequiresSecret(t *testing.T) {
	svc := token.NewService("", time.Hour)

	_, err := svc.Generate("user1", "asha@example.com", "candidate")
	assert.Error(t, err)
}
