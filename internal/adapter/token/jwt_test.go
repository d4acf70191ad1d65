package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wise-ads/internal/config/configs"
	"wise-ads/internal/core/domain"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer(configs.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour})

	raw, err := issuer.Issue(42, "a@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	identity, err := issuer.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, int64(42), identity.ID)
	require.Equal(t, "a@example.com", identity.Email)
	require.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer := NewIssuer(configs.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour})
	other := NewIssuer(configs.Auth{JWTSecret: "other-secret", TokenTTL: time.Hour})

	raw, err := other.Issue(42, "a@example.com", domain.RoleUser)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := NewIssuer(configs.Auth{JWTSecret: "test-secret", TokenTTL: -time.Minute})

	raw, err := issuer.Issue(42, "a@example.com", domain.RoleUser)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer := NewIssuer(configs.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour})
	_, err := issuer.Parse("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
