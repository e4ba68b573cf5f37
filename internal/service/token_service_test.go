package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"club-site/internal/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService("super-secret", time.Hour)
	require.NoError(t, err)

	tok, err := svc.Issue("account-123", domain.RoleMember)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "account-123", claims.UID)
	require.Equal(t, domain.RoleMember, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService("secret", -1*time.Second)
	require.NoError(t, err)

	tok, err := svc.Issue("u1", domain.RoleMember)
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenService_NearExpiryStillValid(t *testing.T) {
	t.Parallel()

	// One second of remaining lifetime must still validate.
	svc, err := NewTokenService("secret", time.Second)
	require.NoError(t, err)

	tok, err := svc.Issue("u1", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UID)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenService("right-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService("wrong-secret", time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue("u2", domain.RoleMember)
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	tok, err := svc.Issue("u3", domain.RoleMember)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Validate(tampered)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService("k", time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate("not.a.jwt")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestNewTokenService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("", time.Hour)
	require.Error(t, err)
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService("secret", 0)
	require.NoError(t, err)
	require.Equal(t, DefaultTokenTTL, svc.ttl)
}
