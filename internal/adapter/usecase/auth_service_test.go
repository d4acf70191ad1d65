package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, fakeIssuer{}, fakeIdentityVerifier{}, testLogger())

	res, err := svc.Register(context.Background(), "a@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, domain.RoleUser, res.User.Role)

	// the stored hash is never the raw password
	_, hash, err := users.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	res, err = svc.Login(context.Background(), "a@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "a@example.com", res.User.Email)

	_, err = svc.Login(context.Background(), "a@example.com", "wrong-pass")
	require.ErrorIs(t, err, port.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret1")
	require.ErrorIs(t, err, port.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeIssuer{}, fakeIdentityVerifier{}, testLogger())

	var vErr *domain.ValidationError
	_, err := svc.Register(context.Background(), "", "secret1")
	require.ErrorAs(t, err, &vErr)

	_, err = svc.Register(context.Background(), "a@example.com", "short")
	require.ErrorAs(t, err, &vErr)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeIssuer{}, fakeIdentityVerifier{}, testLogger())

	_, err := svc.Register(context.Background(), "a@example.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "a@example.com", "secret2")
	require.ErrorIs(t, err, port.ErrEmailTaken)
}

func TestLoginGoogleAccountRejectsPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, fakeIssuer{}, fakeIdentityVerifier{email: "g@example.com"}, testLogger())

	_, err := svc.LoginWithGoogle(context.Background(), "credential")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "g@example.com", "whatever1")
	require.ErrorIs(t, err, port.ErrOAuthAccount)
}

func TestLoginWithGoogle(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, fakeIssuer{}, fakeIdentityVerifier{email: "g@example.com"}, testLogger())

	// first login creates the account
	res, err := svc.LoginWithGoogle(context.Background(), "credential")
	require.NoError(t, err)
	firstID := res.User.ID

	// second login reuses it
	res, err = svc.LoginWithGoogle(context.Background(), "credential")
	require.NoError(t, err)
	require.Equal(t, firstID, res.User.ID)
}

func TestLoginWithGoogleBadCredential(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeIssuer{},
		fakeIdentityVerifier{err: errors.New("bad token")}, testLogger())

	_, err := svc.LoginWithGoogle(context.Background(), "credential")
	require.ErrorIs(t, err, port.ErrInvalidCredentials)

	var vErr *domain.ValidationError
	_, err = svc.LoginWithGoogle(context.Background(), "")
	require.ErrorAs(t, err, &vErr)
}
