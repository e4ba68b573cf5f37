package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"club-site/internal/domain"
	"club-site/internal/repository"
	"club-site/internal/repository/sqlite"
)

func newTestAccountService(t *testing.T) AccountService {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewAccountRepository(db)
	require.NoError(t, repo.Init(context.Background()))

	return NewAccountService(repo)
}

func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	svc := newTestAccountService(t)
	ctx := context.Background()

	account, err := svc.Register(ctx, "A@X.com", "secret1", "A", domain.RoleMember)
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.Equal(t, "a@x.com", account.Email)
	require.Equal(t, domain.RoleMember, account.Role)
	require.Empty(t, account.PasswordHash, "verifier must never leave the service")
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "secret-pass-1", "A", domain.RoleMember)
	require.NoError(t, err)

	// Case-insensitive uniqueness: the second registration differs only in case.
	_, err = svc.Register(ctx, "A@X.COM", "other-pass-22", "B", domain.RoleMember)
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAccountService_RegisterValidation(t *testing.T) {
	t.Parallel()

	svc := newTestAccountService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		display  string
		role     domain.Role
	}{
		{"missing email", "", "secret-pass-1", "A", domain.RoleMember},
		{"malformed email", "not-an-email", "secret-pass-1", "A", domain.RoleMember},
		{"missing password", "a@x.com", "", "A", domain.RoleMember},
		{"missing name", "a@x.com", "secret-pass-1", "", domain.RoleMember},
		{"unknown role", "a@x.com", "secret-pass-1", "A", domain.Role("owner")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.email, tc.password, tc.display, tc.role)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAccountService_VerifyCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestAccountService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "a@x.com", "correct-horse", "A", domain.RoleAdmin)
	require.NoError(t, err)

	account, err := svc.VerifyCredentials(ctx, "a@x.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, created.ID, account.ID)
	require.Equal(t, domain.RoleAdmin, account.Role)
	require.Empty(t, account.PasswordHash)

	// Upper-cased email resolves to the same account.
	_, err = svc.VerifyCredentials(ctx, "A@X.com", "correct-horse")
	require.NoError(t, err)
}

func TestAccountService_VerifyCredentials_NoEnumeration(t *testing.T) {
	t.Parallel()

	svc := newTestAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "correct-horse", "A", domain.RoleMember)
	require.NoError(t, err)

	_, wrongPassErr := svc.VerifyCredentials(ctx, "a@x.com", "wrong")
	_, unknownErr := svc.VerifyCredentials(ctx, "nobody@x.com", "whatever")

	// Wrong password and unknown email must be indistinguishable.
	require.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	require.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestAccountService_GetByID(t *testing.T) {
	t.Parallel()

	svc := newTestAccountService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "a@x.com", "secret-pass-1", "A", domain.RoleMember)
	require.NoError(t, err)

	account, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", account.Email)

	_, err = svc.GetByID(ctx, "missing-id")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

type unavailableAccountRepo struct{}

func (unavailableAccountRepo) Init(context.Context) error { return nil }
func (unavailableAccountRepo) Create(context.Context, *domain.Account) (string, error) {
	return "", repository.ErrUnavailable
}
func (unavailableAccountRepo) GetByEmail(context.Context, string) (*domain.Account, error) {
	return nil, repository.ErrUnavailable
}
func (unavailableAccountRepo) GetByID(context.Context, string) (*domain.Account, error) {
	return nil, repository.ErrUnavailable
}

func TestAccountService_UpstreamUnavailable(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(unavailableAccountRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "secret-pass-1", "A", domain.RoleMember)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	_, err = svc.VerifyCredentials(ctx, "a@x.com", "secret-pass-1")
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	_, err = svc.GetByID(ctx, "id")
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
