package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"club-site/internal/domain"
	"club-site/internal/repository"
)

// bcryptCost is the work factor for password verifiers. Tunable here, never
// derived from input.
const bcryptCost = bcrypt.DefaultCost

// AccountService describes account lifecycle operations.
type AccountService interface {
	Register(ctx context.Context, email, password, name string, role domain.Role) (*domain.Account, error)
	VerifyCredentials(ctx context.Context, email, password string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

type accountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) Register(ctx context.Context, email, password, name string, role domain.Role) (*domain.Account, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is malformed", domain.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}

	if _, err := s.accounts.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, domain.ErrEmailTaken
		case errors.Is(err, repository.ErrUnavailable):
			return nil, fmt.Errorf("create account: %w", domain.ErrUpstreamUnavailable)
		}
		return nil, err
	}

	return sanitizeAccount(account), nil
}

// VerifyCredentials re-derives the bcrypt verifier for the supplied password
// and compares it to the stored one. Unknown email and wrong password return
// the same error so the login boundary leaks nothing about which emails exist.
func (s *accountService) VerifyCredentials(ctx context.Context, email, password string) (*domain.Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, domain.ErrInvalidCredentials
		case errors.Is(err, repository.ErrUnavailable):
			return nil, fmt.Errorf("find account: %w", domain.ErrUpstreamUnavailable)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return sanitizeAccount(account), nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, domain.ErrNotFound
		case errors.Is(err, repository.ErrUnavailable):
			return nil, fmt.Errorf("get account: %w", domain.ErrUpstreamUnavailable)
		}
		return nil, err
	}
	return sanitizeAccount(account), nil
}

// normalizeEmail lower-cases and trims so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeAccount(account *domain.Account) *domain.Account {
	if account == nil {
		return nil
	}
	return &domain.Account{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}
}
