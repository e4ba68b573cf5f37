package repository

import (
	"context"
	"errors"

	"club-site/internal/domain"
)

// Store-level sentinel errors. Implementations translate driver failures into
// these so services never match on driver error text.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicate   = errors.New("record already exists")
	ErrUnavailable = errors.New("store unavailable")
)

// AccountRepository is the identity store for accounts. Implementations must
// enforce email uniqueness atomically: a race between two inserts with the
// same email surfaces as ErrDuplicate, never a second account.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}
