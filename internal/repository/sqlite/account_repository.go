package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"club-site/internal/domain"
	"club-site/internal/repository"
)

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	role TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAccountsTable); err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}
	return nil
}

// Create assigns a fresh ID and inserts the account. Email uniqueness is
// enforced by the UNIQUE column, so concurrent inserts with the same email
// resolve to exactly one account and one ErrDuplicate.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (string, error) {
	account.ID = uuid.NewString()
	account.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (id, email, name, role, password_hash, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		account.ID,
		account.Email,
		account.Name,
		string(account.Role),
		account.PasswordHash,
		account.CreatedAt,
	)
	if err != nil {
		var sqlErr *sqlite.Error
		if errors.As(err, &sqlErr) && sqlErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return "", fmt.Errorf("insert account: %w", repository.ErrDuplicate)
		}
		return "", fmt.Errorf("insert account: %v: %w", err, repository.ErrUnavailable)
	}

	return account.ID, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, name, role, password_hash, created_at
FROM accounts
WHERE email = ?`,
		email,
	)
	return scanAccount(row)
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, name, role, password_hash, created_at
FROM accounts
WHERE id = ?`,
		id,
	)
	return scanAccount(row)
}

func scanAccount(row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	var role string
	if err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&role,
		&account.PasswordHash,
		&account.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan account: %v: %w", err, repository.ErrUnavailable)
	}
	account.Role = domain.Role(role)
	return &account, nil
}
