package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"club-site/internal/domain"
	"club-site/internal/repository"
)

const createContactTable = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	subject TEXT NOT NULL,
	message TEXT NOT NULL,
	submitted_at DATETIME NOT NULL
);
`

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createContactTable); err != nil {
		return fmt.Errorf("create contact_messages table: %w", err)
	}
	return nil
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (string, error) {
	msg.ID = uuid.NewString()
	msg.SubmittedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO contact_messages (id, first_name, last_name, email, subject, message, submitted_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID,
		msg.FirstName,
		msg.LastName,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.SubmittedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert contact message: %v: %w", err, repository.ErrUnavailable)
	}
	return msg.ID, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, first_name, last_name, email, subject, message, submitted_at
FROM contact_messages
ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %v: %w", err, repository.ErrUnavailable)
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.FirstName,
			&msg.LastName,
			&msg.Email,
			&msg.Subject,
			&msg.Message,
			&msg.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %v: %w", err, repository.ErrUnavailable)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %v: %w", err, repository.ErrUnavailable)
	}
	return messages, nil
}
