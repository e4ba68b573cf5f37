package repository

import (
	"context"

	"club-site/internal/domain"
)

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, msg *domain.ContactMessage) (string, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
}
