package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"club-site/internal/domain"
	"club-site/internal/repository"
	"club-site/internal/storage"
)

// ContactService handles contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

type contactService struct {
	messages repository.ContactRepository
	archive  storage.Service
	archOpts storage.ArchiveOptions
	logger   *logrus.Logger
}

// NewContactService builds a contact service. The archive service may be nil,
// in which case submissions are only persisted locally.
func NewContactService(messages repository.ContactRepository, archive storage.Service, archOpts storage.ArchiveOptions, logger *logrus.Logger) ContactService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &contactService{
		messages: messages,
		archive:  archive,
		archOpts: archOpts,
		logger:   logger,
	}
}

func (s *contactService) Submit(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.FirstName = strings.TrimSpace(msg.FirstName)
	msg.LastName = strings.TrimSpace(msg.LastName)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.FirstName == "" || msg.LastName == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrInvalidInput)
	}
	if !strings.Contains(msg.Email, "@") {
		return nil, fmt.Errorf("%w: email is malformed", domain.ErrInvalidInput)
	}

	if _, err := s.messages.Create(ctx, &msg); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, fmt.Errorf("save contact message: %w", domain.ErrUpstreamUnavailable)
		}
		return nil, err
	}

	// Archive is best effort; the submission is already durable locally.
	if s.archive != nil && s.archOpts.Bucket != "" {
		key := fmt.Sprintf("%s.json", msg.ID)
		if location, err := s.archive.PutJSON(ctx, key, msg, s.archOpts); err != nil {
			s.logger.Warnf("archive contact message %s: %v", msg.ID, err)
		} else {
			s.logger.Infof("archived contact message to %s", location)
		}
	}

	return &msg, nil
}

func (s *contactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, fmt.Errorf("list contact messages: %w", domain.ErrUpstreamUnavailable)
		}
		return nil, err
	}
	return messages, nil
}
