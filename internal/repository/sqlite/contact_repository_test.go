package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"club-site/internal/domain"
)

func TestContactRepository_CreateAndList(t *testing.T) {
	t.Parallel()

	repo := NewContactRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	first := &domain.ContactMessage{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		Subject:   "Joining",
		Message:   "How do I join?",
	}
	id, err := repo.Create(ctx, first)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Ensure distinct timestamps so ordering is deterministic.
	time.Sleep(5 * time.Millisecond)

	second := &domain.ContactMessage{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@x.com",
		Subject:   "Talk",
		Message:   "Happy to give a talk.",
	}
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	// Newest first.
	require.Equal(t, "Grace", messages[0].FirstName)
	require.Equal(t, "Ada", messages[1].FirstName)
}

func TestContactRepository_ListEmpty(t *testing.T) {
	t.Parallel()

	repo := NewContactRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, messages)
}
