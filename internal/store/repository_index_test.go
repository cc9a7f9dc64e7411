package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/models"
)

func TestIndexRepository_ClaimLookupRelease(t *testing.T) {
	ctx := context.Background()
	index := NewEmailIndex(newTestMemoryStore(t))

	require.NoError(t, index.Claim(ctx, " Ann@Example.com", "u1"))

	owner, err := index.Lookup(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", owner)

	// claiming again by the owner is a no-op
	require.NoError(t, index.Claim(ctx, "ann@example.com", "u1"))

	err = index.Claim(ctx, "ann@example.com", "u2")
	assert.ErrorIs(t, err, ErrIndexAlreadyClaimed)

	// only the owner can release
	require.NoError(t, index.Release(ctx, "ann@example.com", "u2"))
	_, err = index.Lookup(ctx, "ann@example.com")
	require.NoError(t, err)

	require.NoError(t, index.Release(ctx, "ann@example.com", "u1"))
	_, err = index.Lookup(ctx, "ann@example.com")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestIndexRepository_RejectsUnusableKeys(t *testing.T) {
	index := NewUsernameIndex(newTestMemoryStore(t))

	for _, value := range []string{"", "   ", "a/b"} {
		err := index.Claim(context.Background(), value, "u1")
		assert.ErrorIs(t, err, ErrInvalidDocumentID, "value %q", value)
	}
}

func TestRepository_SaveUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewDiaryRepository(newTestMemoryStore(t))

	_, err := repo.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDocumentID)

	saved, err := repo.Save(ctx, models.Diary{Title: "Travel"})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	saved.Title = "Work"
	require.NoError(t, repo.Update(ctx, saved))

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Title)

	got.ID = ""
	assert.ErrorIs(t, repo.Update(ctx, got), ErrEntityHasNoID)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	_, err = repo.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
