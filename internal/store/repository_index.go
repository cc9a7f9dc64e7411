package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-time-diary/models"
)

// IndexRepository maintains a unique value -> user id index (usernames,
// e-mails) as one document per value. Lookups and claims are separate store
// calls; two concurrent claims of the same value may both succeed.
type IndexRepository interface {
	// Lookup returns the id of the user owning value or an error matching
	// [ErrDocumentNotFound].
	Lookup(ctx context.Context, value string) (string, error)
	// Claim assigns value to userID. It fails with [ErrIndexAlreadyClaimed]
	// when another user owns value.
	Claim(ctx context.Context, value, userID string) error
	// Release removes value from the index if userID owns it.
	Release(ctx context.Context, value, userID string) error
}

type indexRepository struct {
	entries *documentRepository[models.IndexEntry]
}

func NewUsernameIndex(store DocumentStore) IndexRepository {
	return newIndexRepository(store, CollectionUsernames)
}

func NewEmailIndex(store DocumentStore) IndexRepository {
	return newIndexRepository(store, CollectionEmails)
}

func newIndexRepository(store DocumentStore, collection string) *indexRepository {
	return &indexRepository{
		entries: newDocumentRepository(store, collection, func(e *models.IndexEntry) *string { return &e.ID }),
	}
}

func (r *indexRepository) Lookup(ctx context.Context, value string) (string, error) {
	key, err := indexKey(value)
	if err != nil {
		return "", err
	}

	entry, err := r.entries.Get(ctx, key)
	if err != nil {
		return "", err
	}

	return entry.UserID, nil
}

func (r *indexRepository) Claim(ctx context.Context, value, userID string) error {
	key, err := indexKey(value)
	if err != nil {
		return err
	}

	owner, err := r.Lookup(ctx, key)
	switch {
	case err == nil && owner != userID:
		return fmt.Errorf("claim %s/%s: %w", r.entries.collection, key, ErrIndexAlreadyClaimed)
	case err == nil:
		return nil
	case !errors.Is(err, ErrDocumentNotFound):
		return err
	}

	return r.entries.Update(ctx, models.IndexEntry{ID: key, UserID: userID})
}

func (r *indexRepository) Release(ctx context.Context, value, userID string) error {
	key, err := indexKey(value)
	if err != nil {
		return err
	}

	owner, err := r.Lookup(ctx, key)
	if errors.Is(err, ErrDocumentNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return nil
	}

	return r.entries.Delete(ctx, key)
}

// indexKey normalizes value so that "Alice@Example.com " and
// "alice@example.com" map to the same index document.
func indexKey(value string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if !validDocumentID(key) {
		return "", ErrInvalidDocumentID
	}
	return key, nil
}
