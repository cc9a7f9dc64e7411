package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-diary/models"
)

// Repository gives one entity kind get/save/update/delete by id over a
// single collection. It performs exactly one store call per operation.
type Repository[T any] interface {
	// Get returns the entity stored under id. A missing entity yields an
	// error matching [ErrDocumentNotFound].
	Get(ctx context.Context, id string) (T, error)
	// Save stores a new entity. The entity must not carry an id; the
	// returned copy carries the generated one and must be used from then on.
	Save(ctx context.Context, entity T) (T, error)
	// Update replaces the stored entity with the same id.
	Update(ctx context.Context, entity T) error
	// Delete removes the entity stored under id.
	Delete(ctx context.Context, id string) error
}

type documentRepository[T any] struct {
	store      DocumentStore
	collection string
	idOf       func(*T) *string
}

func newDocumentRepository[T any](store DocumentStore, collection string, idOf func(*T) *string) *documentRepository[T] {
	return &documentRepository[T]{store: store, collection: collection, idOf: idOf}
}

func (r *documentRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var entity T
	if id == "" {
		return entity, fmt.Errorf("%s: %w", r.collection, ErrInvalidDocumentID)
	}

	doc, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		return entity, fmt.Errorf("get %s/%s: %w", r.collection, id, err)
	}

	if err = decode(id, doc, &entity); err != nil {
		return entity, fmt.Errorf("get %s/%s: %w", r.collection, id, err)
	}

	return entity, nil
}

func (r *documentRepository[T]) Save(ctx context.Context, entity T) (T, error) {
	if *r.idOf(&entity) != "" {
		return entity, fmt.Errorf("save %s: %w", r.collection, ErrEntityHasID)
	}

	doc, err := encode(r.collection, entity)
	if err != nil {
		return entity, fmt.Errorf("save %s: %w", r.collection, err)
	}

	id, err := r.store.Create(ctx, r.collection, doc)
	if err != nil {
		return entity, fmt.Errorf("save %s: %w", r.collection, err)
	}

	*r.idOf(&entity) = id
	return entity, nil
}

func (r *documentRepository[T]) Update(ctx context.Context, entity T) error {
	id := *r.idOf(&entity)
	if id == "" {
		return fmt.Errorf("update %s: %w", r.collection, ErrEntityHasNoID)
	}

	doc, err := encode(r.collection, entity)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", r.collection, id, err)
	}

	if err = r.store.Set(ctx, r.collection, id, doc); err != nil {
		return fmt.Errorf("update %s/%s: %w", r.collection, id, err)
	}

	return nil
}

func (r *documentRepository[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete %s: %w", r.collection, ErrInvalidDocumentID)
	}

	if err := r.store.Delete(ctx, r.collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.collection, id, err)
	}

	return nil
}

func NewUserRepository(store DocumentStore) Repository[models.User] {
	return newDocumentRepository(store, CollectionUsers, func(u *models.User) *string { return &u.ID })
}

// NewCredentialsRepository stores credentials under the owning user's id,
// so credentials are written with Update, never Save.
func NewCredentialsRepository(store DocumentStore) Repository[models.Credentials] {
	return newDocumentRepository(store, CollectionCredentials, func(c *models.Credentials) *string { return &c.ID })
}

func NewDiaryRepository(store DocumentStore) Repository[models.Diary] {
	return newDocumentRepository(store, CollectionDiaries, func(d *models.Diary) *string { return &d.ID })
}

func NewPageRepository(store DocumentStore) Repository[models.DiaryPage] {
	return newDocumentRepository(store, CollectionPages, func(p *models.DiaryPage) *string { return &p.ID })
}

func NewSubPageRepository(store DocumentStore) Repository[models.DiarySubPage] {
	return newDocumentRepository(store, CollectionSubPages, func(s *models.DiarySubPage) *string { return &s.ID })
}

func NewImageRepository(store DocumentStore) Repository[models.DiaryImage] {
	return newDocumentRepository(store, CollectionDiaryImages, func(i *models.DiaryImage) *string { return &i.ID })
}

func NewTimeCapsuleRepository(store DocumentStore) Repository[models.TimeCapsule] {
	return newDocumentRepository(store, CollectionTimeCapsules, func(c *models.TimeCapsule) *string { return &c.ID })
}
