package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
)

// firestoreDocumentStore implements [DocumentStore] with one Cloud Firestore
// document per entity. Document ids are generated by Firestore.
type firestoreDocumentStore struct {
	client *firestore.Client
	logger *logger.Logger
}

// NewFirestoreDocumentStore connects to the Firestore database of
// cfg.ProjectID. Application default credentials are used unless
// cfg.CredentialsFile is set.
func NewFirestoreDocumentStore(ctx context.Context, cfg config.Firestore, log *logger.Logger) (DocumentStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewFirestoreDocumentStore").Str("project", cfg.ProjectID).Msg("error creating firestore client")
		return nil, fmt.Errorf("error creating firestore client: %w", err)
	}
	log.Info().Str("func", "NewFirestoreDocumentStore").Str("project", cfg.ProjectID).Msg("connected to firestore")

	return &firestoreDocumentStore{client: client, logger: log}, nil
}

func (s *firestoreDocumentStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if !validDocumentID(id) {
		return nil, ErrInvalidDocumentID
	}

	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrDocumentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreDocumentStore.Get").Str("collection", collection).Str("id", id).Msg("error reading document")
		return nil, firestoreError(err)
	}

	return Document(snap.Data()), nil
}

func (s *firestoreDocumentStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	ref := s.client.Collection(collection).NewDoc()
	if _, err := ref.Create(ctx, map[string]any(doc)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreDocumentStore.Create").Str("collection", collection).Msg("error creating document")
		return "", firestoreError(err)
	}

	return ref.ID, nil
}

func (s *firestoreDocumentStore) Set(ctx context.Context, collection, id string, doc Document) error {
	if !validDocumentID(id) {
		return ErrInvalidDocumentID
	}

	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, map[string]any(doc)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreDocumentStore.Set").Str("collection", collection).Str("id", id).Msg("error writing document")
		return firestoreError(err)
	}

	return nil
}

func (s *firestoreDocumentStore) Delete(ctx context.Context, collection, id string) error {
	if !validDocumentID(id) {
		return ErrInvalidDocumentID
	}

	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*firestoreDocumentStore.Delete").Str("collection", collection).Str("id", id).Msg("error deleting document")
		return firestoreError(err)
	}

	return nil
}

func (s *firestoreDocumentStore) Close() error {
	return s.client.Close()
}

// firestoreError marks transient gRPC statuses with [ErrStoreUnavailable].
func firestoreError(err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.ResourceExhausted:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
