package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
)

// Storages bundles the aggregate storages sharing one document store.
type Storages struct {
	DiaryStorage       DiaryStorage
	UserStorage        UserStorage
	TimeCapsuleStorage TimeCapsuleStorage

	// BlobStorage is nil when image uploads are not configured.
	BlobStorage BlobStorage

	documents DocumentStore
}

// NewStorages opens the configured backend, migrates SQL databases and wires
// the aggregate storages on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	documents, err := openDocumentStore(ctx, cfg, ids, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Str("backend", cfg.Backend).Msg("error opening document store")
		return nil, err
	}

	var blobs BlobStorage
	if cfg.Blobs.Endpoint != "" {
		blobs, err = NewMinioBlobStorage(ctx, cfg.Blobs, ids, log)
		if err != nil {
			_ = documents.Close()
			return nil, err
		}
	}

	return NewStoragesFromDocuments(documents, blobs, log), nil
}

// NewStoragesFromDocuments wires the aggregate storages over an already open
// document store. blobs may be nil.
func NewStoragesFromDocuments(documents DocumentStore, blobs BlobStorage, log *logger.Logger) *Storages {
	diaries := NewDiaryStorage(documents, blobs, log)

	return &Storages{
		DiaryStorage:       diaries,
		UserStorage:        NewUserStorage(documents, diaries, log),
		TimeCapsuleStorage: NewTimeCapsuleStorage(documents, log),
		BlobStorage:        blobs,
		documents:          documents,
	}
}

// Close closes the underlying document store.
func (s *Storages) Close() error {
	return s.documents.Close()
}

func openDocumentStore(ctx context.Context, cfg config.Storage, ids utils.IDGenerator, log *logger.Logger) (DocumentStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryDocumentStore(cfg.Memory.SnapshotPath, ids, log)
	case config.BackendFirestore:
		return NewFirestoreDocumentStore(ctx, cfg.Firestore, log)
	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return migrated(db, ids)
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.SQLite, log)
		if err != nil {
			return nil, err
		}
		return migrated(db, ids)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func migrated(db *DB, ids utils.IDGenerator) (DocumentStore, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	return NewSQLDocumentStore(db, ids), nil
}
