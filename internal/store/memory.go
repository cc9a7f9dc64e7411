package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
)

// memoryDocumentStore keeps all collections in process memory. When a
// snapshot path is configured every write is flushed to a JSON file, and the
// file is loaded back on start.
type memoryDocumentStore struct {
	path       string
	persistent bool

	mu          sync.RWMutex
	collections map[string]map[string]Document

	ids    utils.IDGenerator
	logger *logger.Logger
}

type memorySnapshot struct {
	Collections map[string]map[string]Document `json:"collections"`
}

// NewMemoryDocumentStore constructs an in-memory [DocumentStore]. An empty
// snapshotPath keeps the data in memory only.
func NewMemoryDocumentStore(snapshotPath string, ids utils.IDGenerator, log *logger.Logger) (DocumentStore, error) {
	s := &memoryDocumentStore{
		path:        snapshotPath,
		persistent:  snapshotPath != "",
		collections: make(map[string]map[string]Document),
		ids:         ids,
		logger:      log,
	}
	if err := s.load(); err != nil {
		log.Err(err).Str("func", "NewMemoryDocumentStore").Str("path", snapshotPath).Msg("error loading snapshot")
		return nil, err
	}

	log.Debug().Str("func", "NewMemoryDocumentStore").Bool("persistent", s.persistent).Msg("in-memory document store is ready")
	return s, nil
}

func (s *memoryDocumentStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if !validDocumentID(id) {
		return nil, ErrInvalidDocumentID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	return maps.Clone(doc), nil
}

func (s *memoryDocumentStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Generate()
	s.put(collection, id, doc)

	return id, s.persist()
}

func (s *memoryDocumentStore) Set(ctx context.Context, collection, id string, doc Document) error {
	if !validDocumentID(id) {
		return ErrInvalidDocumentID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(collection, id, doc)

	return s.persist()
}

func (s *memoryDocumentStore) Delete(ctx context.Context, collection, id string) error {
	if !validDocumentID(id) {
		return ErrInvalidDocumentID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return nil
	}
	delete(s.collections[collection], id)

	return s.persist()
}

func (s *memoryDocumentStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist()
}

func (s *memoryDocumentStore) put(collection, id string, doc Document) {
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]Document)
		s.collections[collection] = docs
	}
	docs[id] = maps.Clone(doc)
}

func (s *memoryDocumentStore) load() error {
	if !s.persistent {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read snapshot file: %w", err)
	}

	var snapshot memorySnapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot file: %w", err)
	}

	if snapshot.Collections != nil {
		s.collections = snapshot.Collections
	}

	return nil
}

// persist must be called with s.mu held.
func (s *memoryDocumentStore) persist() error {
	if !s.persistent {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(memorySnapshot{Collections: s.collections}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	return nil
}
