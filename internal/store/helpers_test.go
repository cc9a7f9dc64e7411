package store

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/logger"
)

// sequenceIDs hands out "id-1", "id-2", ...
type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "id-" + strconv.Itoa(g.n)
}

func newTestMemoryStore(t *testing.T) DocumentStore {
	t.Helper()
	s, err := NewMemoryDocumentStore("", &sequenceIDs{}, logger.Nop())
	require.NoError(t, err)
	return s
}

// countingStore counts calls per operation and can fail chosen ones.
type countingStore struct {
	DocumentStore

	mu     sync.Mutex
	calls  map[string]int
	failOn map[string]error
}

func newCountingStore(inner DocumentStore) *countingStore {
	return &countingStore{DocumentStore: inner, calls: map[string]int{}, failOn: map[string]error{}}
}

func (s *countingStore) record(op, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	s.calls[op+":"+collection]++
	return s.failOn[op+":"+collection]
}

func (s *countingStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := s.record("get", collection); err != nil {
		return nil, err
	}
	return s.DocumentStore.Get(ctx, collection, id)
}

func (s *countingStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	if err := s.record("create", collection); err != nil {
		return "", err
	}
	return s.DocumentStore.Create(ctx, collection, doc)
}

func (s *countingStore) Set(ctx context.Context, collection, id string, doc Document) error {
	if err := s.record("set", collection); err != nil {
		return err
	}
	return s.DocumentStore.Set(ctx, collection, id, doc)
}

func (s *countingStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.record("delete", collection); err != nil {
		return err
	}
	return s.DocumentStore.Delete(ctx, collection, id)
}

func (s *countingStore) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}
