package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/migrations"
)

// sqlDocumentStore implements [DocumentStore] on top of a single
// "documents" table keyed by (collection, id).
type sqlDocumentStore struct {
	db      *DB
	builder sq.StatementBuilderType
	ids     utils.IDGenerator
}

// NewSQLDocumentStore constructs a [DocumentStore] over db. Placeholders are
// chosen from the connection's dialect.
func NewSQLDocumentStore(db *DB, ids utils.IDGenerator) DocumentStore {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &sqlDocumentStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		ids:     ids,
	}
}

func (s *sqlDocumentStore) Get(ctx context.Context, collection, id string) (Document, error) {
	log := logger.FromContext(ctx)
	if !validDocumentID(id) {
		return nil, ErrInvalidDocumentID
	}

	query, args, err := selectDocument(s.builder, collection, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var body []byte
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*sqlDocumentStore.Get").Str("collection", collection).Str("id", id).Msg("error selecting document")
		return nil, s.wrap(ErrExecutingQuery, err)
	}

	doc := make(Document)
	if err = json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

func (s *sqlDocumentStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	id := s.ids.Generate()
	query, args, err := insertDocument(s.builder, collection, id, string(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlDocumentStore.Create").Str("collection", collection).Msg("error inserting document")
		return "", s.wrap(ErrExecutingStatement, err)
	}

	return id, nil
}

func (s *sqlDocumentStore) Set(ctx context.Context, collection, id string, doc Document) error {
	log := logger.FromContext(ctx)
	if !validDocumentID(id) {
		return ErrInvalidDocumentID
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := upsertDocument(s.builder, collection, id, string(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlDocumentStore.Set").Str("collection", collection).Str("id", id).Msg("error upserting document")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlDocumentStore) Delete(ctx context.Context, collection, id string) error {
	log := logger.FromContext(ctx)
	if !validDocumentID(id) {
		return ErrInvalidDocumentID
	}

	query, args, err := deleteDocument(s.builder, collection, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlDocumentStore.Delete").Str("collection", collection).Str("id", id).Msg("error deleting document")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlDocumentStore) Close() error {
	return s.db.Close()
}

// wrap attaches sentinel to err and marks database outages with
// [ErrStoreUnavailable].
func (s *sqlDocumentStore) wrap(sentinel, err error) error {
	if s.db.isOutage != nil && s.db.isOutage(err) {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
