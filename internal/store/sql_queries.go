package store

import (
	sq "github.com/Masterminds/squirrel"
)

// documentsTable stores every collection of the SQL backends. The body is
// JSONB on PostgreSQL and TEXT on SQLite.
const (
	documentsTable   = "documents"
	columnCollection = "collection"
	columnID         = "id"
	columnBody       = "body"
)

// upsertDocumentSuffix turns an INSERT into an upsert. The syntax is shared
// by PostgreSQL and SQLite 3.24+.
const upsertDocumentSuffix = "ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP"

func selectDocument(b sq.StatementBuilderType, collection, id string) (string, []any, error) {
	return b.Select(columnBody).
		From(documentsTable).
		Where(sq.Eq{columnCollection: collection, columnID: id}).
		ToSql()
}

func insertDocument(b sq.StatementBuilderType, collection, id string, body string) (string, []any, error) {
	return b.Insert(documentsTable).
		Columns(columnCollection, columnID, columnBody).
		Values(collection, id, body).
		ToSql()
}

func upsertDocument(b sq.StatementBuilderType, collection, id string, body string) (string, []any, error) {
	return b.Insert(documentsTable).
		Columns(columnCollection, columnID, columnBody).
		Values(collection, id, body).
		Suffix(upsertDocumentSuffix).
		ToSql()
}

func deleteDocument(b sq.StatementBuilderType, collection, id string) (string, []any, error) {
	return b.Delete(documentsTable).
		Where(sq.Eq{columnCollection: collection, columnID: id}).
		ToSql()
}
