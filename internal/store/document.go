// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
)

// Document is the native representation of an entity in the document store:
// a JSON-compatible map without the document id.
type Document map[string]any

// Collections of the document store. Every entity kind lives in exactly one
// collection, one document per entity.
const (
	CollectionUsers        = "users"
	CollectionDiaries      = "diaries"
	CollectionPages        = "pages"
	CollectionSubPages     = "subPages"
	CollectionDiaryImages  = "diaryImages"
	CollectionTimeCapsules = "timeCapsules"
	CollectionUsernames    = "usernames"
	CollectionEmails       = "emails"
	CollectionCredentials  = "credentials"
)

// DocumentStore is a remote key-value document database grouped into named
// collections. Calls are one-shot: nothing is retried and nothing is batched.
//
//go:generate mockgen -source=document.go -destination=../mock/document_store_mock.go -package=mock
type DocumentStore interface {
	// Get returns the document stored under id or [ErrDocumentNotFound].
	Get(ctx context.Context, collection, id string) (Document, error)
	// Create stores doc under a newly generated id and returns that id.
	Create(ctx context.Context, collection string, doc Document) (string, error)
	// Set replaces the document stored under id, creating it if needed.
	Set(ctx context.Context, collection, id string, doc Document) error
	// Delete removes the document stored under id. Deleting a missing
	// document is not an error.
	Delete(ctx context.Context, collection, id string) error
	// Close releases the connection to the store.
	Close() error
}

func validDocumentID(id string) bool {
	return id != "" && !strings.Contains(id, "/") && id != "." && id != ".."
}
