package store

import "errors"

// Sentinel errors returned by the document store, repositories and
// aggregate storages. Callers should use [errors.Is] to match against them.
var (
	// ErrDocumentNotFound is returned when no document exists under the
	// requested id.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocumentID is returned for an empty id or one that cannot be
	// used as a document key.
	ErrInvalidDocumentID = errors.New("invalid document id")

	// ErrEntityHasID is returned when saving an entity that already carries
	// an id. Saved entities must be updated instead.
	ErrEntityHasID = errors.New("entity already has an id")

	// ErrEntityHasNoID is returned when updating an entity that was never
	// saved.
	ErrEntityHasNoID = errors.New("entity has no id")

	// ErrEncodingDocument is returned when an entity cannot be converted to
	// a document.
	ErrEncodingDocument = errors.New("error encoding document")

	// ErrDecodingDocument is returned when a stored document does not match
	// the entity it is read into.
	ErrDecodingDocument = errors.New("error decoding document")

	// ErrUsernameTaken is returned when another user already owns the
	// username.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrEmailTaken is returned when another user already owns the e-mail.
	ErrEmailTaken = errors.New("email is already taken")

	// ErrIndexAlreadyClaimed is returned when a unique index entry belongs to
	// another user.
	ErrIndexAlreadyClaimed = errors.New("index entry is claimed by another user")

	// ErrBlobStorageDisabled is returned by image uploads when no blob
	// storage is configured.
	ErrBlobStorageDisabled = errors.New("blob storage is not configured")

	// ErrUnknownBackend is returned when the configured storage backend does
	// not exist.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStoreUnavailable marks driver errors classified as transient. It is
	// informational: nothing in the store retries.
	ErrStoreUnavailable = errors.New("document store is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL document store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a document row fails.
	ErrScanningRow = errors.New("failed to scan document row")
)
