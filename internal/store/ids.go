package store

import (
	"errors"
	"slices"
)

// appendID returns ids with id appended unless it is already present.
func appendID(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(slices.Clone(ids), id)
}

// removeID returns ids without any occurrence of id.
func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
}

// ignoreNotFound drops [ErrDocumentNotFound] so cascades can step over
// dangling references.
func ignoreNotFound(err error) error {
	if errors.Is(err, ErrDocumentNotFound) {
		return nil
	}
	return err
}
