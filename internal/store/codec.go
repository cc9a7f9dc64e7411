package store

import (
	"encoding/json"
	"fmt"
)

// documentIDField is the JSON name of the id field shared by all entities.
const documentIDField = "id"

// workingFields lists, per collection, the fields that exist on the entity
// while it is being worked with but are never written to the store.
var workingFields = map[string][]string{
	CollectionSubPages: {"phase", "iteration"},
}

// encode converts entity into the document stored in collection. The id and
// the collection's working fields are dropped; fields tagged json:"-" never
// reach the document in the first place.
func encode(collection string, entity any) (Document, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	doc := make(Document)
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	delete(doc, documentIDField)
	for _, field := range workingFields[collection] {
		delete(doc, field)
	}

	return doc, nil
}

// decode fills dst from doc and threads id back into the entity.
func decode(id string, doc Document, dst any) error {
	body := make(Document, len(doc)+1)
	for k, v := range doc {
		body[k] = v
	}
	body[documentIDField] = id

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return nil
}
