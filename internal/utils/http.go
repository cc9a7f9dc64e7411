package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBody bounds request bodies decoded by [ReadJSON].
const maxJSONBody = 1 << 20

// WriteJSON writes data as a JSON body with statusCode. Data that cannot be
// encoded produces a 500 and the encoding error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// ReadJSON decodes a JSON request body into dst. Unknown fields and bodies
// larger than 1 MiB are rejected.
func ReadJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}
