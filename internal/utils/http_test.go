package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageBody struct {
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
}

// ─────────────────────────────────────────────
// WriteJSON
// ─────────────────────────────────────────────

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "page", data: pageBody{Text: "Дорогой дневник"}, status: http.StatusOK, wantBody: `{"text":"Дорогой дневник"}`},
		{name: "created with images", data: pageBody{Text: "t", Images: []string{"a.png"}}, status: http.StatusCreated, wantBody: `{"text":"t","images":["a.png"]}`},
		{name: "error payload", data: map[string]string{"error": "diary not found"}, status: http.StatusNotFound, wantBody: `{"error":"diary not found"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null"},
		{name: "empty list", data: []pageBody{}, status: http.StatusOK, wantBody: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ─────────────────────────────────────────────
// ReadJSON
// ─────────────────────────────────────────────

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    pageBody
		wantErr bool
	}{
		{name: "valid", body: `{"text":"hello","images":["x"]}`, want: pageBody{Text: "hello", Images: []string{"x"}}},
		{name: "unknown field", body: `{"text":"hello","mood":"sunny"}`, wantErr: true},
		{name: "malformed", body: `{"text":`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "over the limit", body: `{"text":"` + strings.Repeat("a", maxJSONBody) + `"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/api/diaries/d1/pages/p1", strings.NewReader(tt.body))

			var got pageBody
			err := ReadJSON(r, &got)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
