package adapter

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/models"
)

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	mux := http.NewServeMux()
	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	})
	mux.HandleFunc("/garbage.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("definitely not a png"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestImageLoader_Load(t *testing.T) {
	srv := newImageServer(t)
	loader := NewImageLoader(resty.New(), logger.Nop())

	img, err := loader.Load(context.Background(), srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	_, err = loader.Load(context.Background(), srv.URL+"/missing.png")
	assert.ErrorIs(t, err, ErrImageLoadFailed)

	_, err = loader.Load(context.Background(), srv.URL+"/garbage.png")
	assert.ErrorIs(t, err, ErrImageUndecodable)
}

func TestImageLoader_LoadAll_FailuresKeepNilBitmap(t *testing.T) {
	srv := newImageServer(t)
	loader := NewImageLoader(resty.New(), logger.Nop())
	images := []models.DiaryImage{
		{ID: "a", URL: srv.URL + "/ok.png"},
		{ID: "b", URL: srv.URL + "/missing.png"},
		{ID: "c", URL: srv.URL + "/garbage.png"},
		{ID: "d"},
		{ID: "e", URL: srv.URL + "/ok.png"},
	}

	loaded := loader.LoadAll(context.Background(), images)

	require.Len(t, loaded, len(images))
	assert.NotNil(t, loaded[0].Bitmap)
	assert.Nil(t, loaded[1].Bitmap)
	assert.Nil(t, loaded[2].Bitmap)
	assert.Nil(t, loaded[3].Bitmap)
	assert.NotNil(t, loaded[4].Bitmap)
	for _, img := range images {
		assert.Nil(t, img.Bitmap)
	}
}

func TestHTTPServerAdapter_LoadImagesSkipsSessionToken(t *testing.T) {
	srv := newImageServer(t)
	var authHeader string
	blobs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		http.Redirect(w, r, srv.URL+"/ok.png", http.StatusFound)
	}))
	t.Cleanup(blobs.Close)

	a := newTestAdapter(t, "http://diary.invalid")
	a.SetToken("session-token")

	loaded := a.LoadImages(context.Background(), []models.DiaryImage{{ID: "i1", URL: blobs.URL + "/diary/i1.png"}})

	require.Len(t, loaded, 1)
	require.NotNil(t, loaded[0].Bitmap)
	assert.Equal(t, image.Rect(0, 0, 4, 3), loaded[0].Bitmap.Bounds())
	assert.Empty(t, authHeader)
}
