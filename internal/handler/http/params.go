package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-time-diary/internal/service"
	"github.com/MKhiriev/go-time-diary/models"
)

// intQuery parses an optional non-negative integer query parameter.
func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, nil
}

func resetScopeQuery(r *http.Request) (service.ResetScope, error) {
	switch raw := r.URL.Query().Get("scope"); raw {
	case "", "first":
		return service.ResetFirst, nil
	case "all":
		return service.ResetAll, nil
	default:
		return 0, fmt.Errorf("%w: scope=%q", ErrInvalidQueryParam, raw)
	}
}

func floatFormValue(r *http.Request, name string, def float64) (float64, error) {
	raw := r.FormValue(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidUpload, name, raw)
	}
	return value, nil
}

// readUpload reads the "image" part of a multipart request together with
// the optional transform fields scale, rotation, offsetX and offsetY. The
// caller owns closing the returned body.
func readUpload(w http.ResponseWriter, r *http.Request) (service.ImageUpload, func() error, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return service.ImageUpload{}, nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return service.ImageUpload{}, nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}

	var transform models.ImageTransformRequest
	for _, field := range []struct {
		name string
		dst  *float64
		def  float64
	}{
		{"scale", &transform.Scale, 1},
		{"rotation", &transform.Rotation, 0},
		{"offsetX", &transform.Offset.X, 0},
		{"offsetY", &transform.Offset.Y, 0},
	} {
		if *field.dst, err = floatFormValue(r, field.name, field.def); err != nil {
			file.Close()
			return service.ImageUpload{}, nil, err
		}
	}

	upload := service.ImageUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Transform:   transform,
	}
	return upload, file.Close, nil
}
