package adapter

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/models"
)

// imageLoadConcurrency bounds parallel downloads of one sub-page.
const imageLoadConcurrency = 4

// imageLoader downloads diary images straight from blob storage, so it uses
// its own client without the session token or the server base URL.
type imageLoader struct {
	client *resty.Client
	logger *logger.Logger
}

func NewImageLoader(client *resty.Client, log *logger.Logger) ImageLoader {
	return &imageLoader{client: client, logger: log}
}

func (l *imageLoader) Load(ctx context.Context, url string) (image.Image, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageLoadFailed, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s returned %d", ErrImageLoadFailed, url, resp.StatusCode())
	}

	img, _, err := image.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageUndecodable, err)
	}

	return img, nil
}

// LoadAll loads the images concurrently. The input is not modified.
func (l *imageLoader) LoadAll(ctx context.Context, images []models.DiaryImage) []models.DiaryImage {
	loaded := make([]models.DiaryImage, len(images))
	copy(loaded, images)

	var g errgroup.Group
	g.SetLimit(imageLoadConcurrency)
	for i := range loaded {
		if loaded[i].URL == "" {
			continue
		}
		g.Go(func() error {
			img, err := l.Load(ctx, loaded[i].URL)
			if err != nil {
				l.logger.Warn().Err(err).Str("image_id", loaded[i].ID).Msg("image not loaded")
				return nil
			}
			loaded[i].Bitmap = img
			return nil
		})
	}
	_ = g.Wait()

	return loaded
}
