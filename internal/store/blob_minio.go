package store

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
)

// minioBlobStorage stores diary images in a MinIO (S3 compatible) bucket.
type minioBlobStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	ids       utils.IDGenerator
	logger    *logger.Logger
}

// NewMinioBlobStorage connects to MinIO and makes sure the bucket exists.
func NewMinioBlobStorage(ctx context.Context, cfg config.Blobs, ids utils.IDGenerator, log *logger.Logger) (BlobStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinioBlobStorage").Msg("error creating minio client")
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Err(err).Str("func", "NewMinioBlobStorage").Str("bucket", cfg.Bucket).Msg("error checking bucket")
		return nil, fmt.Errorf("error checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Err(err).Str("func", "NewMinioBlobStorage").Str("bucket", cfg.Bucket).Msg("error creating bucket")
			return nil, fmt.Errorf("error creating bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &minioBlobStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: blobPublicURL(cfg),
		ids:       ids,
		logger:    log,
	}, nil
}

func (m *minioBlobStorage) Upload(ctx context.Context, object BlobObject) (BlobInfo, error) {
	fileExt := strings.ToLower(filepath.Ext(object.FileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := object.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(fileExt)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("diaries/%s/%s/%s%s", object.DiaryID, object.SubPageID, m.ids.Generate(), fileExt)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, object.Body, object.Size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": object.FileName,
				"diary-id":          object.DiaryID,
				"sub-page-id":       object.SubPageID,
				"uploaded-at":       time.Now().UTC().Format(time.RFC3339),
			},
		})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioBlobStorage.Upload").Str("object", objectName).Msg("error uploading object")
		return BlobInfo{}, fmt.Errorf("error uploading %s: %w", objectName, err)
	}

	return BlobInfo{
		ObjectName: objectName,
		URL:        m.publicURL + "/" + m.bucket + "/" + objectName,
	}, nil
}

func (m *minioBlobStorage) Delete(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioBlobStorage.Delete").Str("object", objectName).Msg("error removing object")
		return fmt.Errorf("error removing %s: %w", objectName, err)
	}

	return nil
}

func blobPublicURL(cfg config.Blobs) string {
	if cfg.PublicURL != "" {
		return strings.TrimSuffix(cfg.PublicURL, "/")
	}

	scheme := "http://"
	if cfg.UseSSL {
		scheme = "https://"
	}
	return scheme + cfg.Endpoint
}
