package symbols

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"oppettider-backend/internal/config"
	"oppettider-backend/internal/storage"
)

const urlTTL = 24 * time.Hour

// Service stores the board's display symbols (open/closed/away) as PNG
// objects in a MinIO bucket, one object per kind, replaced on upload.
type Service struct {
	client *minio.Client
	bucket string
}

func New(cfg *config.Config) (*Service, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Service{client: client, bucket: cfg.MinIOBucket}, nil
}

func objectName(kind string) string {
	return kind + ".png"
}

// Upload replaces the symbol image for the given kind.
func (s *Service) Upload(ctx context.Context, kind string, image io.Reader, size int64) error {
	if !storage.ValidSymbolKind(kind) {
		return fmt.Errorf("unknown symbol kind %q", kind)
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName(kind), image, size, minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return fmt.Errorf("failed to upload symbol %q: %w", kind, err)
	}

	return nil
}

// ViewURL returns a presigned GET URL for the symbol image, or ErrNotFound
// when no image was ever uploaded for the kind.
func (s *Service) ViewURL(ctx context.Context, kind string) (string, error) {
	if !storage.ValidSymbolKind(kind) {
		return "", fmt.Errorf("unknown symbol kind %q", kind)
	}

	_, err := s.client.StatObject(ctx, s.bucket, objectName(kind), minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return "", fmt.Errorf("symbol %q: %w", kind, storage.ErrNotFound)
		}
		return "", fmt.Errorf("failed to stat symbol %q: %w", kind, err)
	}

	reqParams := make(url.Values)
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, objectName(kind), urlTTL, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign symbol %q: %w", kind, err)
	}

	return presigned.String(), nil
}
