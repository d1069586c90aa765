package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/studyspot/dataport/internal/platform/envutil"
	"github.com/studyspot/dataport/internal/platform/logger"
)

type BucketService interface {
	EnsureBucket(ctx context.Context) error
	UploadFile(ctx context.Context, key string, file io.Reader) error
	PublicURL(key string) string
	Close() error
}

type bucketService struct {
	log           *logger.Logger
	storageClient *storage.Client
	bucketName    string
	projectID     string
}

func NewBucketService(ctx context.Context, log *logger.Logger) (BucketService, error) {
	serviceLog := log.With("service", "BucketService")

	bucketName, err := envutil.Require("PHOTO_GCS_BUCKET_NAME")
	if err != nil {
		return nil, err
	}
	projectID, err := envutil.Require("GOOGLE_CLOUD_PROJECT")
	if err != nil {
		return nil, err
	}

	opts, err := RequireClientOptionsFromEnv()
	if err != nil {
		return nil, err
	}
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	stClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	serviceLog.Info("Object storage initialized", "bucket", bucketName, "project", projectID)

	return &bucketService{
		log:           serviceLog,
		storageClient: stClient,
		bucketName:    bucketName,
		projectID:     projectID,
	}, nil
}

// EnsureBucket creates the photo bucket when it does not exist yet.
func (bs *bucketService) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	bucket := bs.storageClient.Bucket(bs.bucketName)
	_, err := bucket.Attrs(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("failed to check bucket %q: %w", bs.bucketName, err)
	}

	bs.log.Info("Creating bucket", "bucket", bs.bucketName)
	if err := bucket.Create(ctx, bs.projectID, nil); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", bs.bucketName, err)
	}
	return nil
}

func (bs *bucketService) UploadFile(ctx context.Context, key string, file io.Reader) error {
	w := bs.storageClient.Bucket(bs.bucketName).Object(key).NewWriter(ctx)
	if ct := contentTypeForKey(key); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (bs *bucketService) PublicURL(key string) string {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bs.bucketName, key)
}

func (bs *bucketService) Close() error {
	return bs.storageClient.Close()
}

func contentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	switch {
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	default:
		return ""
	}
}
