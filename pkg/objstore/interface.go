package objstore

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/atelier-lab/atelier/pkg/config"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

var (
	// ErrNotConfigured is returned by every operation when no bucket is set.
	ErrNotConfigured = errors.New("object storage is not configured")

	// ErrObjectNotFound is returned when the key does not exist in the bucket.
	ErrObjectNotFound = errors.New("object not found")
)

type ObjectStoreInterface interface {
	// PutObject writes size bytes from body under key. Writing to an
	// existing key overwrites it.
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// GetObject returns the object stored under key, or ErrObjectNotFound.
	// The caller must close the body.
	GetObject(ctx context.Context, key string) (*Object, error)

	// StatObject returns metadata for the object stored under key, or
	// ErrObjectNotFound.
	StatObject(ctx context.Context, key string) (*ObjectInfo, error)

	// DeleteObject removes the object stored under key. Deleting a key
	// that does not exist is not an error.
	DeleteObject(ctx context.Context, key string) error

	// ListObjects returns metadata for every object whose key starts with
	// prefix.
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
	ETag        string
}

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// NewObjectStore returns the bucket client, or a disabled store when the
// configuration has no bucket. The disabled store fails every call with
// ErrNotConfigured so that handlers can answer 503 without special cases.
func NewObjectStore() ObjectStoreInterface {
	s3Config := config.GetConfig().S3
	if s3Config.Bucket == "" {
		logutils.Log.Warn("object storage not configured, asset operations unavailable")
		return &disabledStore{}
	}
	return NewS3Client()
}

type disabledStore struct{}

func (*disabledStore) PutObject(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	return ErrNotConfigured
}

func (*disabledStore) GetObject(_ context.Context, _ string) (*Object, error) {
	return nil, ErrNotConfigured
}

func (*disabledStore) StatObject(_ context.Context, _ string) (*ObjectInfo, error) {
	return nil, ErrNotConfigured
}

func (*disabledStore) DeleteObject(_ context.Context, _ string) error {
	return ErrNotConfigured
}

func (*disabledStore) ListObjects(_ context.Context, _ string) ([]ObjectInfo, error) {
	return nil, ErrNotConfigured
}
