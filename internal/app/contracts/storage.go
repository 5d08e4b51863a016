package contracts

import (
	"context"
	"io"
	"time"
)

type StorageObject struct {
	Name         string
	Size         int64
	ContentType  string
	LastModified time.Time
}

type Storage interface {
	UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	ListObjects(ctx context.Context, prefix string) ([]StorageObject, error)
	RemoveObject(ctx context.Context, objectName string) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
