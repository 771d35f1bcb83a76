package service

import (
	"context"
	"io"
)

type UploadResult struct {
	Path string
	URL  string
	Size int64
}

type FileUploadService interface {
	Upload(ctx context.Context, file io.Reader, contentType, objectPath string) (*UploadResult, error)
	Delete(ctx context.Context, objectPath string) error
	// DownloadURL resolves a storage path to a time-limited read URL.
	DownloadURL(ctx context.Context, objectPath string) (string, error)
	Close() error
}
