package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"aqarverse/internal/domain/service"
	"aqarverse/pkg/errors"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (c *CloudStorageClient) Upload(ctx context.Context, file io.Reader, contentType, objectPath string) (*service.UploadResult, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectPath)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	written, err := io.Copy(wc, file)
	if err != nil {
		wc.Close()
		return nil, errors.Internal("Failed to upload file", err)
	}
	if err := wc.Close(); err != nil {
		return nil, errors.Internal("Failed to finalize upload", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, errors.Internal("Failed to set file ACL", err)
	}

	return &service.UploadResult{
		Path: objectPath,
		URL:  fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectPath),
		Size: written,
	}, nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, objectPath string) error {
	obj := c.client.Bucket(c.bucketName).Object(objectPath)
	if err := obj.Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return nil
		}
		return errors.Internal("Failed to delete file", err)
	}
	return nil
}

func (c *CloudStorageClient) DownloadURL(ctx context.Context, objectPath string) (string, error) {
	url, err := c.client.Bucket(c.bucketName).SignedURL(objectPath, &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(1 * time.Hour),
	})
	if err != nil {
		return "", errors.Internal("Failed to sign download URL", err)
	}
	return url, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
