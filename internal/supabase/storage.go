package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"designfoli-web/internal/models"
	"designfoli-web/internal/staging"
	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// StorageClient stages wizard uploads in a Supabase storage bucket.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

var _ staging.Store = (*StorageClient)(nil)

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" || serviceKey == "" {
		return nil, fmt.Errorf("supabase url and key are required")
	}
	// Ensure URL doesn't have trailing slash
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *StorageClient) Put(ctx context.Context, userID string, draftID uuid.UUID, filename, contentType string, data []byte) (models.FileRef, error) {
	if err := ctx.Err(); err != nil {
		return models.FileRef{}, err
	}
	storagePath := staging.ObjectPath(userID, draftID, filename)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return models.FileRef{}, fmt.Errorf("failed to upload file: %w", err)
	}

	return models.FileRef{
		Path:        storagePath,
		Filename:    staging.CleanName(filename),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (s *StorageClient) Open(ctx context.Context, ref models.FileRef) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.client.DownloadFile(s.bucket, ref.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *StorageClient) Delete(ctx context.Context, refs ...models.FileRef) error {
	if len(refs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.Path
	}
	if _, err := s.client.RemoveFile(s.bucket, paths); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}

// DeleteDraft removes everything staged under one draft's folder.
func (s *StorageClient) DeleteDraft(ctx context.Context, userID string, draftID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := staging.DraftPrefix(userID, draftID)

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if len(files) == 0 {
		return nil
	}
	filePaths := make([]string, len(files))
	for i, file := range files {
		filePaths[i] = prefix + file.Name
	}
	if _, err := s.client.RemoveFile(s.bucket, filePaths); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}
