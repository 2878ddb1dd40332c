package supabase

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"

	"consulting-site-backend/internal/models"
)

const uploadRetries = 3

type StorageClient struct {
	client  *storage.Client
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		baseURL: baseURL,
	}, nil
}

// Upload stores the payload under a fresh unique key in the given
// bucket. The original filename is kept in the key for diagnostics.
func (s *StorageClient) Upload(bucket string, file *models.FileUpload) (models.StoredObject, error) {
	key := fmt.Sprintf("%s/%s", uuid.New().String(), sanitizeFilename(file.Filename))

	contentType := file.ContentType
	upsert := false
	err := retryWithBackoff(func() error {
		_, err := s.client.UploadFile(bucket, key, bytes.NewReader(file.Data), storage.FileOptions{
			ContentType: &contentType,
			Upsert:      &upsert,
		})
		return err
	}, uploadRetries)
	if err != nil {
		return models.StoredObject{}, fmt.Errorf("failed to upload file: %w", err)
	}

	return models.StoredObject{
		Key: key,
		URL: s.PublicURL(bucket, key),
	}, nil
}

// Remove deletes the object named by key. A missing object is not an
// error; the delete already holds.
func (s *StorageClient) Remove(bucket, key string) error {
	_, err := s.client.RemoveFile(bucket, []string{key})
	if err != nil && isNotFound(err) {
		return nil
	}
	return err
}

func (s *StorageClient) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, bucket, key)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." {
		name = "file"
	}
	return name
}

func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "not_found")
}

func retryWithBackoff(fn func() error, attempts int) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(time.Duration(1<<i) * time.Second)
		}
	}
	return err
}
