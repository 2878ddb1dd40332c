package services

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/logger"
	"consulting-site-backend/internal/models"
)

// FileStore is the object-storage capability the persistence services
// depend on. The Supabase storage client satisfies it in production;
// tests swap in an in-memory fake.
type FileStore interface {
	Upload(bucket string, file *models.FileUpload) (models.StoredObject, error)
	Remove(bucket, key string) error
	PublicURL(bucket, key string) string
}

const megabyte = 1 << 20

// fileRule is the per-field constraint on an uploaded file.
type fileRule struct {
	label        string
	maxSize      int64
	contentTypes map[string]bool
}

var (
	imageRule = fileRule{
		label:   "image",
		maxSize: 5 * megabyte,
		contentTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
		},
	}

	reportRule = fileRule{
		label:   "report",
		maxSize: 10 * megabyte,
		contentTypes: map[string]bool{
			"application/pdf": true,
		},
	}

	cvRule = fileRule{
		label:   "cv",
		maxSize: 5 * megabyte,
		contentTypes: map[string]bool{
			"application/pdf":    true,
			"application/msword": true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		},
	}
)

// check returns field-level problems with the upload, or nil.
func (r fileRule) check(file *models.FileUpload) map[string]string {
	if file == nil {
		return nil
	}
	if file.Size > r.maxSize {
		return map[string]string{
			r.label: fmt.Sprintf("file exceeds the %dMB limit", r.maxSize/megabyte),
		}
	}
	if !r.contentTypes[file.ContentType] {
		return map[string]string{
			r.label: fmt.Sprintf("unsupported file type %q", file.ContentType),
		}
	}
	return nil
}

func mergeProblems(a, b map[string]string) map[string]string {
	if len(b) == 0 {
		return a
	}
	if a == nil {
		a = map[string]string{}
	}
	for field, msg := range b {
		a[field] = msg
	}
	return a
}

// uploadFile wraps a store upload into the StorageWriteError taxonomy.
// Callers invoke it before any row mutation so a failure leaves the
// record store untouched.
func uploadFile(fs FileStore, bucket string, file *models.FileUpload) (models.StoredObject, error) {
	obj, err := fs.Upload(bucket, file)
	if err != nil {
		return models.StoredObject{}, &apperrors.StorageWriteError{Bucket: bucket, Err: err}
	}
	return obj, nil
}

// removeBestEffort deletes a stored object and only logs on failure.
// Row deletions and file replacements must not be blocked by storage
// flakiness on the outgoing object.
func removeBestEffort(fs FileStore, bucket, key string) {
	if key == "" {
		return
	}
	if err := fs.Remove(bucket, key); err != nil {
		delErr := &apperrors.StorageDeleteError{Bucket: bucket, Key: key, Err: err}
		logger.Warn("file cleanup failed", zap.Error(delErr))
	}
}

// replaceFile uploads the incoming file and then best-effort removes
// the object it replaces. The new reference is established before the
// old object goes away.
func replaceFile(fs FileStore, bucket string, oldKey sql.NullString, file *models.FileUpload) (models.StoredObject, error) {
	obj, err := uploadFile(fs, bucket, file)
	if err != nil {
		return models.StoredObject{}, err
	}
	if oldKey.Valid {
		removeBestEffort(fs, bucket, oldKey.String)
	}
	return obj, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
