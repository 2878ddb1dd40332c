package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports one or more fields that failed schema validation.
// No side effects have occurred when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// StorageWriteError means a file upload failed before any row mutation.
type StorageWriteError struct {
	Bucket string
	Err    error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write to bucket %q failed: %v", e.Bucket, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// StorageDeleteError means a file removal failed for a reason other than
// the object being absent. Callers treat it as non-fatal cleanup failure.
type StorageDeleteError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *StorageDeleteError) Error() string {
	return fmt.Sprintf("storage delete of %q in bucket %q failed: %v", e.Key, e.Bucket, e.Err)
}

func (e *StorageDeleteError) Unwrap() error { return e.Err }

// NotFoundError means the addressed row does not exist.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Collection, e.ID)
}

// StoreError is a generic record-store failure (connection loss,
// constraint violation). It aborts the operation it occurred in.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
