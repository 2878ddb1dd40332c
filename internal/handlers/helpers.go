package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"consulting-site-backend/internal/apperrors"
	"consulting-site-backend/internal/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// parsePage reads ?page= and ?page_size= with sane bounds.
func parsePage(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// readFormFile pulls one optional multipart file part into memory.
// A missing part returns nil; size and type constraints are enforced
// by the persistence services.
func readFormFile(c *gin.Context, field string) (*models.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &models.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}

// respondError maps the persistence error taxonomy onto HTTP. Nothing
// else escapes the service boundary, so this is the whole mapping.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:  "validation failed",
			Fields: validationErr.Fields,
		})
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not found",
			Message: notFoundErr.Error(),
		})
		return
	}

	var writeErr *apperrors.StorageWriteError
	if errors.As(err, &writeErr) {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "file upload failed",
			Message: writeErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal error",
		Message: err.Error(),
	})
}

// Revisions tracks a monotonically increasing counter per collection.
// The realtime change feed bumps it; paginated list responses carry it
// so open admin sessions can tell their page is stale and re-fetch.
type Revisions struct {
	mu       sync.Mutex
	counters map[string]uint64
}

func NewRevisions() *Revisions {
	return &Revisions{counters: make(map[string]uint64)}
}

func (r *Revisions) Bump(collection string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[collection]++
}

func (r *Revisions) Get(collection string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[collection]
}
