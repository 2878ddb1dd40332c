package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/store"
)

type JobsHandler struct {
	store *store.Store
}

func NewJobsHandler(s *store.Store) *JobsHandler {
	return &JobsHandler{store: s}
}

// List godoc
// @Summary     List open job postings
// @Tags        jobs
// @Produce     json
// @Success     200 {object} map[string][]models.JobPostingResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /jobs [get]
func (h *JobsHandler) List(c *gin.Context) {
	postings, err := h.store.ListOpenJobPostings()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.JobPostingResponse, 0, len(postings))
	for i := range postings {
		responses = append(responses, postings[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"jobs": responses})
}
