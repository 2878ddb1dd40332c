package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/store"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// Get godoc
// @Summary     Admin dashboard counts
// @Description Returns aggregate row counts per collection. The counts have no ordering dependency on each other, so they are fetched concurrently.
// @Tags        dashboard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.DashboardResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	tables := []string{"team_members", "services", "projects", "job_applications", "contact_messages"}
	counts := make(map[string]int, len(tables))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, table := range tables {
		wg.Add(1)
		go func(table string) {
			defer wg.Done()
			count, err := h.store.Count(table)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			counts[table] = count
		}(table)
	}
	wg.Wait()

	if firstErr != nil {
		respondError(c, firstErr)
		return
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		TeamMembers:     counts["team_members"],
		Services:        counts["services"],
		Projects:        counts["projects"],
		JobApplications: counts["job_applications"],
		ContactMessages: counts["contact_messages"],
	})
}
