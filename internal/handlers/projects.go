package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/pagination"
	"consulting-site-backend/internal/services"
)

type ProjectsHandler struct {
	service   *services.ProjectService
	revisions *Revisions
}

func NewProjectsHandler(service *services.ProjectService, revisions *Revisions) *ProjectsHandler {
	return &ProjectsHandler{service: service, revisions: revisions}
}

// ListPublic is the public project showcase: paginated, most recent
// first, with optional substring search over title, category and
// description.
func (h *ProjectsHandler) ListPublic(c *gin.Context) {
	search := c.Query("search")
	page, pageSize := parsePage(c)

	pager := pagination.New(func(offset, limit int) ([]models.Project, int, error) {
		return h.service.List(search, offset, limit)
	}, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *ProjectsHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	pager := pagination.New(func(offset, limit int) ([]models.Project, int, error) {
		return h.service.List("", offset, limit)
	}, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *ProjectsHandler) Create(c *gin.Context) {
	var input models.ProjectInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := readFormFile(c, "report")
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := h.service.Create(&input, image, report)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("projects")
	c.JSON(http.StatusCreated, project.ToResponse())
}

func (h *ProjectsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input models.ProjectInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := readFormFile(c, "report")
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := h.service.Update(id, &input, image, report)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("projects")
	c.JSON(http.StatusOK, project.ToResponse())
}

func (h *ProjectsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	h.revisions.Bump("projects")

	page, pageSize := parsePage(c)
	pager := pagination.New(func(offset, limit int) ([]models.Project, int, error) {
		return h.service.List("", offset, limit)
	}, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *ProjectsHandler) listResponse(pager *pagination.Pager[models.Project]) models.ListResponse[models.ProjectResponse] {
	projects := pager.Rows()
	responses := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, projects[i].ToResponse())
	}
	return models.ListResponse[models.ProjectResponse]{
		Rows:       responses,
		Page:       pager.Page(),
		PageSize:   pager.PageSize(),
		TotalCount: pager.TotalCount(),
		TotalPages: pager.TotalPages(),
		Revision:   h.revisions.Get("projects"),
	}
}
