package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/pagination"
	"consulting-site-backend/internal/services"
)

type CatalogHandler struct {
	service   *services.CatalogService
	revisions *Revisions
}

func NewCatalogHandler(service *services.CatalogService, revisions *Revisions) *CatalogHandler {
	return &CatalogHandler{service: service, revisions: revisions}
}

// ListPublic godoc
// @Summary     List service offerings
// @Description Returns every service offering in display order for the public site.
// @Tags        services
// @Produce     json
// @Success     200 {object} map[string][]models.ServiceResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services [get]
func (h *CatalogHandler) ListPublic(c *gin.Context) {
	offerings, _, err := h.service.List(0, maxPageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ServiceResponse, 0, len(offerings))
	for i := range offerings {
		responses = append(responses, offerings[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"services": responses})
}

func (h *CatalogHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

// Create godoc
// @Summary     Create a service offering
// @Description The service id is a slug derived from the title; colliding slugs get a numeric suffix.
// @Tags        services
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       title       formData string true  "Service title"
// @Param       description formData string true  "Description"
// @Param       icon        formData string false "Icon name (unknown values fall back to the default)"
// @Param       image       formData file   false "Illustration (jpeg/png/webp, max 5MB)"
// @Success     201 {object} models.ServiceResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /admin/services [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	svc, err := h.service.Create(&input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("services")
	c.JSON(http.StatusCreated, svc.ToResponse())
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	svc, err := h.service.Update(c.Param("id"), &input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("services")
	c.JSON(http.StatusOK, svc.ToResponse())
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	h.revisions.Bump("services")

	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *CatalogHandler) listResponse(pager *pagination.Pager[models.Service]) models.ListResponse[models.ServiceResponse] {
	offerings := pager.Rows()
	responses := make([]models.ServiceResponse, 0, len(offerings))
	for i := range offerings {
		responses = append(responses, offerings[i].ToResponse())
	}
	return models.ListResponse[models.ServiceResponse]{
		Rows:       responses,
		Page:       pager.Page(),
		PageSize:   pager.PageSize(),
		TotalCount: pager.TotalCount(),
		TotalPages: pager.TotalPages(),
		Revision:   h.revisions.Get("services"),
	}
}
