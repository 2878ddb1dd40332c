package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/pagination"
	"consulting-site-backend/internal/services"
)

type ApplicationsHandler struct {
	service   *services.ApplicationService
	revisions *Revisions
}

func NewApplicationsHandler(service *services.ApplicationService, revisions *Revisions) *ApplicationsHandler {
	return &ApplicationsHandler{service: service, revisions: revisions}
}

// Submit godoc
// @Summary     Submit a job application
// @Description Public application form endpoint. The CV part is mandatory; everything is validated before the file is stored.
// @Tags        applications
// @Accept      multipart/form-data
// @Produce     json
// @Param       name           formData string true  "Applicant name"
// @Param       email          formData string true  "Email address"
// @Param       phone          formData string false "Phone number"
// @Param       job_posting_id formData string false "Job posting the application targets"
// @Param       motivation     formData string true  "Motivation letter"
// @Param       cv             formData file   true  "CV (pdf/doc/docx, max 5MB)"
// @Success     201 {object} models.JobApplicationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /applications [post]
func (h *ApplicationsHandler) Submit(c *gin.Context) {
	var input models.JobApplicationInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	cv, err := readFormFile(c, "cv")
	if err != nil {
		respondError(c, err)
		return
	}

	application, err := h.service.Submit(&input, cv)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("job_applications")
	c.JSON(http.StatusCreated, application.ToResponse())
}

func (h *ApplicationsHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

// UpdateStatus godoc
// @Summary     Update application status
// @Tags        applications
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                         true "Application id"
// @Param       request body models.ApplicationStatusInput true "New status"
// @Success     200 {object} models.JobApplicationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/applications/{id}/status [patch]
func (h *ApplicationsHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid application id"})
		return
	}

	var input models.ApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	application, err := h.service.UpdateStatus(id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("job_applications")
	c.JSON(http.StatusOK, application.ToResponse())
}

func (h *ApplicationsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid application id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	h.revisions.Bump("job_applications")

	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *ApplicationsHandler) listResponse(pager *pagination.Pager[models.JobApplication]) models.ListResponse[models.JobApplicationResponse] {
	applications := pager.Rows()
	responses := make([]models.JobApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, applications[i].ToResponse())
	}
	return models.ListResponse[models.JobApplicationResponse]{
		Rows:       responses,
		Page:       pager.Page(),
		PageSize:   pager.PageSize(),
		TotalCount: pager.TotalCount(),
		TotalPages: pager.TotalPages(),
		Revision:   h.revisions.Get("job_applications"),
	}
}
