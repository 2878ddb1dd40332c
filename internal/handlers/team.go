package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/pagination"
	"consulting-site-backend/internal/services"
)

type TeamHandler struct {
	service   *services.TeamService
	revisions *Revisions
}

func NewTeamHandler(service *services.TeamService, revisions *Revisions) *TeamHandler {
	return &TeamHandler{service: service, revisions: revisions}
}

// ListPublic godoc
// @Summary     List team members
// @Description Returns every team member in display order for the public team page.
// @Tags        team
// @Produce     json
// @Success     200 {object} map[string][]models.TeamMemberResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /team [get]
func (h *TeamHandler) ListPublic(c *gin.Context) {
	members, _, err := h.service.List(0, maxPageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.TeamMemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, members[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"team": responses})
}

// List godoc
// @Summary     List team members (admin)
// @Description Paginated admin view of team members.
// @Tags        team
// @Produce     json
// @Security    Bearer
// @Param       page      query int false "Zero-based page index"
// @Param       page_size query int false "Rows per page (max 100)"
// @Success     200 {object} models.ListResponse[models.TeamMemberResponse]
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/team [get]
func (h *TeamHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

// Create godoc
// @Summary     Create a team member
// @Tags        team
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       name  formData string true  "Full name"
// @Param       role  formData string true  "Role or title"
// @Param       image formData file   false "Portrait image (jpeg/png/webp, max 5MB)"
// @Success     201 {object} models.TeamMemberResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /admin/team [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var input models.TeamMemberInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	member, err := h.service.Create(&input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("team_members")
	c.JSON(http.StatusCreated, member.ToResponse())
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team member id"})
		return
	}

	var input models.TeamMemberInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	member, err := h.service.Update(id, &input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("team_members")
	c.JSON(http.StatusOK, member.ToResponse())
}

// Delete godoc
// @Summary     Delete a team member
// @Description Removes the member and its image, then responds with the rebalanced page so the admin view never lands on an empty or out-of-range page.
// @Tags        team
// @Produce     json
// @Security    Bearer
// @Param       id        path  string true  "Team member id"
// @Param       page      query int    false "Page the admin view is on"
// @Param       page_size query int    false "Rows per page"
// @Success     200 {object} models.ListResponse[models.TeamMemberResponse]
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/team/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team member id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	h.revisions.Bump("team_members")

	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *TeamHandler) listResponse(pager *pagination.Pager[models.TeamMember]) models.ListResponse[models.TeamMemberResponse] {
	members := pager.Rows()
	responses := make([]models.TeamMemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, members[i].ToResponse())
	}
	return models.ListResponse[models.TeamMemberResponse]{
		Rows:       responses,
		Page:       pager.Page(),
		PageSize:   pager.PageSize(),
		TotalCount: pager.TotalCount(),
		TotalPages: pager.TotalPages(),
		Revision:   h.revisions.Get("team_members"),
	}
}
