package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/pagination"
	"consulting-site-backend/internal/services"
)

type MessagesHandler struct {
	service   *services.MessageService
	revisions *Revisions
}

func NewMessagesHandler(service *services.MessageService, revisions *Revisions) *MessagesHandler {
	return &MessagesHandler{service: service, revisions: revisions}
}

// Submit godoc
// @Summary     Submit a contact message
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       request body models.ContactMessageInput true "Contact message"
// @Success     201 {object} models.ContactMessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /contact [post]
func (h *MessagesHandler) Submit(c *gin.Context) {
	var input models.ContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	message, err := h.service.Submit(&input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.revisions.Bump("contact_messages")
	c.JSON(http.StatusCreated, message.ToResponse())
}

func (h *MessagesHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *MessagesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid message id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	h.revisions.Bump("contact_messages")

	page, pageSize := parsePage(c)
	pager := pagination.New(h.service.List, pageSize)
	if err := pager.FetchBalanced(page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.listResponse(pager))
}

func (h *MessagesHandler) listResponse(pager *pagination.Pager[models.ContactMessage]) models.ListResponse[models.ContactMessageResponse] {
	messages := pager.Rows()
	responses := make([]models.ContactMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messages[i].ToResponse())
	}
	return models.ListResponse[models.ContactMessageResponse]{
		Rows:       responses,
		Page:       pager.Page(),
		PageSize:   pager.PageSize(),
		TotalCount: pager.TotalCount(),
		TotalPages: pager.TotalPages(),
		Revision:   h.revisions.Get("contact_messages"),
	}
}
