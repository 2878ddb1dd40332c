package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consulting-site-backend/internal/logger"
	"consulting-site-backend/internal/models"
	"consulting-site-backend/internal/supabase"
)

// ChangeFeedHandler receives Supabase database webhook events and
// turns them into collection change notifications. No diff payload is
// trusted; listeners just re-fetch.
type ChangeFeedHandler struct {
	realtime *supabase.RealtimeClient
}

func NewChangeFeedHandler(realtime *supabase.RealtimeClient) *ChangeFeedHandler {
	return &ChangeFeedHandler{realtime: realtime}
}

type changeEvent struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}

func (h *ChangeFeedHandler) Handle(c *gin.Context) {
	var event changeEvent
	if err := c.ShouldBindJSON(&event); err != nil || event.Table == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid change event"})
		return
	}

	logger.Debug("change event",
		zap.String("table", event.Table),
		zap.String("type", event.Type),
	)
	h.realtime.Dispatch(event.Table)

	c.JSON(http.StatusOK, models.MessageResponse{Message: "ok"})
}
