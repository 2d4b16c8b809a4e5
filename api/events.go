package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airportops/internal/repository"
)

// EventHandler exposes the append-only event log. Events are written by
// the generator and the booking flow, never through this API.
type EventHandler struct {
	repo repository.EventRepository
}

func NewEventHandler(repo repository.EventRepository) *EventHandler {
	return &EventHandler{repo: repo}
}

func (h *EventHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

func (h *EventHandler) list(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	if limit > 500 {
		limit = 500
	}
	events, err := h.repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
