package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airportops/internal/service/recommendations"
)

type RecommendationHandler struct {
	service recommendations.RecommendationUseCase
}

func NewRecommendationHandler(service recommendations.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

func (h *RecommendationHandler) Register(router *gin.RouterGroup) {
	router.GET("/passenger/:id", h.listForPassenger)
	router.POST("/generate/:id", h.generate)
}

func (h *RecommendationHandler) listForPassenger(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recs, err := h.service.ListForPassenger(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *RecommendationHandler) generate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recs, err := h.service.GenerateForPassenger(c.Request.Context(), id, queryInt(c, "limit", 5))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, recs)
}
