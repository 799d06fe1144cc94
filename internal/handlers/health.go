package handlers

import (
	"net/http"

	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewHealthHandler(trivia *services.TriviaService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{trivia: trivia, log: log}
}

// Health godoc
// @Summary      Liveness and database check
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.trivia.Ping(); err != nil {
		h.log.Error("database ping failed", zap.Error(err))
		abortWith(c, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
