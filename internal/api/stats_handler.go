package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/service"
)

// StatsHandler serves survey progress counters
type StatsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(services *service.Services, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{services: services, log: log}
}

// GetStats returns per-sheet and overall surveyed/pending counts
func (h *StatsHandler) GetStats(c *gin.Context) {
	identity := identityFrom(c)

	result, err := h.services.Stats.Overview(c.Request.Context(), tokenFrom(c), identity)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
