package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/service"
)

// DataHandler serves the main survey dataset
type DataHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(services *service.Services, log zerolog.Logger) *DataHandler {
	return &DataHandler{services: services, log: log}
}

// GetData returns the rows the caller is allowed to see, honoring the
// optional ?sheet= selector for elevated users.
func (h *DataHandler) GetData(c *gin.Context) {
	identity := identityFrom(c)
	requested := c.Query("sheet")

	result, err := h.services.Data.Fetch(c.Request.Context(), tokenFrom(c), identity, requested)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
