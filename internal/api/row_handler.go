package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/service"
)

// RowHandler updates existing survey rows
type RowHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewRowHandler creates a new row handler
func NewRowHandler(services *service.Services, log zerolog.Logger) *RowHandler {
	return &RowHandler{services: services, log: log}
}

// UpdateRow locates a row by its ID and rewrites it with the submitted values
func (h *RowHandler) UpdateRow(c *gin.Context) {
	var req models.UpdateRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "rowId y values son requeridos")
		return
	}

	rowID := req.RowIDString()
	if rowID == "" {
		respondValidation(c, "rowId y values son requeridos")
		return
	}

	identity := identityFrom(c)
	if err := h.services.Rows.Update(c.Request.Context(), tokenFrom(c), identity, &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Registro %s actualizado correctamente", rowID),
	})
}
