package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/service"
)

// SheetHandler exposes the worksheet catalog to elevated users
type SheetHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSheetHandler creates a new sheet handler
func NewSheetHandler(services *service.Services, log zerolog.Logger) *SheetHandler {
	return &SheetHandler{services: services, log: log}
}

// ListSheets returns the worksheet names the caller may browse
func (h *SheetHandler) ListSheets(c *gin.Context) {
	identity := identityFrom(c)

	sheets, err := h.services.Sheets.List(c.Request.Context(), tokenFrom(c), identity)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sheets": sheets})
}

// SheetIDs returns the record IDs present in a single worksheet
func (h *SheetHandler) SheetIDs(c *gin.Context) {
	var req models.SheetIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Nombre de hoja requerido")
		return
	}

	identity := identityFrom(c)
	ids, err := h.services.Sheets.IDs(c.Request.Context(), tokenFrom(c), identity, req.SheetName)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sheetName": req.SheetName,
		"ids":       ids,
		"count":     len(ids),
	})
}
