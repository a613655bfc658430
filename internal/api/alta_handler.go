package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/service"
)

// AltaHandler registers new points of sale
type AltaHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAltaHandler creates a new alta handler
func NewAltaHandler(services *service.Services, log zerolog.Logger) *AltaHandler {
	return &AltaHandler{services: services, log: log}
}

// NextID previews the ID the next registration would receive
func (h *AltaHandler) NextID(c *gin.Context) {
	next, err := h.services.Alta.NextID(c.Request.Context(), tokenFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"nextId": next})
}

// CreatePDV appends a new point of sale and returns its allocated ID
func (h *AltaHandler) CreatePDV(c *gin.Context) {
	var req models.CreatePDVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Datos del PDV requeridos")
		return
	}

	identity := identityFrom(c)
	newID, err := h.services.Alta.Create(c.Request.Context(), tokenFrom(c), identity, req.PDVData)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"newId":   newID,
		"message": fmt.Sprintf("PDV #%d creado correctamente", newID),
	})
}
