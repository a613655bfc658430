package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/service"
)

// GPSHandler records and serves location fixes
type GPSHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewGPSHandler creates a new GPS handler
func NewGPSHandler(services *service.Services, log zerolog.Logger) *GPSHandler {
	return &GPSHandler{services: services, log: log}
}

// LogFix appends a single location fix for the caller
func (h *GPSHandler) LogFix(c *gin.Context) {
	var req models.GPSFixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Coordenadas requeridas")
		return
	}

	identity := identityFrom(c)
	if err := h.services.GPS.Log(c.Request.Context(), tokenFrom(c), identity, &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Log GPS guardado",
	})
}

// GetLogs returns the fix history, newest first, admin only.
// ?email= narrows the result to one user.
func (h *GPSHandler) GetLogs(c *gin.Context) {
	identity := identityFrom(c)
	filterEmail := c.Query("email")

	result, err := h.services.GPS.Logs(c.Request.Context(), tokenFrom(c), identity, filterEmail)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
