package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/service"
)

// MiscHandler covers the upload echo and the geocoding proxy
type MiscHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewMiscHandler creates a new misc handler
func NewMiscHandler(services *service.Services, log zerolog.Logger) *MiscHandler {
	return &MiscHandler{services: services, log: log}
}

// VerifyUpload acknowledges an image URL already hosted elsewhere.
// Images live on the external hosting service, the sheet only stores links.
func (h *MiscHandler) VerifyUpload(c *gin.Context) {
	var req models.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "URL de imagen requerida")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": req.ImageURL,
		"verified": true,
	})
}

// Geocode proxies an address search to the upstream geocoder
func (h *MiscHandler) Geocode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondValidation(c, `Query parameter "q" is required`)
		return
	}

	results, err := h.services.Geocode.Search(c.Request.Context(), query)
	if err != nil {
		if apperr.KindOf(err) == apperr.Upstream {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error en servicio de geocodificación"})
			return
		}
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
