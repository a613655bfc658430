package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/service"
)

// PermissionHandler manages the access table
type PermissionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(services *service.Services, log zerolog.Logger) *PermissionHandler {
	return &PermissionHandler{services: services, log: log}
}

// GetPermissions returns the whole access table for elevated users and the
// caller's own grant for everyone else. The non-admin shape nests the grant
// under "allowedIds", which is what the dashboard reads.
func (h *PermissionHandler) GetPermissions(c *gin.Context) {
	identity := identityFrom(c)

	if identity.Elevated() {
		records, err := h.services.Permissions.All(c.Request.Context(), tokenFrom(c), identity)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"isAdmin":     true,
			"permissions": records,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAdmin": false,
		"email":   identity.Email,
		"allowedIds": gin.H{
			"allowedIds":    identity.AllowedIDs,
			"assignedSheet": identity.AssignedSheet,
			"level":         identity.Level,
		},
	})
}

// SavePermissions creates or updates a single user's grant
func (h *PermissionHandler) SavePermissions(c *gin.Context) {
	var req models.SavePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Email requerido")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		respondValidation(c, "Email requerido")
		return
	}
	if req.AllowedIDs == nil {
		respondValidation(c, "allowedIds debe ser un array")
		return
	}

	identity := identityFrom(c)
	ids := req.IDStrings()
	if err := h.services.Permissions.Save(c.Request.Context(), tokenFrom(c), identity, email, ids, req.AssignedSheet); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Permisos actualizados para %s", email),
		"permissions": gin.H{
			"email":         email,
			"allowedIds":    ids,
			"assignedSheet": req.AssignedSheet,
		},
	})
}
