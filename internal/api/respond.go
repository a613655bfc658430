package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/apperr"
)

// respondError translates a service error into the JSON error shape the
// dashboard expects: {"error": message} plus optional "details".
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	if appErr, ok := apperr.As(err); ok {
		body := gin.H{"error": appErr.Message}
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}

		status := appErr.Kind.HTTPStatus()
		if status >= 500 {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(ctxRequestID)).
				Msg("Request failed")
			if appErr.Details == nil {
				body["details"] = appErr.Error()
			}
		}
		c.JSON(status, body)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(ctxRequestID)).
		Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Error interno del servidor",
		"details": err.Error(),
	})
}

func respondValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
