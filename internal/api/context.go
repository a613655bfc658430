package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/auth"
	"github.com/pdv-survey-api/internal/models"
)

const (
	ctxRequestID = "request_id"
	ctxIdentity  = "identity"
	ctxToken     = "access_token"
)

// authMiddleware resolves the bearer token into an Identity and stores
// both on the request context. Requests without a usable token never
// reach a handler.
func authMiddleware(resolver auth.Resolver, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.TokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": auth.MsgTokenRequired,
			})
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", c.GetString(ctxRequestID)).
				Msg("Token resolution failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": auth.MsgTokenInvalid,
			})
			return
		}

		c.Set(ctxToken, token)
		c.Set(ctxIdentity, identity)
		c.Next()
	}
}

func identityFrom(c *gin.Context) *models.Identity {
	id, _ := c.MustGet(ctxIdentity).(*models.Identity)
	return id
}

func tokenFrom(c *gin.Context) string {
	return c.GetString(ctxToken)
}
