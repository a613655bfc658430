package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/auth"
	"github.com/pdv-survey-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, resolver auth.Resolver, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	dataHandler := NewDataHandler(services, log)
	rowHandler := NewRowHandler(services, log)
	sheetHandler := NewSheetHandler(services, log)
	permissionHandler := NewPermissionHandler(services, log)
	altaHandler := NewAltaHandler(services, log)
	gpsHandler := NewGPSHandler(services, log)
	statsHandler := NewStatsHandler(services, log)
	miscHandler := NewMiscHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// The geocode proxy carries no user data and is called before sign-in
	// completes on mobile, so it stays outside the auth gate.
	router.GET("/api/geocode", miscHandler.Geocode)

	// Everything else requires a bearer token.
	api := router.Group("/api")
	api.Use(authMiddleware(resolver, log))
	{
		api.GET("/data", dataHandler.GetData)
		api.POST("/update", rowHandler.UpdateRow)

		api.GET("/sheets", sheetHandler.ListSheets)
		api.POST("/sheets", sheetHandler.SheetIDs)

		api.GET("/permissions", permissionHandler.GetPermissions)
		api.POST("/permissions", permissionHandler.SavePermissions)

		api.GET("/alta-pdv", altaHandler.NextID)
		api.POST("/alta-pdv", altaHandler.CreatePDV)

		api.POST("/log-gps", gpsHandler.LogFix)
		api.GET("/gps-logs", gpsHandler.GetLogs)

		api.GET("/stats", statsHandler.GetStats)

		api.POST("/upload", miscHandler.VerifyUpload)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "pdv-survey-api",
	})
}

// requestIDMiddleware tags every request with an ID for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxRequestID, uuid.New().String())
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Error interno del servidor",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(ctxRequestID)).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
