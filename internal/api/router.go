package api

import (
	"net/http"
	"time"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// adminFlagKey marks requests authenticated with the admin token. Admin
// requests see unpublished content and their comments skip moderation.
const adminFlagKey = "is_admin"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(adminDetectMiddleware(cfg.Admin.Token))

	// Handlers
	blogHandler := NewBlogHandler(services, log)
	adminHandler := NewAdminHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public blog surface
		v1.GET("/posts", blogHandler.ListPosts)
		v1.GET("/posts/:id/comments", blogHandler.ListComments)
		v1.GET("/posts/:id/comments/count", blogHandler.CountComments)
		v1.GET("/archive/:year", blogHandler.ListByDate)
		v1.GET("/archive/:year/:month", blogHandler.ListByDate)
		v1.GET("/archive/:year/:month/:day", blogHandler.ListByDate)
		v1.GET("/archive/:year/:month/:day/:slug", blogHandler.GetByPermalink)
		v1.GET("/pages/:slug", blogHandler.GetContentPage)
		v1.POST("/comments", blogHandler.AddComment)
		v1.GET("/settings", blogHandler.GetSettings)

		// Administration
		admin := v1.Group("/admin")
		admin.Use(requireAdminMiddleware())
		{
			admin.GET("/posts", adminHandler.ListPosts)
			admin.POST("/posts", adminHandler.CreatePost)
			admin.GET("/posts/:id", adminHandler.GetPost)
			admin.PUT("/posts/:id", adminHandler.UpdatePost)
			admin.DELETE("/posts/:id", adminHandler.DeletePost)

			admin.GET("/posts/:id/versions", adminHandler.ListVersions)
			admin.POST("/posts/:id/versions", adminHandler.SnapshotPost)
			admin.GET("/versions/:id", adminHandler.GetVersion)
			admin.PUT("/versions/:id", adminHandler.UpdateVersion)
			admin.DELETE("/versions/:id", adminHandler.DeleteVersion)
			admin.POST("/versions/:id/publish", adminHandler.PublishVersion)

			admin.GET("/comments/unapproved", adminHandler.ListUnapproved)
			admin.GET("/comments/unapproved/count", adminHandler.CountUnapproved)
			admin.PUT("/comments/:id/approval", adminHandler.SetApproval)
			admin.DELETE("/comments/:id", adminHandler.DeleteComment)

			admin.PUT("/settings", adminHandler.UpdateSettings)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blog-platform-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
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
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Token")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// adminDetectMiddleware flags requests carrying the configured admin token.
// An empty configured token disables admin access entirely.
func adminDetectMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin := token != "" && c.GetHeader("X-Admin-Token") == token
		c.Set(adminFlagKey, isAdmin)
		c.Next()
	}
}

// requireAdminMiddleware rejects non-admin requests
func requireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(adminFlagKey) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin token required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
