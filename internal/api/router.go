package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const callerContextKey = "caller"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, authenticator *auth.Authenticator, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(authMiddleware(authenticator))

	// Handlers
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	authHandler := NewAuthHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Account endpoints
	accounts := router.Group("/auth")
	{
		accounts.POST("/register", authHandler.Register)
		accounts.POST("/login", authHandler.Login)
	}

	// Post endpoints
	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.POST("", postHandler.Create)
		posts.GET("/:id", postHandler.Retrieve)
		posts.PUT("/:id", postHandler.Update)
		posts.PATCH("/:id", postHandler.Update)
		posts.DELETE("/:id", postHandler.Delete)
	}

	// Comment endpoints
	comments := router.Group("/comments")
	{
		comments.POST("", commentHandler.Create)
		comments.GET("/:id", commentHandler.Retrieve)
		comments.PUT("/:id", commentHandler.Update)
		comments.PATCH("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Delete)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blog-posts-api",
	})
}

// authMiddleware builds the per-request caller from the Authorization
// header. Requests without credentials proceed as anonymous; requests
// with bad credentials are rejected outright.
func authMiddleware(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(callerContextKey, auth.Anonymous())
			c.Next()
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			abortUnauthorized(c, "authorization header must use the Bearer scheme")
			return
		}

		caller, err := authenticator.Parse(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(callerContextKey, caller)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
		"kind":  "authentication_required",
	})
}

// callerFromContext returns the caller set by authMiddleware
func callerFromContext(c *gin.Context) auth.Caller {
	if v, ok := c.Get(callerContextKey); ok {
		if caller, ok := v.(auth.Caller); ok {
			return caller
		}
	}
	return auth.Anonymous()
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"kind":  "internal",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware tags each request with an id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
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
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
