package api

import (
	"net/http"
	"time"

	"github.com/emufront/gpucaps/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the engine with logging and panic recovery
func NewRouter(h *GPUHandler) *gin.Engine {
	engine := gin.New()
	engine.Use(LogHandler(), RecoveryHandler())
	h.Setup(engine.Group("/api"))
	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return engine
}

// LogHandler logs one entry per request
func LogHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Logger().WithFields(logrus.Fields{
			"event":       "http_request",
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"latency_ms":  time.Since(start).Milliseconds(),
		}).Debug()
	}
}

// RecoveryHandler turns handler panics into a 500 with an error body
func RecoveryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Logger().WithFields(logrus.Fields{
					"event":  "un_handled_error",
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
					"panic":  err,
				}).Error()
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "INTERNAL_ERROR"})
			}
		}()
		c.Next()
	}
}
