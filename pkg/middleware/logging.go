package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/award-distance/pkg/logger"
	"github.com/gilby125/award-distance/pkg/metrics"
)

// RequestLogger creates a structured logging middleware for Gin
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     statusCode,
			"latency":    time.Since(start),
			"client_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		}
		if requestID := GetRequestID(c); requestID != "" {
			fields["request_id"] = requestID
		}
		if raw != "" {
			fields["query"] = raw
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		const logMsg = "HTTP Request"
		switch {
		case statusCode >= 500:
			logger.WithFields(fields).Error(nil, logMsg)
		case statusCode >= 400:
			logger.WithFields(fields).Warn(logMsg)
		default:
			logger.WithFields(fields).Info(logMsg)
		}
	}
}

// Metrics records request counts and latency by route template.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		collector.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// Recovery creates a recovery middleware with structured logging
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		fields := map[string]interface{}{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"client_ip": c.ClientIP(),
			"panic":     recovered,
		}
		if requestID := GetRequestID(c); requestID != "" {
			fields["request_id"] = requestID
		}

		logger.WithFields(fields).Error(nil, "Panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
