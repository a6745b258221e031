package middleware

import (
	"time"

	"frontdesk/response"
	"frontdesk/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestId", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger(log *logger.LogrusLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.Logrus().WithFields(logrus.Fields{
			"status":    c.Writer.Status(),
			"method":    c.Request.Method,
			"path":      c.FullPath(),
			"latency":   time.Since(start).String(),
			"requestId": c.GetString("requestId"),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// Recovery turns a panic into the standard 500 envelope.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				response.ServerError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
