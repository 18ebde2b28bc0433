package httpserve

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jackfish212/dirserve/listing"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		logger.Error("httpserve: handler panicked",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
			"error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

// requestID keeps an incoming X-Request-ID or assigns a fresh one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("httpserve: request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration", time.Since(start),
			"request_id", c.GetString(requestIDKey))
	}
}

func commonHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		listing.SetCommonHeaders(c.Writer.Header())
		c.Next()
	}
}
