package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"regexp"
	"time"

	"turnera/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
)

// Inbound IDs are echoed only when they look harmless in a log line.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestLogger assigns a request ID and logs one line per request once the
// handler chain is done. loc is the zone used for generated IDs.
func RequestLogger(logger *slog.Logger, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(requestID) {
			requestID = newRequestID(start.In(loc))
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		// Auth runs inside route groups, so identity is only known now.
		if userID, ok := GetUserID(c); ok {
			attrs = append(attrs, slog.String("user_id", userID.String()))
			if role, ok := GetUserRole(c); ok {
				attrs = append(attrs, slog.String("role", role.String()))
			}
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
			if reason := rejectionReason(c); reason != "" {
				attrs = append(attrs, slog.String("rejection", reason))
			}
		}

		logger.LogAttrs(c.Request.Context(), statusLevel(status), "request", attrs...)
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// newRequestID is a sortable timestamp plus 4 random bytes.
func newRequestID(now time.Time) string {
	var suffix [4]byte
	_, _ = rand.Read(suffix[:])
	return now.Format("20060102150405") + "-" + hex.EncodeToString(suffix[:])
}

// rejectionReason reads the admission rejection kind handlers put in the error detail.
func rejectionReason(c *gin.Context) string {
	for _, e := range c.Errors {
		resp, ok := e.Meta.(httperr.Response)
		if !ok {
			continue
		}
		if detail, ok := resp.Detail.(httperr.RejectionDetail); ok {
			return detail.Reason
		}
	}
	return ""
}
