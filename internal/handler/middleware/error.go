package middleware

import (
	"log/slog"
	"net/http"

	"turnera/internal/handler/httperr"
	"turnera/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var internalError = func() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}()

const stackLines = 12

// ErrorHandler renders the last public error when a handler aborted without
// writing. Causes of 5xx responses get their stack logged at debug level.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		resp, cause := lastPublicError(c)
		if cause != nil && resp.Status >= http.StatusInternalServerError {
			slog.Debug("internal error stack",
				"request_id", GetRequestID(c),
				"stack", errs.ExtractStackLines(cause, stackLines))
		}

		if c.Writer.Written() {
			return
		}
		if cause != nil {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError)
	}
}

// lastPublicError returns a nil cause when no handler aborted through httperr.
func lastPublicError(c *gin.Context) (httperr.Response, error) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, e.Err
		}
	}
	return httperr.Response{}, nil
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"error", rec,
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
			}
		}()
		c.Next()
	}
}
