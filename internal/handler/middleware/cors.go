package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"turnera/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AccessTokenHeader carries a re-issued access token after a role change.
const AccessTokenHeader = "X-Access-Token"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	exposed := slices.Clone(cfg.ExposeHeaders)
	for _, required := range []string{AccessTokenHeader, RequestIDHeader} {
		if !slices.ContainsFunc(exposed, func(h string) bool { return strings.EqualFold(h, required) }) {
			exposed = append(exposed, required)
		}
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"expose_headers", exposed)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
