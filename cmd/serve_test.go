//go:build unit

package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"turnera/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func TestStartServerLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	cfg := config.NewTestConfig()
	cfg.Server.Port = "0"

	lc := fxtest.NewLifecycle(t)
	startServer(lc, engine, cfg, logger)
	lc.RequireStart()
	lc.RequireStop()

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		for _, field := range strings.Split(line, " ") {
			if msg, ok := strings.CutPrefix(field, "msg="); ok {
				messages = append(messages, msg)
			}
		}
	}
	assert.Equal(t, []string{"サーバーを起動します", "サーバーを停止します"}, messages)
}
