package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"turnera/cmd/bootstrap"
	"turnera/internal/pkg/config"
	"turnera/internal/pkg/errs"
	"turnera/migrations"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// @title           turnera
// @version         1.0
// @description     Slot booking API.

// @BasePath  /
// @schemes http https
// @in header
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return errs.Wrapf(err, "listen on %s", srv.Addr)
			}
			logger.Info("サーバーを起動します", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("サーバーが異常終了しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("サーバーを停止します")
			return srv.Shutdown(ctx)
		},
	})
}

// migrateOnStart hooks before startServer so the schema is current before traffic arrives.
func migrateOnStart(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("マイグレーションを適用します")
			return migrations.Up(ctx, pool)
		},
	})
}

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []fx.Option{
				bootstrap.Module,
				fx.Provide(func() *gin.Engine { return gin.New() }),
			}
			if migrateUp {
				opts = append(opts, fx.Invoke(migrateOnStart))
			}
			opts = append(opts, fx.Invoke(startServer))

			app := fx.New(opts...)

			if err := app.Start(cmd.Context()); err != nil {
				slog.Error("アプリケーションの起動に失敗しました", "error", err)
				return err
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				// 停止失敗はログのみ
				slog.Error("アプリケーションの停止に失敗しました", "error", err)
			}

			slog.Info("アプリケーションが正常に停止しました")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations before serving")
	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}
