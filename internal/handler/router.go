package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"turnera/internal/domain/user"
	"turnera/internal/handler/api"
	"turnera/internal/handler/middleware"
	"turnera/internal/pkg/config"
	"turnera/internal/pkg/logger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	auth        *api.AuthHandler
	provider    *api.ProviderHandler
	catalog     *api.CatalogHandler
	reservation *api.ReservationHandler
	schedule    *api.ScheduleHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	log *slog.Logger,
	authHandler *api.AuthHandler,
	providerHandler *api.ProviderHandler,
	catalogHandler *api.CatalogHandler,
	reservationHandler *api.ReservationHandler,
	scheduleHandler *api.ScheduleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, log)
	setupRoutes(engine, handlers{
		auth:        authHandler,
		provider:    providerHandler,
		catalog:     catalogHandler,
		reservation: reservationHandler,
		schedule:    scheduleHandler,
	}, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, log *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(log, logger.Location(cfg.Log)))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	entrepreneur := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleEntrepreneur)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: h.auth.UpdateMe},
			})
		}

		providers := apiGroup.Group("/providers")
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "/by-code/:code", Handler: h.provider.GetByCode},
				{Method: http.MethodGet, Path: "/by-code/:code/services", Handler: h.provider.ListServicesByCode},
				{Method: http.MethodGet, Path: "/:id/services", Handler: h.provider.ListServices},
				{Method: http.MethodGet, Path: "/:id/working-hours", Handler: h.schedule.List},
			})

			authRequired := providers.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/me", Handler: h.provider.Activate},
				{Method: http.MethodGet, Path: "/me", Handler: h.provider.GetMine, Mw: entrepreneur},
				{Method: http.MethodPatch, Path: "/me", Handler: h.provider.UpdateMine, Mw: entrepreneur},
				{Method: http.MethodDelete, Path: "/me", Handler: h.provider.DeleteMine, Mw: entrepreneur},
				{Method: http.MethodPost, Path: "/me/code", Handler: h.provider.RegenerateCode, Mw: entrepreneur},
				{Method: http.MethodPut, Path: "/:id/working-hours", Handler: h.schedule.Replace, Mw: entrepreneur},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.catalog.GetService},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.catalog.ListSlots},
				{Method: http.MethodGet, Path: "/:id/slots/available", Handler: h.catalog.ListAvailableSlots},
			})

			authRequired := services.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.catalog.CreateService, Mw: entrepreneur},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.catalog.DeleteService, Mw: entrepreneur},
			})
		}

		slots := apiGroup.Group("/slots")
		slots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(slots, []route{
				{Method: http.MethodPost, Path: "", Handler: h.catalog.CreateSlot, Mw: entrepreneur},
				{Method: http.MethodGet, Path: "/mine", Handler: h.catalog.ListMySlots, Mw: entrepreneur},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.catalog.UpdateSlot, Mw: entrepreneur},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.catalog.DeleteSlot, Mw: entrepreneur},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.reservation.Create},
				{Method: http.MethodPost, Path: "/adhoc", Handler: h.reservation.CreateAdHoc},
				{Method: http.MethodGet, Path: "", Handler: h.reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.reservation.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.reservation.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
