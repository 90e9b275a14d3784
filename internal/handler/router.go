package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bellebook/internal/handler/api"
	"bellebook/internal/handler/middleware"
	"bellebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, wizardHandler *api.WizardHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, wizardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, wizardHandler *api.WizardHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		booking := apiGroup.Group("/booking")
		booking.Use(authMiddleware.RequireAuth())
		{
			addRoutes(booking, []route{
				{Method: http.MethodPost, Path: "/sessions", Handler: wizardHandler.StartSession},
				{Method: http.MethodGet, Path: "/sessions/:id", Handler: wizardHandler.GetSession},
				{Method: http.MethodDelete, Path: "/sessions/:id", Handler: wizardHandler.CancelSession},
				{Method: http.MethodPut, Path: "/sessions/:id/prestation", Handler: wizardHandler.SelectPrestation},
				{Method: http.MethodGet, Path: "/sessions/:id/available-dates", Handler: wizardHandler.AvailableDates},
				{Method: http.MethodPut, Path: "/sessions/:id/date", Handler: wizardHandler.SelectDate},
				{Method: http.MethodPut, Path: "/sessions/:id/slot", Handler: wizardHandler.SelectSlot},
				{Method: http.MethodPut, Path: "/sessions/:id/payment-method", Handler: wizardHandler.SelectPaymentMethod},
				{Method: http.MethodPost, Path: "/sessions/:id/next", Handler: wizardHandler.Next},
				{Method: http.MethodPost, Path: "/sessions/:id/back", Handler: wizardHandler.Back},
				{Method: http.MethodPost, Path: "/sessions/:id/payment", Handler: wizardHandler.ConfirmPayment},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
