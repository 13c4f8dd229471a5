package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guillotegh/sistema-reservas/internal/handler/api"
	"github.com/guillotegh/sistema-reservas/internal/handler/middleware"
	"github.com/guillotegh/sistema-reservas/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, reservaHandler *api.ReservaHandler, exportHandler *api.ExportHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservaHandler, exportHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservaHandler *api.ReservaHandler, exportHandler *api.ExportHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sugerencias", Handler: reservaHandler.ObtenerSugerencias},
		})

		reservas := apiGroup.Group("/reservas")
		{
			addRoutes(reservas, []route{
				{Method: http.MethodGet, Path: "", Handler: reservaHandler.ListarReservas},
				{Method: http.MethodPost, Path: "", Handler: reservaHandler.CrearReserva},
				{Method: http.MethodGet, Path: "/export", Handler: exportHandler.ExportarReservas},
				{Method: http.MethodGet, Path: "/:id", Handler: reservaHandler.ObtenerReserva},
				{Method: http.MethodPut, Path: "/:id", Handler: reservaHandler.ActualizarReserva},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservaHandler.EliminarReserva},
				{Method: http.MethodPatch, Path: "/:id/liquidacion", Handler: reservaHandler.ToggleLiquidacion},
				{Method: http.MethodPatch, Path: "/:id/voucher", Handler: reservaHandler.ToggleVoucher},
				{Method: http.MethodPost, Path: "/:id/pagos/:lado", Handler: reservaHandler.AgregarPago},
				{Method: http.MethodPatch, Path: "/:id/pagos/:lado/:pagoId", Handler: reservaHandler.EditarMontoPago},
				{Method: http.MethodDelete, Path: "/:id/pagos/:lado/:pagoId", Handler: reservaHandler.EliminarPago},
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
