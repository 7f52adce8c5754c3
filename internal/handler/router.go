package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"canteen-core/internal/domain/user"
	"canteen-core/internal/handler/api"
	"canteen-core/internal/handler/middleware"
	"canteen-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	orderHandler *api.OrderHandler,
	streamHandler *api.StreamHandler,
	reportHandler *api.ReportHandler,
	activityHandler *api.ActivityHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, orderHandler, streamHandler, reportHandler, activityHandler, notificationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderHandler *api.OrderHandler,
	streamHandler *api.StreamHandler,
	reportHandler *api.ReportHandler,
	activityHandler *api.ActivityHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		orders := apiGroup.Group("/orders")
		{
			staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.CreateOrder},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders},
				{Method: http.MethodGet, Path: "/stream", Handler: streamHandler.StreamOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodGet, Path: "/:id/token", Handler: orderHandler.GetTokenCard},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.CancelOrder},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: orderHandler.UpdateOrderStatus, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/daily", Handler: reportHandler.GetDailyReport},
			})
		}

		activity := apiGroup.Group("/activity")
		activity.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(activity, []route{
				{Method: http.MethodGet, Path: "", Handler: activityHandler.ListActivity},
			})
		}

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.ListNotifications},
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
