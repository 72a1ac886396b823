package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/heliox-inc/heliox/internal/interfaces/http/handlers"
	"github.com/heliox-inc/heliox/internal/interfaces/http/middleware"
	"github.com/heliox-inc/heliox/internal/infrastructure/config"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
}

// NewRouter assembles the gin engine: global middleware, the public health
// probe, the tenant-facing notification routes, and the operator-only admin
// routes behind the platform_admin gate.
func NewRouter(
	cfg *config.Config,
	db *gorm.DB,
	authMW *middleware.AuthMiddleware,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	log logger.Interface,
) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(db)
	engine.GET("/health", healthHandler.Check)

	api := engine.Group("/api/v1")
	api.Use(authMW.RequireAuth())
	{
		notifications := api.Group("/notifications")
		{
			notifications.POST("", notificationHandler.Create)
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read-all", notificationHandler.MarkAllAsRead)
			notifications.POST("/:id/read", notificationHandler.MarkAsRead)
			notifications.DELETE("/:id", notificationHandler.Hide)
		}

		admin := api.Group("/admin")
		admin.Use(authMW.RequirePlatformAdmin())
		{
			admin.DELETE("/companies/:id", adminHandler.DeleteCompany)
			admin.GET("/companies/:id/deletion-summary", adminHandler.GetDeletionSummary)
			admin.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
