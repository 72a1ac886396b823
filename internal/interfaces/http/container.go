// Package http wires the application together behind a gin router.
package http

import (
	"context"
	"time"

	"gorm.io/gorm"

	adminapp "github.com/heliox-inc/heliox/internal/application/admin"
	notificationapp "github.com/heliox-inc/heliox/internal/application/notification"
	"github.com/heliox-inc/heliox/internal/infrastructure/auth"
	"github.com/heliox-inc/heliox/internal/infrastructure/cache"
	"github.com/heliox-inc/heliox/internal/infrastructure/config"
	"github.com/heliox-inc/heliox/internal/infrastructure/email"
	"github.com/heliox-inc/heliox/internal/infrastructure/push"
	"github.com/heliox-inc/heliox/internal/infrastructure/repository"
	"github.com/heliox-inc/heliox/internal/infrastructure/storage"
	"github.com/heliox-inc/heliox/internal/interfaces/http/handlers"
	"github.com/heliox-inc/heliox/internal/interfaces/http/middleware"
	"github.com/heliox-inc/heliox/internal/shared/logger"
	"github.com/heliox-inc/heliox/internal/shared/services/markdown"
)

// Container holds the wired application graph.
type Container struct {
	Router *Router

	NotificationService *notificationapp.Service
	NotificationEvents  *notificationapp.Events
	AdminService        *adminapp.Service
}

// NewContainer builds every repository, service, and handler from the
// loaded config and an open database handle.
func NewContainer(cfg *config.Config, db *gorm.DB, log logger.Interface) *Container {
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	purgeRepo := repository.NewTenantPurgeRepository(db, cfg.Tenancy.MaxBatchSize)

	blobStore := storage.NewFilesystemStore(cfg.Storage.RootDir)
	redisCache := cache.NewRedisCache(cfg.Redis)
	pushProvider := push.NewHTTPProvider(cfg.Push.Endpoint, cfg.Push.APIKey, time.Duration(cfg.Push.Timeout)*time.Second)
	emailSender := email.NewSMTPSender(cfg.Email)
	markdownService := markdown.NewService()

	notificationService := notificationapp.NewService(
		notificationRepo,
		userRepo,
		redisCache,
		&pushSenderAdapter{provider: pushProvider},
		cfg.Tenancy.NotificationFeedLimit,
		time.Duration(cfg.Tenancy.CacheTTLSeconds)*time.Second,
		log.Named("notification"),
	)
	notificationEvents := notificationapp.NewEvents(
		notificationService.CreateUseCase(),
		userRepo,
		emailSender,
		markdownService,
		log.Named("notification.events"),
	)
	adminService := adminapp.NewService(
		purgeRepo,
		companyRepo,
		blobStore,
		auditRepo,
		auditRepo,
		log.Named("admin"),
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT)
	authMW := middleware.NewAuthMiddleware(jwtService, log.Named("auth"))

	notificationHandler := handlers.NewNotificationHandler(notificationService, log.Named("http.notification"))
	adminHandler := handlers.NewAdminHandler(adminService, log.Named("http.admin"))

	router := NewRouter(cfg, db, authMW, notificationHandler, adminHandler, log.Named("http"))

	return &Container{
		Router:              router,
		NotificationService: notificationService,
		NotificationEvents:  notificationEvents,
		AdminService:        adminService,
	}
}

// pushSenderAdapter bridges the application-layer push interface onto the
// gateway client.
type pushSenderAdapter struct {
	provider push.Provider
}

func (a *pushSenderAdapter) Send(ctx context.Context, userIDs []uint, title, body string, data map[string]interface{}) error {
	return a.provider.Send(ctx, push.Message{
		UserIDs: userIDs,
		Title:   title,
		Body:    body,
		Data:    data,
	})
}
