package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/contentpilot/console-api/api/swagger"
	"github.com/contentpilot/console-api/internal/handler"
	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/router"
	"github.com/contentpilot/console-api/internal/service"
	"github.com/contentpilot/console-api/internal/session"
	"github.com/contentpilot/console-api/internal/upstream"
	"github.com/contentpilot/console-api/pkg/config"
	"github.com/contentpilot/console-api/pkg/logger"
)

// @title ContentPilot Console API
// @version 0.1.0
// @description Admin console backend for the ContentPilot platform
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rdb, err := session.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}
	defer rdb.Close() //nolint:errcheck

	client := upstream.New(cfg.Upstream, logr)
	sessions := session.NewStore(rdb, cfg.Session.TTL)
	resolver := session.NewResolver(sessions, client, cfg.Session.IdentityTTL, logr)

	lists := listview.NewStore(cfg.Lists.CacheTTL)
	validate := validator.New()

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(client, sessions, validate, logr)
	siteSvc := service.NewSiteService(client, lists, metricsSvc, validate, logr)
	keywordSvc := service.NewKeywordService(client, lists, metricsSvc, validate, logr)
	contentSvc := service.NewContentService(client, lists, metricsSvc, logr)
	auditSvc := service.NewAuditLogService(client, lists, metricsSvc, cfg.Export.MaxRows, logr)
	userSvc := service.NewUserService(client, lists, metricsSvc, validate, logr)
	adminSvc := service.NewAdminService(client, lists, metricsSvc, validate, logr)
	roleAppSvc := service.NewRoleApplicationService(client, lists, metricsSvc, validate, logr)

	cookies := handler.NewCookieHelper(cfg.Session)

	handlers := router.Handlers{
		Auth:             handler.NewAuthHandler(authSvc, cookies),
		Session:          handler.NewSessionHandler(),
		Sites:            handler.NewSiteHandler(siteSvc, cfg.Lists),
		Keywords:         handler.NewKeywordHandler(keywordSvc, cfg.Lists),
		Content:          handler.NewContentHandler(contentSvc, cfg.Lists),
		AuditLogs:        handler.NewAuditLogHandler(auditSvc),
		Users:            handler.NewUserHandler(userSvc, cfg.Lists),
		Admins:           handler.NewAdminHandler(adminSvc),
		RoleApplications: handler.NewRoleApplicationHandler(roleAppSvc),
	}

	r := router.New(cfg, logr, resolver, metricsSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
