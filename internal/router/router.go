package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/handler"
	"github.com/contentpilot/console-api/internal/middleware"
	"github.com/contentpilot/console-api/internal/rbac"
	"github.com/contentpilot/console-api/internal/service"
	"github.com/contentpilot/console-api/internal/session"
	"github.com/contentpilot/console-api/pkg/config"
	"github.com/contentpilot/console-api/pkg/logger"
	corsmiddleware "github.com/contentpilot/console-api/pkg/middleware/cors"
	reqidmiddleware "github.com/contentpilot/console-api/pkg/middleware/requestid"
)

// Handlers bundles every endpoint group the router mounts.
type Handlers struct {
	Auth             *handler.AuthHandler
	Session          *handler.SessionHandler
	Sites            *handler.SiteHandler
	Keywords         *handler.KeywordHandler
	Content          *handler.ContentHandler
	AuditLogs        *handler.AuditLogHandler
	Users            *handler.UserHandler
	Admins           *handler.AdminHandler
	RoleApplications *handler.RoleApplicationHandler
}

// New assembles the gin engine: ambient middleware first, then the public
// probes, then the API groups with their capability gates.
func New(cfg *config.Config, logr *zap.Logger, resolver *session.Resolver, metrics *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.WithSession(resolver, cfg.Session.CookieName))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(), h.Auth.Me)
	}

	// Session bootstrap stays open so an anonymous caller still gets the
	// public menu and an all-false capability set.
	api.GET("/session", h.Session.Get)
	api.GET("/nav", h.Session.Nav)

	sites := api.Group("/sites", middleware.RequireCapability(func(caps rbac.Capabilities) bool { return caps.CanManageSites }))
	{
		sites.GET("", h.Sites.List)
		sites.POST("", h.Sites.Create)
		sites.PATCH("/:id", h.Sites.Update)
	}

	keywords := api.Group("/keywords", middleware.RequireCapability(func(caps rbac.Capabilities) bool { return caps.CanManageSites }))
	{
		keywords.GET("", h.Keywords.List)
		keywords.POST("", h.Keywords.Create)
		keywords.PATCH("/:id", h.Keywords.Update)
		keywords.DELETE("/:id", h.Keywords.Delete)
	}

	content := api.Group("/content-queue", middleware.RequireCapability(func(caps rbac.Capabilities) bool { return caps.CanManageContent }))
	{
		content.GET("", h.Content.List)
		content.PATCH("/:id/status", h.Content.SetStatus)
	}

	auditLogs := api.Group("/audit-logs", middleware.RequireCapability(func(caps rbac.Capabilities) bool { return caps.CanViewAuditLogs }))
	{
		auditLogs.GET("", h.AuditLogs.List)
		auditLogs.GET("/export", h.AuditLogs.Export)
	}

	users := api.Group("/users", middleware.RequireCapability(func(caps rbac.Capabilities) bool { return caps.CanManageUsers }))
	{
		users.GET("", h.Users.List)
		users.GET("/roles", h.Users.Roles)
		users.POST("/assign-role", h.Users.AssignRole)
		users.PATCH("/:id/toggle-active", h.Users.ToggleActive)
	}

	admins := api.Group("/admins", middleware.RequireCapability(func(caps rbac.Capabilities) bool { return caps.CanManageAdmins }))
	{
		admins.GET("", h.Admins.List)
		admins.POST("", h.Admins.Add)
		admins.DELETE("/:id", h.Admins.Remove)
	}

	roleApps := api.Group("/role-applications")
	{
		roleApps.GET("/mine", middleware.RequireAuth(), h.RoleApplications.ListMine)
		roleApps.POST("", middleware.RequireAuth(), h.RoleApplications.Apply)

		manage := middleware.RequireCapability(func(caps rbac.Capabilities) bool { return caps.CanManageUsers })
		roleApps.GET("", manage, h.RoleApplications.ListAll)
		roleApps.PATCH("/:id/review", manage, h.RoleApplications.Review)
		roleApps.DELETE("/:id", manage, h.RoleApplications.Delete)
	}

	return r
}
