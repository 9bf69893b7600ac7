package router

import (
	"time"

	"github.com/feliperufini/felskys-manager-api/internal/config"
	"github.com/feliperufini/felskys-manager-api/internal/handler"
	"github.com/feliperufini/felskys-manager-api/internal/middleware"
	"github.com/feliperufini/felskys-manager-api/internal/repository"
	"github.com/feliperufini/felskys-manager-api/internal/service"
	"github.com/feliperufini/felskys-manager-api/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	activityLogRepo := repository.NewActivityLogRepository(db)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(middleware.ActivityLogger(activityLogRepo))

	// ── Repositories ─────────────────────────────────────────────────────────
	orgRepo := repository.NewOrganizationRepository(db)
	websiteRepo := repository.NewWebsiteRepository(db)
	moduleRepo := repository.NewWebsiteModuleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	orgSvc := service.NewOrganizationService(orgRepo)
	websiteSvc := service.NewWebsiteService(websiteRepo, moduleRepo, orgRepo)
	moduleSvc := service.NewWebsiteModuleService(moduleRepo)
	permSvc := service.NewPermissionService(permRepo, moduleRepo)
	roleSvc := service.NewRoleService(roleRepo, permRepo, userRepo, rdb)
	userSvc := service.NewUserService(userRepo, roleRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, paymentRepo, orgRepo, cfg.PDFStoragePath)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	orgsH := handler.NewOrganizationsHandler(orgSvc)
	websitesH := handler.NewWebsitesHandler(websiteSvc)
	modulesH := handler.NewModulesHandler(moduleSvc, permSvc)
	permsH := handler.NewPermissionsHandler(permSvc)
	rolesH := handler.NewRolesHandler(roleSvc)
	usersH := handler.NewUsersHandler(userSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc)
	paymentsH := handler.NewPaymentsHandler(paymentSvc)
	activityLogsH := handler.NewActivityLogsHandler(activityLogRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		orgs := v1.Group("/organizations")
		{
			orgs.POST("", orgsH.Create)
			orgs.GET("", orgsH.List)
			orgs.GET("/:id", orgsH.Get)
			orgs.PUT("/:id", orgsH.Update)
			orgs.DELETE("/:id", orgsH.Delete)
		}

		websites := v1.Group("/websites")
		{
			websites.POST("", websitesH.Create)
			websites.GET("", websitesH.List)
			websites.GET("/:id", websitesH.Get)
			websites.PUT("/:id", websitesH.Update)
			websites.DELETE("/:id", websitesH.Delete)
		}

		modules := v1.Group("/website-modules")
		{
			modules.POST("", modulesH.Create)
			modules.GET("", modulesH.List)
			modules.GET("/:id", modulesH.Get)
			modules.PUT("/:id", modulesH.Update)
			modules.DELETE("/:id", modulesH.Delete)
			modules.POST("/:id/default-permissions", modulesH.CreateDefaultPermissions)
		}

		perms := v1.Group("/permissions")
		{
			perms.POST("", permsH.Create)
			perms.GET("", permsH.List)
			perms.GET("/:id", permsH.Get)
			perms.PUT("/:id", permsH.Update)
			perms.DELETE("/:id", permsH.Delete)
		}

		roles := v1.Group("/roles")
		{
			roles.POST("", rolesH.Create)
			roles.GET("", rolesH.List)
			roles.GET("/:id", rolesH.Get)
			roles.PUT("/:id", rolesH.Update)
			roles.DELETE("/:id", rolesH.Delete)
		}

		users := v1.Group("/users")
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.GET("/:id", usersH.Get)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.POST("", invoicesH.Create)
			invoices.GET("", invoicesH.List)
			invoices.GET("/:id", invoicesH.Get)
			invoices.GET("/:id/pdf", invoicesH.StatementPDF)
			invoices.PUT("/:id", invoicesH.Update)
			invoices.DELETE("/:id", invoicesH.Delete)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("", paymentsH.Record)
			payments.GET("", paymentsH.List)
			payments.GET("/:id", paymentsH.Get)
			payments.PUT("/:id", paymentsH.Update)
			payments.DELETE("/:id", paymentsH.Delete)
		}

		v1.GET("/activity-logs", activityLogsH.List)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
