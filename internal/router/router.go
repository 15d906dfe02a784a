package router

import (
	"stockbook/internal/config"
	"stockbook/internal/handler"
	"stockbook/internal/infra"
	"stockbook/internal/middleware"
	"stockbook/internal/service"
	"stockbook/internal/storage"
	"stockbook/internal/store"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← KV backend
func New(cfg *config.Config, kv storage.KV) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Identity(cfg.JWTSecret))
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Store / infrastructure ───────────────────────────────────────────────
	st := store.New(kv, store.NewKeyspace(cfg.KeyPrefix))
	drive := infra.NewDriveClient(cfg.DriveAPIURL, cfg.DriveUploadURL)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(st, cfg)
	customerSvc := service.NewCustomerService(st)
	productSvc := service.NewProductService(st)
	movementSvc := service.NewMovementService(st)
	reportSvc := service.NewReportService(st)
	syncSvc := service.NewSyncService(st, drive, cfg.DriveFileName)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	productsH := handler.NewProductsHandler(productSvc)
	logsH := handler.NewLogsHandler(movementSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	syncH := handler.NewSyncHandler(syncSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(kv))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Everything below is identity-scoped but never rejected: an absent or
	// invalid token reads and writes the guest dataset.
	v1 := r.Group("/v1")
	{
		customers := v1.Group("/customers")
		{
			customers.GET("", customersH.List)
			customers.POST("", customersH.Create)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.GET("/:id/balance", productsH.Balance)
		}

		logs := v1.Group("/logs")
		{
			logs.GET("", logsH.List)
			logs.POST("", logsH.Create)
			logs.DELETE("/:id", logsH.Delete)
			logs.PATCH("/:id/paid", logsH.MarkPaid)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/low-stock", reportsH.LowStock)
		}

		v1.GET("/export", syncH.Export)
		v1.POST("/import", syncH.Import)

		sync := v1.Group("/sync")
		{
			sync.POST("/push", syncH.Push)
			sync.POST("/pull", syncH.Pull)
			sync.GET("/state", syncH.State)
		}
	}

	return r
}
