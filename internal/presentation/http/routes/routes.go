package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/petros-hq/petros-api/internal/config"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/internal/presentation/http/handler"
	"github.com/petros-hq/petros-api/internal/presentation/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Container *handler.ContainerHandler
	Sale      *handler.SaleHandler
	Payment   *handler.PaymentHandler
	Report    *handler.ReportHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Setup builds the gin engine with middleware and all API routes mounted
// under /api/v1.
func Setup(cfg *config.Config, h *Handlers, idempotencyRepo repository.IdempotencyRepository) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	limiterCfg := middleware.DefaultRateLimiterConfig()
	if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Duration > 0 {
		limiterCfg.RequestsPerSecond = float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration)
		limiterCfg.BurstSize = cfg.RateLimit.Requests
	}
	limiter := middleware.NewUserRateLimiter(limiterCfg)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	protected.Use(limiter.Middleware())
	{
		protected.GET("/profile", h.Auth.Me)
		protected.PUT("/profile", h.Auth.UpdateProfile)
		protected.PUT("/profile/password", h.Auth.ChangePassword)

		customers := protected.Group("/customers")
		{
			customers.POST("", h.Customer.Create)
			customers.GET("", h.Customer.List)
			customers.GET("/:id", h.Customer.Get)
			customers.PUT("/:id", h.Customer.Update)
			customers.DELETE("/:id", h.Customer.Delete)
			customers.POST("/:id/payments", middleware.Idempotency(idempotencyRepo), h.Customer.CreatePayment)
			customers.GET("/:id/payments", h.Customer.ListPayments)
			customers.GET("/:id/sales", h.Customer.ListSales)
			customers.GET("/:id/statement", h.Customer.Statement)
			customers.GET("/:id/statement/pdf", h.Customer.StatementPDF)
		}

		suppliers := protected.Group("/suppliers")
		{
			suppliers.POST("", h.Supplier.Create)
			suppliers.GET("", h.Supplier.List)
			suppliers.GET("/items/withsales", h.Supplier.ListItemsWithSales)
			suppliers.PUT("/items/:id", h.Supplier.UpdateItem)
			suppliers.DELETE("/items/:id", h.Supplier.DeleteItem)
			suppliers.GET("/:id", h.Supplier.Get)
			suppliers.PUT("/:id", h.Supplier.Update)
			suppliers.DELETE("/:id", h.Supplier.Delete)
			suppliers.POST("/:id/items", h.Supplier.CreateItem)
			suppliers.GET("/:id/items", h.Supplier.ListItems)
			suppliers.GET("/:id/containers", h.Supplier.ListContainers)
		}

		containers := protected.Group("/containers")
		{
			containers.POST("", h.Container.Create)
			containers.GET("", h.Container.List)
			containers.GET("/:id", h.Container.Get)
			containers.DELETE("/:id", h.Container.Delete)
			containers.POST("/:id/offload", h.Container.Offload)
			containers.PUT("/:id/mark-received", h.Container.MarkReceived)
			containers.PUT("/:id/mark-incomplete", h.Container.MarkIncomplete)
			containers.PUT("/:id/mark-done", h.Container.MarkDone)
			containers.GET("/:id/items", h.Container.ListItems)
			containers.GET("/:id/items/withsales", h.Container.ListItemsWithSales)
			containers.GET("/:id/summary", h.Container.Summary)
		}

		sales := protected.Group("/sales")
		{
			sales.POST("", middleware.Idempotency(idempotencyRepo), h.Sale.Create)
			sales.GET("", h.Sale.List)
			sales.GET("/customer/:id", h.Sale.ListByCustomer)
			sales.GET("/supplier/:id/items", h.Supplier.ListStockItems)
			sales.GET("/:id", h.Sale.Get)
			sales.DELETE("/:id", h.Sale.Delete)
			sales.GET("/:id/total", h.Sale.GetTotal)
			sales.PUT("/:id/total", middleware.RequireAdmin(), h.Sale.UpdateTotal)
			sales.GET("/:id/receipt", h.Sale.Receipt)
			sales.POST("/:id/print", h.Sale.Print)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("", middleware.Idempotency(idempotencyRepo), h.Payment.Create)
			payments.GET("/customer/:id", h.Payment.ListByCustomer)
			payments.GET("/:id", h.Payment.Get)
			payments.DELETE("/:id", h.Payment.Delete)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/container/:id", h.Report.Container)
			reports.GET("/supplier/:id", h.Report.Supplier)
			reports.GET("/detailed", h.Report.DetailedSales)
			reports.GET("/salessummary/supplier", h.Report.SalesSummaryBySupplier)
			reports.GET("/inventory", h.Report.Inventory)
		}

		protected.GET("/dashboard", h.Dashboard.Stats)

		printer := protected.Group("/printer")
		{
			printer.GET("/status", h.Printer.Status)
			printer.POST("/test", middleware.RequireAdmin(), h.Printer.Test)
		}
	}

	return router
}
