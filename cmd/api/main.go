package main

import (
	"context"
	"log"
	"time"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/config"
	"github.com/petros-hq/petros-api/internal/infrastructure/database"
	"github.com/petros-hq/petros-api/internal/infrastructure/repository"
	"github.com/petros-hq/petros-api/internal/presentation/http/handler"
	"github.com/petros-hq/petros-api/internal/presentation/http/routes"
	"github.com/petros-hq/petros-api/pkg/pdf"
	"github.com/petros-hq/petros-api/pkg/printer"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	containerRepo := repository.NewContainerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleItemRepo := repository.NewSaleItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Receipt printer
	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Printer unavailable, falling back to null printer: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}
	defer receiptPrinter.Close()

	// PDF rendering
	var pdfClient *pdf.Client
	if cfg.PDF.Enabled {
		pdfClient = pdf.NewClient(cfg.PDF.GotenbergURL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := pdfClient.Ping(ctx); err != nil {
			log.Printf("Gotenberg not reachable at %s: %v", cfg.PDF.GotenbergURL, err)
		}
		cancel()
	}

	// Services
	authService := service.NewAuthService(userRepo, companyRepo, cfg.JWT)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	containerService := service.NewContainerService(containerRepo, supplierRepo)
	saleService := service.NewSaleService(saleRepo, saleItemRepo, containerRepo, customerRepo)
	paymentService := service.NewPaymentService(paymentRepo, customerRepo)
	statementService := service.NewStatementService(customerRepo, saleRepo, paymentRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	reportService := service.NewReportService(containerRepo, supplierRepo, saleRepo, analyticsRepo, pdfClient, cfg.Business)
	printerService := service.NewPrinterService(receiptPrinter, saleRepo, cfg.Printer, cfg.Business)

	// Handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService, paymentService, saleService, statementService, reportService),
		Supplier:  handler.NewSupplierHandler(supplierService, containerService),
		Container: handler.NewContainerHandler(containerService),
		Sale:      handler.NewSaleHandler(saleService, printerService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Report:    handler.NewReportHandler(reportService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	router := routes.Setup(cfg, handlers, idempotencyRepo)

	// Expired idempotency keys are swept in the background.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if n, err := idempotencyRepo.DeleteExpired(ctx); err != nil {
				log.Printf("Failed to sweep idempotency keys: %v", err)
			} else if n > 0 {
				log.Printf("Swept %d expired idempotency keys", n)
			}
			cancel()
		}
	}()

	addr := ":" + cfg.App.Port
	log.Printf("%s listening on %s (env=%s)", cfg.App.Name, addr, cfg.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
