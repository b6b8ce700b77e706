package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/petros-hq/petros-api/internal/config"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Company{},
		&entity.User{},

		&entity.Customer{},
		&entity.Supplier{},
		&entity.SupplierItem{},

		&entity.Container{},
		&entity.ContainerItem{},

		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Payment{},

		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the default company and, when configured
// via environment variables, the first admin user.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	companyName := viper.GetString("BUSINESS_NAME")
	if companyName == "" {
		companyName = "PETROS Distribution"
	}

	var company entity.Company
	if err := db.Where("company_name = ?", companyName).First(&company).Error; err != nil {
		company = entity.Company{CompanyName: companyName}
		if err := db.Create(&company).Error; err != nil {
			return fmt.Errorf("failed to create default company: %w", err)
		}
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashed, err := utils.HashPassword(adminPassword)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			if adminName == "" {
				adminName = "Administrator"
			}
			admin := entity.User{
				CompanyID: company.ID,
				Name:      adminName,
				Email:     adminEmail,
				Password:  hashed,
				Role:      enum.UserRoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			log.Printf("Admin user created: %s", adminEmail)
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
