package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailySalesResult represents sales totals for a single day
type DailySalesResult struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Count   int       `json:"count"`
}

// TopCustomerResult represents a customer's purchasing volume
type TopCustomerResult struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	TotalSpent   float64   `json:"total_spent"`
	SaleCount    int       `json:"sale_count"`
}

// SupplierSalesResult represents sales aggregated per supplier
type SupplierSalesResult struct {
	SupplierID   uuid.UUID `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	TotalSales   float64   `json:"total_sales"`
	QuantitySold int       `json:"quantity_sold"`
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetSalesTotalBetween returns revenue and sale count in a window.
	GetSalesTotalBetween(ctx context.Context, from, to time.Time) (float64, int, error)
	// GetOutstandingCredit returns the sum of positive customer balances.
	GetOutstandingCredit(ctx context.Context) (float64, error)
	// CountCustomers returns the total number of active customers.
	CountCustomers(ctx context.Context) (int64, error)
	// CountContainersByStatus returns how many containers are in each status.
	CountContainersByStatus(ctx context.Context) (map[string]int64, error)
	// GetDailySales returns per-day sales totals for the last N days.
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)
	// GetTopCustomers returns the biggest customers by sale volume.
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)
	// GetSalesBySupplier aggregates sale totals per supplier in a window.
	GetSalesBySupplier(ctx context.Context, from, to time.Time) ([]SupplierSalesResult, error)
}
