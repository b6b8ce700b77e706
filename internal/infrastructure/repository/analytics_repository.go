package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	domainRepo "github.com/petros-hq/petros-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// GetSalesTotalBetween returns revenue (cedis) and sale count in a window.
func (r *analyticsRepository) GetSalesTotalBetween(ctx context.Context, from, to time.Time) (float64, int, error) {
	var result struct {
		Total int64
		Count int
	}

	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}

	return float64(result.Total) / 100, result.Count, nil
}

// GetOutstandingCredit returns the sum of positive customer balances.
func (r *analyticsRepository) GetOutstandingCredit(ctx context.Context) (float64, error) {
	var total int64

	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("balance > 0").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return float64(total) / 100, nil
}

func (r *analyticsRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountContainersByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := r.db.WithContext(ctx).Model(&entity.Container{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// GetDailySales returns per-day sales totals for the last N days,
// oldest day first. Days with no sales are omitted.
func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	var rows []struct {
		Date    time.Time
		Revenue int64
		Count   int
	}

	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("DATE(created_at) AS date, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.DailySalesResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.DailySalesResult{
			Date:    row.Date,
			Revenue: float64(row.Revenue) / 100,
			Count:   row.Count,
		})
	}
	return results, nil
}

// GetTopCustomers returns the biggest customers by sale volume.
func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []struct {
		CustomerID   uuid.UUID
		CustomerName string
		TotalSpent   int64
		SaleCount    int
	}

	err := r.db.WithContext(ctx).
		Table("sales s").
		Select(`s.customer_id,
			c.name AS customer_name,
			COALESCE(SUM(s.total_amount), 0) AS total_spent,
			COUNT(*) AS sale_count`).
		Joins("JOIN customers c ON c.id = s.customer_id AND c.deleted_at IS NULL").
		Where("s.deleted_at IS NULL").
		Group("s.customer_id, c.name").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.TopCustomerResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.TopCustomerResult{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			TotalSpent:   float64(row.TotalSpent) / 100,
			SaleCount:    row.SaleCount,
		})
	}
	return results, nil
}

// GetSalesBySupplier aggregates container-sourced sale totals per supplier
// in a window.
func (r *analyticsRepository) GetSalesBySupplier(ctx context.Context, from, to time.Time) ([]domainRepo.SupplierSalesResult, error) {
	var rows []struct {
		SupplierID   uuid.UUID
		SupplierName string
		TotalSales   int64
		QuantitySold int
	}

	err := r.db.WithContext(ctx).
		Table("sale_items si").
		Select(`c.supplier_id,
			s.supplier_name,
			COALESCE(SUM(si.total), 0) AS total_sales,
			COALESCE(SUM(si.quantity), 0) AS quantity_sold`).
		Joins("JOIN sales sa ON sa.id = si.sale_id AND sa.deleted_at IS NULL").
		Joins("JOIN container_items ci ON ci.id = si.container_item_id").
		Joins("JOIN containers c ON c.id = ci.container_id AND c.deleted_at IS NULL").
		Joins("JOIN suppliers s ON s.id = c.supplier_id AND s.deleted_at IS NULL").
		Where("si.deleted_at IS NULL AND sa.created_at >= ? AND sa.created_at <= ?", from, to).
		Group("c.supplier_id, s.supplier_name").
		Order("total_sales DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.SupplierSalesResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.SupplierSalesResult{
			SupplierID:   row.SupplierID,
			SupplierName: row.SupplierName,
			TotalSales:   float64(row.TotalSales) / 100,
			QuantitySold: row.QuantitySold,
		})
	}
	return results, nil
}
