package service

import (
	"context"
	"time"

	"github.com/petros-hq/petros-api/internal/domain/repository"
)

// DashboardService aggregates the numbers shown on the admin landing page
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats is the landing-page aggregate.
type DashboardStats struct {
	TodayRevenue      float64                          `json:"todayRevenue"`
	TodaySaleCount    int                              `json:"todaySaleCount"`
	MonthRevenue      float64                          `json:"monthRevenue"`
	MonthSaleCount    int                              `json:"monthSaleCount"`
	OutstandingCredit float64                          `json:"outstandingCredit"`
	CustomerCount     int64                            `json:"customerCount"`
	Containers        map[string]int64                 `json:"containers"`
	DailySales        []repository.DailySalesResult    `json:"dailySales"`
	TopCustomers      []repository.TopCustomerResult   `json:"topCustomers"`
	SalesBySupplier   []repository.SupplierSalesResult `json:"salesBySupplier"`
}

// GetStats collects today's and this month's sales, outstanding credit,
// container status counts, the daily trend and top customers.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayRevenue, todayCount, err := s.analyticsRepo.GetSalesTotalBetween(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}

	monthRevenue, monthCount, err := s.analyticsRepo.GetSalesTotalBetween(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.analyticsRepo.GetOutstandingCredit(ctx)
	if err != nil {
		return nil, err
	}

	customerCount, err := s.analyticsRepo.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}

	containers, err := s.analyticsRepo.CountContainersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	dailySales, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}

	salesBySupplier, err := s.analyticsRepo.GetSalesBySupplier(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodayRevenue:      todayRevenue,
		TodaySaleCount:    todayCount,
		MonthRevenue:      monthRevenue,
		MonthSaleCount:    monthCount,
		OutstandingCredit: outstanding,
		CustomerCount:     customerCount,
		Containers:        containers,
		DailySales:        dailySales,
		TopCustomers:      topCustomers,
		SalesBySupplier:   salesBySupplier,
	}, nil
}
