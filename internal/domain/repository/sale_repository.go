package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/pkg/pagination"
)

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.Params
	CustomerID *uuid.UUID
	SupplierID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error)
	// ListByCustomerBetween returns a customer's sales inside a date window,
	// items preloaded, for statement generation.
	ListByCustomerBetween(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]entity.Sale, error)
	UpdateTotal(ctx context.Context, id uuid.UUID, total int64) error
}

// SaleItemRepository defines the interface for sale line-item operations
type SaleItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SaleItem) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error)
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
}
