package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/entity"
)

// SupplierItemSales is a supplier catalog item joined with its aggregate
// container stock and sales figures.
type SupplierItemSales struct {
	ID           uuid.UUID `json:"id"`
	ItemName     string    `json:"itemName"`
	SupplierName string    `json:"supplierName"`
	Quantity     int       `json:"quantity"`
	SoldQty      int       `json:"soldQty"`
	RemainingQty int       `json:"remainingQty"`
	Price        float64   `json:"price"`
}

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]entity.Supplier, error)

	CreateItem(ctx context.Context, item *entity.SupplierItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.SupplierItem, error)
	UpdateItem(ctx context.Context, item *entity.SupplierItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, supplierID uuid.UUID) ([]entity.SupplierItem, error)
	// ListItemsWithSales aggregates every supplier item with the stock
	// received and sold across all of the supplier's containers.
	ListItemsWithSales(ctx context.Context) ([]SupplierItemSales, error)
}
