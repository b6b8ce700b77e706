package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
)

// ContainerItemSales is a container stock line joined with the identity of
// its container and supplier, the shape the sale-composition screens consume.
type ContainerItemSales struct {
	ID           uuid.UUID `json:"id"`
	ItemName     string    `json:"itemName"`
	ReceivedQty  int       `json:"receivedQty"`
	SoldQty      int       `json:"soldQty"`
	RemainingQty int       `json:"remainingQty"`
	UnitPrice    float64   `json:"unitPrice"`
	ContainerID  uuid.UUID `json:"containerId"`
	ContainerNo  string    `json:"containerNo"`
	SupplierName string    `json:"supplierName"`
}

// ReceivedQtyUpdate records the confirmed quantity for one item during offload.
type ReceivedQtyUpdate struct {
	ItemID      uuid.UUID
	ReceivedQty int
}

// ContainerRepository defines the interface for container data operations
type ContainerRepository interface {
	Create(ctx context.Context, container *entity.Container) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Container, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Container, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Container, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.Container, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ContainerStatus) error

	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.ContainerItem, error)
	GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.ContainerItem, error)
	ListItems(ctx context.Context, containerID uuid.UUID) ([]entity.ContainerItem, error)
	// ListItemsWithSales returns container stock lines joined with container
	// and supplier identity for one container.
	ListItemsWithSales(ctx context.Context, containerID uuid.UUID) ([]ContainerItemSales, error)
	// ListItemsBySupplier returns sellable stock lines across every
	// non-closed container of a supplier (the regular-sale catalog).
	ListItemsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]ContainerItemSales, error)
	// UpdateReceivedQuantities records offload results for a batch of items.
	UpdateReceivedQuantities(ctx context.Context, containerID uuid.UUID, updates []ReceivedQtyUpdate) error

	// AtomicSellBatch atomically increments sold_qty for each item, guarded
	// by received_qty - sold_qty >= quantity. The whole batch rolls back if
	// any item lacks stock; the ids that failed the guard are returned.
	AtomicSellBatch(ctx context.Context, sells map[uuid.UUID]int) ([]uuid.UUID, error)
	// AtomicUnsellBatch decrements sold_qty, used when a sale is deleted or
	// creation fails after stock was taken.
	AtomicUnsellBatch(ctx context.Context, unsells map[uuid.UUID]int) error
}
