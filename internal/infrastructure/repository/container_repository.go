package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	domainRepo "github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
)

type containerRepository struct {
	db *gorm.DB
}

// NewContainerRepository creates a new container repository
func NewContainerRepository(db *gorm.DB) domainRepo.ContainerRepository {
	return &containerRepository{db: db}
}

func (r *containerRepository) Create(ctx context.Context, container *entity.Container) error {
	return r.db.WithContext(ctx).Create(container).Error
}

func (r *containerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	var container entity.Container
	err := r.db.WithContext(ctx).Preload("Supplier").First(&container, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &container, err
}

func (r *containerRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	var container entity.Container
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_name ASC")
		}).
		First(&container, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &container, err
}

func (r *containerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ContainerItem{}, "container_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Container{}, "id = ?", id).Error
	})
}

func (r *containerRepository) List(ctx context.Context) ([]entity.Container, error) {
	var containers []entity.Container
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Order("arrival_date DESC, created_at DESC").
		Find(&containers).Error
	return containers, err
}

func (r *containerRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.Container, error) {
	var containers []entity.Container
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("arrival_date DESC, created_at DESC").
		Find(&containers).Error
	return containers, err
}

func (r *containerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ContainerStatus) error {
	result := r.db.WithContext(ctx).Model(&entity.Container{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *containerRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.ContainerItem, error) {
	var item entity.ContainerItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *containerRepository) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.ContainerItem, error) {
	var items []entity.ContainerItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *containerRepository) ListItems(ctx context.Context, containerID uuid.UUID) ([]entity.ContainerItem, error) {
	var items []entity.ContainerItem
	err := r.db.WithContext(ctx).
		Where("container_id = ?", containerID).
		Order("item_name ASC").
		Find(&items).Error
	return items, err
}

// ListItemsWithSales returns one container's stock lines joined with
// container and supplier identity.
func (r *containerRepository) ListItemsWithSales(ctx context.Context, containerID uuid.UUID) ([]domainRepo.ContainerItemSales, error) {
	var results []domainRepo.ContainerItemSales

	err := r.db.WithContext(ctx).
		Table("container_items ci").
		Select(`ci.id,
			ci.item_name,
			ci.received_qty,
			ci.sold_qty,
			ci.received_qty - ci.sold_qty AS remaining_qty,
			ci.unit_price / 100.0 AS unit_price,
			c.id AS container_id,
			c.container_no,
			s.supplier_name`).
		Joins("JOIN containers c ON c.id = ci.container_id AND c.deleted_at IS NULL").
		Joins("JOIN suppliers s ON s.id = c.supplier_id AND s.deleted_at IS NULL").
		Where("ci.container_id = ? AND ci.deleted_at IS NULL", containerID).
		Order("ci.item_name ASC").
		Scan(&results).Error

	return results, err
}

// ListItemsBySupplier returns sellable stock lines across every received
// container of a supplier. Pending containers are not yet offloaded, so
// their stock is excluded from the regular-sale catalog.
func (r *containerRepository) ListItemsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]domainRepo.ContainerItemSales, error) {
	var results []domainRepo.ContainerItemSales

	err := r.db.WithContext(ctx).
		Table("container_items ci").
		Select(`ci.id,
			ci.item_name,
			ci.received_qty,
			ci.sold_qty,
			ci.received_qty - ci.sold_qty AS remaining_qty,
			ci.unit_price / 100.0 AS unit_price,
			c.id AS container_id,
			c.container_no,
			s.supplier_name`).
		Joins("JOIN containers c ON c.id = ci.container_id AND c.deleted_at IS NULL").
		Joins("JOIN suppliers s ON s.id = c.supplier_id AND s.deleted_at IS NULL").
		Where("c.supplier_id = ? AND c.status <> ? AND ci.deleted_at IS NULL", supplierID, enum.ContainerStatusPending).
		Order("c.arrival_date DESC, ci.item_name ASC").
		Scan(&results).Error

	return results, err
}

// UpdateReceivedQuantities records offload results for a batch of items in
// one transaction. An item whose confirmed quantity would fall below what
// is already sold fails the whole batch.
func (r *containerRepository) UpdateReceivedQuantities(ctx context.Context, containerID uuid.UUID, updates []domainRepo.ReceivedQtyUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&entity.ContainerItem{}).
				Where("id = ? AND container_id = ? AND sold_qty <= ?", u.ItemID, containerID, u.ReceivedQty).
				Update("received_qty", u.ReceivedQty)

			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Either the item does not belong to this container or
				// the confirmed quantity would undercut what is sold.
				var count int64
				if err := tx.Model(&entity.ContainerItem{}).
					Where("id = ? AND container_id = ?", u.ItemID, containerID).
					Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return apperror.NewNotFoundError("Container item")
				}
				return apperror.NewConflictError("Received quantity cannot be below the quantity already sold")
			}
		}
		return nil
	})
}

// AtomicSellBatch atomically increments sold_qty for multiple container
// items in a single transaction, each guarded by the available stock.
// If any item lacks stock, the entire transaction is rolled back and the
// failing ids are returned.
func (r *containerRepository) AtomicSellBatch(ctx context.Context, sells map[uuid.UUID]int) ([]uuid.UUID, error) {
	if len(sells) == 0 {
		return nil, nil
	}

	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, qty := range sells {
			result := tx.Model(&entity.ContainerItem{}).
				Where("id = ? AND received_qty - sold_qty >= ?", id, qty).
				Update("sold_qty", gorm.Expr("sold_qty + ?", qty))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}

		return nil
	})

	// Rolled back due to insufficient stock: report the failing ids
	// without the sentinel transaction error.
	if err == gorm.ErrInvalidTransaction && len(failedIDs) > 0 {
		return failedIDs, nil
	}

	return failedIDs, err
}

// AtomicUnsellBatch decrements sold_qty, used when a sale is deleted or
// creation fails after stock was taken. Clamped at zero.
func (r *containerRepository) AtomicUnsellBatch(ctx context.Context, unsells map[uuid.UUID]int) error {
	if len(unsells) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, qty := range unsells {
			err := tx.Model(&entity.ContainerItem{}).
				Where("id = ?", id).
				Update("sold_qty", gorm.Expr("GREATEST(sold_qty - ?, 0)", qty)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
