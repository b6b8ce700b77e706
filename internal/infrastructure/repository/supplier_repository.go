package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	domainRepo "github.com/petros-hq/petros-api/internal/domain/repository"
)

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) domainRepo.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *supplierRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).Preload("Items").First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepository) List(ctx context.Context, search string) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier

	query := r.db.WithContext(ctx).Model(&entity.Supplier{})
	if search != "" {
		query = query.Where("supplier_name ILIKE ? OR country ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	err := query.Order("supplier_name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepository) CreateItem(ctx context.Context, item *entity.SupplierItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *supplierRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.SupplierItem, error) {
	var item entity.SupplierItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *supplierRepository) UpdateItem(ctx context.Context, item *entity.SupplierItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *supplierRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SupplierItem{}, "id = ?", id).Error
}

func (r *supplierRepository) ListItems(ctx context.Context, supplierID uuid.UUID) ([]entity.SupplierItem, error) {
	var items []entity.SupplierItem
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("item_name ASC").
		Find(&items).Error
	return items, err
}

// ListItemsWithSales aggregates every supplier catalog item with the stock
// received and sold across all of the supplier's containers. Items that
// never appeared in a container report zero quantities.
func (r *supplierRepository) ListItemsWithSales(ctx context.Context) ([]domainRepo.SupplierItemSales, error) {
	var results []domainRepo.SupplierItemSales

	err := r.db.WithContext(ctx).
		Table("supplier_items si").
		Select(`si.id,
			si.item_name,
			s.supplier_name,
			COALESCE(SUM(ci.received_qty), 0) AS quantity,
			COALESCE(SUM(ci.sold_qty), 0) AS sold_qty,
			COALESCE(SUM(ci.received_qty - ci.sold_qty), 0) AS remaining_qty,
			si.price / 100.0 AS price`).
		Joins("JOIN suppliers s ON s.id = si.supplier_id AND s.deleted_at IS NULL").
		Joins(`LEFT JOIN containers c ON c.supplier_id = si.supplier_id AND c.deleted_at IS NULL`).
		Joins(`LEFT JOIN container_items ci ON ci.container_id = c.id AND ci.item_name = si.item_name AND ci.deleted_at IS NULL`).
		Where("si.deleted_at IS NULL").
		Group("si.id, si.item_name, s.supplier_name, si.price").
		Order("s.supplier_name ASC, si.item_name ASC").
		Scan(&results).Error

	return results, err
}
