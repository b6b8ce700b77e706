package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	domainRepo "github.com/petros-hq/petros-api/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.SaleItem{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Sale{}, "id = ?", id).Error
	})
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.SupplierID != nil {
		query = query.Where("source_type = ? AND source_id = ?", "supplier", *params.SupplierID)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	switch sortBy {
	case "total_amount", "created_at", "invoice_no":
	default:
		sortBy = "created_at"
	}
	sortOrder := "DESC"
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query = query.Preload("Items").Preload("Customer").
		Order(sortBy + " " + sortOrder)

	if params.Pagination != nil {
		params.Pagination.Normalize()
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.Limit)
	}

	err := query.Find(&sales).Error
	return sales, total, err
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

// ListByCustomerBetween returns a customer's sales inside a date window,
// items preloaded, oldest first, for statement generation.
func (r *saleRepository) ListByCustomerBetween(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale

	query := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID)

	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	err := query.Order("created_at ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepository) UpdateTotal(ctx context.Context, id uuid.UUID, total int64) error {
	result := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("id = ?", id).
		Update("total_amount", total)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type saleItemRepository struct {
	db *gorm.DB
}

// NewSaleItemRepository creates a new sale line-item repository
func NewSaleItemRepository(db *gorm.DB) domainRepo.SaleItemRepository {
	return &saleItemRepository{db: db}
}

func (r *saleItemRepository) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *saleItemRepository) GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	var items []entity.SaleItem
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *saleItemRepository) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SaleItem{}, "sale_id = ?", saleID).Error
}
