package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
)

// SupplierService handles supplier and supplier-catalog operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	SupplierName string
	Contact      *string
	Country      *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		SupplierName: input.SupplierName,
		Contact:      input.Contact,
		Country:      input.Country,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// GetSupplierWithItems retrieves a supplier with its catalog loaded
func (s *SupplierService) GetSupplierWithItems(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers, optionally filtered by a search term
func (s *SupplierService) ListSuppliers(ctx context.Context, search string) ([]entity.Supplier, error) {
	return s.supplierRepo.List(ctx, search)
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	ID           uuid.UUID
	SupplierName *string
	Contact      *string
	Country      *string
}

// UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.SupplierName != nil {
		supplier.SupplierName = *input.SupplierName
	}
	if input.Contact != nil {
		supplier.Contact = input.Contact
	}
	if input.Country != nil {
		supplier.Country = input.Country
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	return s.supplierRepo.Delete(ctx, id)
}

// CreateSupplierItemInput represents the create supplier item input
type CreateSupplierItemInput struct {
	SupplierID uuid.UUID
	ItemName   string
	Price      float64
}

// CreateSupplierItem adds an item to a supplier's catalog
func (s *SupplierService) CreateSupplierItem(ctx context.Context, input *CreateSupplierItemInput) (*entity.SupplierItem, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	item := &entity.SupplierItem{
		SupplierID: input.SupplierID,
		ItemName:   input.ItemName,
	}
	item.SetPriceFromDecimal(input.Price)

	if err := s.supplierRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateSupplierItemInput represents the update supplier item input
type UpdateSupplierItemInput struct {
	ID       uuid.UUID
	ItemName *string
	Price    *float64
}

// UpdateSupplierItem updates a catalog item
func (s *SupplierService) UpdateSupplierItem(ctx context.Context, input *UpdateSupplierItemInput) (*entity.SupplierItem, error) {
	item, err := s.supplierRepo.GetItemByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Supplier item")
	}

	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		item.SetPriceFromDecimal(*input.Price)
	}

	if err := s.supplierRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteSupplierItem removes a catalog item
func (s *SupplierService) DeleteSupplierItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.supplierRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Supplier item")
	}

	return s.supplierRepo.DeleteItem(ctx, id)
}

// ListSupplierItems lists a supplier's catalog
func (s *SupplierService) ListSupplierItems(ctx context.Context, supplierID uuid.UUID) ([]entity.SupplierItem, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	return s.supplierRepo.ListItems(ctx, supplierID)
}

// ListItemsWithSales returns every supplier catalog item with its aggregate
// stock and sales figures across containers
func (s *SupplierService) ListItemsWithSales(ctx context.Context) ([]repository.SupplierItemSales, error) {
	return s.supplierRepo.ListItemsWithSales(ctx)
}
