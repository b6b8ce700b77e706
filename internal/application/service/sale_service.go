package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/domain/cart"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
	"github.com/petros-hq/petros-api/pkg/utils"
)

// SaleService handles sale checkout, listing and reversal
type SaleService struct {
	saleRepo      repository.SaleRepository
	saleItemRepo  repository.SaleItemRepository
	containerRepo repository.ContainerRepository
	customerRepo  repository.CustomerRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	containerRepo repository.ContainerRepository,
	customerRepo repository.CustomerRepository,
) *SaleService {
	return &SaleService{
		saleRepo:      saleRepo,
		saleItemRepo:  saleItemRepo,
		containerRepo: containerRepo,
		customerRepo:  customerRepo,
	}
}

// SaleLineInput is one requested line of a sale
type SaleLineInput struct {
	ContainerItemID uuid.UUID
	Quantity        int
	// UnitPrice overrides the catalog price when set. Only admins may
	// override; the service enforces it.
	UnitPrice *float64
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	UserID     uuid.UUID
	IsAdmin    bool
	CustomerID uuid.UUID
	SourceType enum.SaleSource
	SourceID   uuid.UUID
	SaleType   enum.SaleType
	Lines      []SaleLineInput
}

// CreateSale checks out a sale. The requested lines are rebuilt through the
// cart so availability caps and price rules hold, stock is taken with a
// guarded atomic decrement, and a credit sale moves the customer's balance.
// Any failure after stock was taken puts the stock back.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if input.CustomerID == uuid.Nil {
		return nil, apperror.NewBadRequestError("Customer is required")
	}
	if !input.SourceType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid sale source")
	}
	if !input.SaleType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid sale type")
	}
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Sale needs at least one item")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	ids := make([]uuid.UUID, 0, len(input.Lines))
	for _, line := range input.Lines {
		ids = append(ids, line.ContainerItemID)
	}
	stockItems, err := s.containerRepo.GetItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	stock := make(map[uuid.UUID]entity.ContainerItem, len(stockItems))
	for _, item := range stockItems {
		stock[item.ID] = item
	}

	// Rebuild the request through the cart so the availability cap and
	// price rules are the same ones the composition screens enforce.
	c := cart.New()
	for _, line := range input.Lines {
		item, ok := stock[line.ContainerItemID]
		if !ok {
			return nil, apperror.NewNotFoundError("Stock item")
		}
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be positive")
		}

		catalogItem := cart.Item{
			ID:        item.ID,
			Name:      item.ItemName,
			Available: item.RemainingQty(),
			UnitPrice: item.UnitPrice,
		}
		for i := 0; i < line.Quantity; i++ {
			if err := c.Add(catalogItem); err != nil {
				if errors.Is(err, cart.ErrOutOfStock) || errors.Is(err, cart.ErrInsufficientStock) {
					return nil, apperror.NewInsufficientStockError([]string{item.ItemName})
				}
				return nil, err
			}
		}

		if line.UnitPrice != nil {
			if !input.IsAdmin {
				return nil, apperror.ErrForbidden
			}
			price := int64(*line.UnitPrice * 100)
			if err := c.SetUnitPrice(item.ID, price); err != nil {
				return nil, apperror.NewBadRequestError("Invalid unit price")
			}
		}
	}

	submission := cart.NewSubmission(c)
	if err := submission.Begin(); err != nil {
		return nil, apperror.NewConflictError("Sale already submitting")
	}

	sells := make(map[uuid.UUID]int, c.Len())
	for _, line := range c.Lines() {
		sells[line.ItemID] = line.Quantity
	}

	failed, err := s.containerRepo.AtomicSellBatch(ctx, sells)
	if err != nil {
		submission.Fail()
		return nil, err
	}
	if len(failed) > 0 {
		submission.Fail()
		names := make([]string, 0, len(failed))
		for _, id := range failed {
			if item, ok := stock[id]; ok {
				names = append(names, item.ItemName)
			}
		}
		return nil, apperror.NewInsufficientStockError(names)
	}

	sale := &entity.Sale{
		UserID:      input.UserID,
		CustomerID:  input.CustomerID,
		SourceType:  input.SourceType,
		SourceID:    input.SourceID,
		SaleType:    input.SaleType,
		InvoiceNo:   utils.GenerateInvoiceNo(),
		TotalAmount: c.Total(),
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		submission.Fail()
		s.rollbackStock(ctx, sells)
		return nil, err
	}

	items := make([]entity.SaleItem, 0, c.Len())
	for _, line := range c.Lines() {
		items = append(items, entity.SaleItem{
			SaleID:          sale.ID,
			ContainerItemID: line.ItemID,
			ItemName:        line.Name,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			Total:           line.Total(),
		})
	}
	if err := s.saleItemRepo.CreateBatch(ctx, items); err != nil {
		submission.Fail()
		s.rollbackStock(ctx, sells)
		_ = s.saleRepo.Delete(ctx, sale.ID)
		return nil, err
	}

	if sale.IsCredit() {
		if err := s.customerRepo.AdjustBalance(ctx, sale.CustomerID, sale.TotalAmount); err != nil {
			submission.Fail()
			s.rollbackStock(ctx, sells)
			_ = s.saleRepo.Delete(ctx, sale.ID)
			return nil, err
		}
	}

	submission.Succeed()
	sale.Items = items
	return sale, nil
}

func (s *SaleService) rollbackStock(ctx context.Context, sells map[uuid.UUID]int) {
	_ = s.containerRepo.AtomicUnsellBatch(ctx, sells)
}

// GetSale retrieves a sale with its items and customer
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return s.saleRepo.List(ctx, params)
}

// ListSalesByCustomer lists a customer's sales, newest first
func (s *SaleService) ListSalesByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.saleRepo.ListByCustomer(ctx, customerID)
}

// GetSaleTotal returns a sale's total in cedis
func (s *SaleService) GetSaleTotal(ctx context.Context, id uuid.UUID) (float64, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if sale == nil {
		return 0, apperror.NewNotFoundError("Sale")
	}
	return sale.GetTotalDecimal(), nil
}

// UpdateSaleTotal overrides a sale's total. Admin only: the handler gates
// on role, and a credit sale's balance delta is applied here.
func (s *SaleService) UpdateSaleTotal(ctx context.Context, id uuid.UUID, total float64, isAdmin bool) (*entity.Sale, error) {
	if !isAdmin {
		return nil, apperror.ErrForbidden
	}
	if total < 0 {
		return nil, apperror.NewBadRequestError("Total cannot be negative")
	}

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	newTotal := int64(total * 100)
	delta := newTotal - sale.TotalAmount

	if err := s.saleRepo.UpdateTotal(ctx, id, newTotal); err != nil {
		return nil, err
	}

	if sale.IsCredit() && delta != 0 {
		if err := s.customerRepo.AdjustBalance(ctx, sale.CustomerID, delta); err != nil {
			return nil, err
		}
	}

	sale.TotalAmount = newTotal
	return sale, nil
}

// DeleteSale reverses a sale: stock goes back to its container items and a
// credit sale's amount is taken off the customer's balance.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	unsells := make(map[uuid.UUID]int, len(sale.Items))
	for _, item := range sale.Items {
		unsells[item.ContainerItemID] += item.Quantity
	}
	if err := s.containerRepo.AtomicUnsellBatch(ctx, unsells); err != nil {
		return err
	}

	if sale.IsCredit() {
		if err := s.customerRepo.AdjustBalance(ctx, sale.CustomerID, -sale.TotalAmount); err != nil {
			return err
		}
	}

	return s.saleRepo.Delete(ctx, id)
}
