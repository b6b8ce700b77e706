package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
)

// Fakes embed the repository interfaces and override only what the
// checkout path touches.

type fakeCustomerRepo struct {
	repository.CustomerRepository
	customers map[uuid.UUID]*entity.Customer
	adjusted  []int64
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta int64) error {
	c, ok := f.customers[id]
	if !ok {
		return nil
	}
	c.Balance += delta
	f.adjusted = append(f.adjusted, delta)
	return nil
}

type fakeContainerRepo struct {
	repository.ContainerRepository
	items     map[uuid.UUID]*entity.ContainerItem
	sellCalls int
}

func (f *fakeContainerRepo) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.ContainerItem, error) {
	var out []entity.ContainerItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeContainerRepo) AtomicSellBatch(ctx context.Context, sells map[uuid.UUID]int) ([]uuid.UUID, error) {
	f.sellCalls++
	var failed []uuid.UUID
	for id, qty := range sells {
		item := f.items[id]
		if item.RemainingQty() < qty {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, qty := range sells {
		f.items[id].SoldQty += qty
	}
	return nil, nil
}

func (f *fakeContainerRepo) AtomicUnsellBatch(ctx context.Context, unsells map[uuid.UUID]int) error {
	for id, qty := range unsells {
		if item, ok := f.items[id]; ok {
			item.SoldQty -= qty
			if item.SoldQty < 0 {
				item.SoldQty = 0
			}
		}
	}
	return nil
}

type fakeSaleRepo struct {
	repository.SaleRepository
	created []*entity.Sale
	deleted []uuid.UUID
	byID    map[uuid.UUID]*entity.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	f.created = append(f.created, sale)
	return nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.byID[id], nil
}

type fakeSaleItemRepo struct {
	repository.SaleItemRepository
	created []entity.SaleItem
}

func (f *fakeSaleItemRepo) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	f.created = append(f.created, items...)
	return nil
}

func newCheckoutFixture(t *testing.T, available int) (*SaleService, *fakeCustomerRepo, *fakeContainerRepo, *fakeSaleRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	customerID := uuid.New()
	itemID := uuid.New()

	customers := &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{
		customerID: {ID: customerID, Name: "Ama Mensah"},
	}}
	containers := &fakeContainerRepo{items: map[uuid.UUID]*entity.ContainerItem{
		itemID: {ID: itemID, ItemName: "Rice 25kg", ReceivedQty: available, UnitPrice: 500},
	}}
	sales := &fakeSaleRepo{byID: map[uuid.UUID]*entity.Sale{}}
	saleItems := &fakeSaleItemRepo{}

	svc := NewSaleService(sales, saleItems, containers, customers)
	return svc, customers, containers, sales, customerID, itemID
}

func TestCreateSaleRequiresCustomer(t *testing.T) {
	svc, _, containers, sales, _, itemID := newCheckoutFixture(t, 10)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: uuid.Nil,
		SourceType: enum.SaleSourceContainer,
		SourceID:   uuid.New(),
		SaleType:   enum.SaleTypeCash,
		Lines:      []SaleLineInput{{ContainerItemID: itemID, Quantity: 1}},
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	// Rejected before any stock or persistence side effects.
	assert.Zero(t, containers.sellCalls)
	assert.Empty(t, sales.created)
}

func TestCreateSaleCashSuccess(t *testing.T) {
	svc, customers, containers, sales, customerID, itemID := newCheckoutFixture(t, 10)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     uuid.New(),
		CustomerID: customerID,
		SourceType: enum.SaleSourceContainer,
		SourceID:   uuid.New(),
		SaleType:   enum.SaleTypeCash,
		Lines:      []SaleLineInput{{ContainerItemID: itemID, Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1500), sale.TotalAmount)
	assert.NotEmpty(t, sale.InvoiceNo)
	assert.Len(t, sale.Items, 1)
	assert.Equal(t, 3, containers.items[itemID].SoldQty)
	// Cash sale must not move the balance.
	assert.Empty(t, customers.adjusted)
	assert.Len(t, sales.created, 1)
}

func TestCreateSaleCreditAdjustsBalance(t *testing.T) {
	svc, customers, _, _, customerID, itemID := newCheckoutFixture(t, 10)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     uuid.New(),
		CustomerID: customerID,
		SourceType: enum.SaleSourceContainer,
		SourceID:   uuid.New(),
		SaleType:   enum.SaleTypeCredit,
		Lines:      []SaleLineInput{{ContainerItemID: itemID, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1000), sale.TotalAmount)
	assert.Equal(t, int64(1000), customers.customers[customerID].Balance)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	svc, customers, containers, sales, customerID, itemID := newCheckoutFixture(t, 2)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     uuid.New(),
		CustomerID: customerID,
		SourceType: enum.SaleSourceContainer,
		SourceID:   uuid.New(),
		SaleType:   enum.SaleTypeCash,
		Lines:      []SaleLineInput{{ContainerItemID: itemID, Quantity: 5}},
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Rice 25kg")
	// Failure leaves everything untouched and retryable.
	assert.Zero(t, containers.items[itemID].SoldQty)
	assert.Empty(t, sales.created)
	assert.Empty(t, customers.adjusted)
}

func TestCreateSalePriceOverrideRequiresAdmin(t *testing.T) {
	svc, _, _, _, customerID, itemID := newCheckoutFixture(t, 10)
	override := 9.50

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     uuid.New(),
		IsAdmin:    false,
		CustomerID: customerID,
		SourceType: enum.SaleSourceContainer,
		SourceID:   uuid.New(),
		SaleType:   enum.SaleTypeCash,
		Lines:      []SaleLineInput{{ContainerItemID: itemID, Quantity: 1, UnitPrice: &override}},
	})

	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestCreateSaleAdminPriceOverride(t *testing.T) {
	svc, _, _, _, customerID, itemID := newCheckoutFixture(t, 10)
	override := 9.50

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     uuid.New(),
		IsAdmin:    true,
		CustomerID: customerID,
		SourceType: enum.SaleSourceContainer,
		SourceID:   uuid.New(),
		SaleType:   enum.SaleTypeCash,
		Lines:      []SaleLineInput{{ContainerItemID: itemID, Quantity: 2, UnitPrice: &override}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1900), sale.TotalAmount)
}

func TestDeleteSaleRestoresStockAndBalance(t *testing.T) {
	svc, customers, containers, sales, customerID, itemID := newCheckoutFixture(t, 10)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     uuid.New(),
		CustomerID: customerID,
		SourceType: enum.SaleSourceContainer,
		SourceID:   uuid.New(),
		SaleType:   enum.SaleTypeCredit,
		Lines:      []SaleLineInput{{ContainerItemID: itemID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 4, containers.items[itemID].SoldQty)
	require.Equal(t, int64(2000), customers.customers[customerID].Balance)

	sales.byID[sale.ID] = sale

	err = svc.DeleteSale(context.Background(), sale.ID)
	require.NoError(t, err)

	assert.Zero(t, containers.items[itemID].SoldQty)
	assert.Zero(t, customers.customers[customerID].Balance)
	assert.Contains(t, sales.deleted, sale.ID)
}
