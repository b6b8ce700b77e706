package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
)

type fakeStatementSaleRepo struct {
	repository.SaleRepository
	sales []entity.Sale
}

func (f *fakeStatementSaleRepo) ListByCustomerBetween(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]entity.Sale, error) {
	return f.sales, nil
}

type fakeStatementPaymentRepo struct {
	repository.PaymentRepository
	payments []entity.Payment
}

func (f *fakeStatementPaymentRepo) ListByCustomerBetween(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]entity.Payment, error) {
	return f.payments, nil
}

func TestGetStatementRunningBalance(t *testing.T) {
	customerID := uuid.New()
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 10, 0, 0, 0, time.UTC)
	}

	customers := &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{
		customerID: {ID: customerID, Name: "Kofi Asante"},
	}}
	// Payments arrive out of order; the statement must sort by date.
	sales := &fakeStatementSaleRepo{sales: []entity.Sale{
		{ID: uuid.New(), CreatedAt: day(1), InvoiceNo: "INV-1", TotalAmount: 10000},
		{ID: uuid.New(), CreatedAt: day(3), InvoiceNo: "INV-2", TotalAmount: 2500},
	}}
	payments := &fakeStatementPaymentRepo{payments: []entity.Payment{
		{ID: uuid.New(), CreatedAt: day(2), Amount: 4000, Method: enum.PaymentMethodCash},
	}}

	svc := NewStatementService(customers, sales, payments)

	stmt, err := svc.GetStatement(context.Background(), customerID, nil, nil)
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 3)
	assert.Equal(t, 100.0, stmt.Rows[0].Balance)
	assert.Equal(t, 60.0, stmt.Rows[1].Balance)
	assert.Equal(t, 85.0, stmt.Rows[2].Balance)
	assert.Equal(t, 85.0, stmt.ClosingBalance)

	assert.Equal(t, 100.0, stmt.Rows[0].Debit)
	assert.Equal(t, 40.0, stmt.Rows[1].Credit)
	assert.Equal(t, "Sale INV-1", stmt.Rows[0].Description)
	assert.Contains(t, stmt.Rows[1].Description, "CASH")
}

func TestGetStatementEmpty(t *testing.T) {
	customerID := uuid.New()
	customers := &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{
		customerID: {ID: customerID, Name: "Yaw"},
	}}

	svc := NewStatementService(customers, &fakeStatementSaleRepo{}, &fakeStatementPaymentRepo{})

	stmt, err := svc.GetStatement(context.Background(), customerID, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, stmt.Rows)
	assert.Zero(t, stmt.ClosingBalance)
}

func TestGetStatementUnknownCustomer(t *testing.T) {
	customers := &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}}
	svc := NewStatementService(customers, &fakeStatementSaleRepo{}, &fakeStatementPaymentRepo{})

	_, err := svc.GetStatement(context.Background(), uuid.New(), nil, nil)
	assert.Error(t, err)
}
