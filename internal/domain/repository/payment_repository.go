package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error)
	// ListByCustomerBetween returns a customer's payments inside a date
	// window for statement generation.
	ListByCustomerBetween(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]entity.Payment, error)
}
