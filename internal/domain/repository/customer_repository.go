package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.Params, search string) ([]entity.Customer, int64, error)
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error)
	// AdjustBalance atomically adds delta (pesewas, may be negative) to the
	// customer's balance.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta int64) error
}
