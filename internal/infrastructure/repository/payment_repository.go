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

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Payment{}, "id = ?", id).Error
}

func (r *paymentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// ListByCustomerBetween returns a customer's payments inside a date window,
// oldest first, for statement generation.
func (r *paymentRepository) ListByCustomerBetween(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment

	query := r.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	err := query.Order("created_at ASC").Find(&payments).Error
	return payments, err
}
