package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
)

// PaymentService handles customer payment recording
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, customerRepo repository.CustomerRepository) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	UserID     uuid.UUID
	CustomerID uuid.UUID
	Amount     float64
	Note       *string
	Method     enum.PaymentMethod
}

// CreatePayment records money received from a customer and reduces their
// balance by the same amount.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	method := input.Method
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	payment := &entity.Payment{
		CustomerID: input.CustomerID,
		UserID:     input.UserID,
		Amount:     int64(input.Amount * 100),
		Note:       input.Note,
		Method:     method,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.customerRepo.AdjustBalance(ctx, input.CustomerID, -payment.Amount); err != nil {
		_ = s.paymentRepo.Delete(ctx, payment.ID)
		return nil, err
	}

	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPaymentsByCustomer lists a customer's payments, newest first
func (s *PaymentService) ListPaymentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.paymentRepo.ListByCustomer(ctx, customerID)
}

// DeletePayment reverses a payment: the amount goes back onto the
// customer's balance.
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}

	if err := s.customerRepo.AdjustBalance(ctx, payment.CustomerID, payment.Amount); err != nil {
		return err
	}

	return s.paymentRepo.Delete(ctx, id)
}
