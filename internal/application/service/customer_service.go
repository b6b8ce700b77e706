package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
	"github.com/petros-hq/petros-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name  string
	Phone *string
}

// CreateCustomer creates a new customer with a zero balance
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:  input.Name,
		Phone: input.Phone,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with page-based pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.Params, search string) ([]entity.Customer, pagination.Meta, error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return customers, pagination.NewMeta(*params, total), nil
}

// ListCustomersWithCursor lists customers with cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, pagination.CursorMeta, error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, pagination.CursorMeta{}, err
	}

	meta := pagination.CursorMeta{PerPage: params.Limit}
	if len(customers) > params.Limit {
		customers = customers[:params.Limit]
		meta.HasNext = true

		last := customers[len(customers)-1]
		cursor := pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
		token, err := cursor.Encode()
		if err != nil {
			return nil, pagination.CursorMeta{}, err
		}
		meta.NextCursor = token
	}

	return customers, meta, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID    uuid.UUID
	Name  *string
	Phone *string
}

// UpdateCustomer updates a customer's identity fields. Balance is never
// set directly; it only moves through sales and payments.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer. Customers with an outstanding balance
// cannot be deleted.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if customer.Balance != 0 {
		return apperror.NewConflictError("Customer has an outstanding balance")
	}

	return s.customerRepo.Delete(ctx, id)
}
