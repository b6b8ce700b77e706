package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
)

// ContainerService handles container intake and lifecycle operations
type ContainerService struct {
	containerRepo repository.ContainerRepository
	supplierRepo  repository.SupplierRepository
}

// NewContainerService creates a new container service
func NewContainerService(containerRepo repository.ContainerRepository, supplierRepo repository.SupplierRepository) *ContainerService {
	return &ContainerService{
		containerRepo: containerRepo,
		supplierRepo:  supplierRepo,
	}
}

// ContainerItemInput is one manifest line at container registration
type ContainerItemInput struct {
	ItemName  string
	Quantity  int
	UnitPrice float64
}

// CreateContainerInput represents the create container input
type CreateContainerInput struct {
	ContainerNo string
	SupplierID  uuid.UUID
	ArrivalDate time.Time
	Items       []ContainerItemInput
}

// CreateContainer registers a container in Pending status. Each manifest
// line starts with ReceivedQty equal to the promised quantity; offloading
// corrects it later.
func (s *ContainerService) CreateContainer(ctx context.Context, input *CreateContainerInput) (*entity.Container, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Container needs at least one item")
	}

	container := &entity.Container{
		ContainerNo: input.ContainerNo,
		SupplierID:  input.SupplierID,
		ArrivalDate: input.ArrivalDate,
		Status:      enum.ContainerStatusPending,
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Unit price cannot be negative")
		}
		container.Items = append(container.Items, entity.ContainerItem{
			ItemName:    item.ItemName,
			Quantity:    item.Quantity,
			ReceivedQty: item.Quantity,
			UnitPrice:   int64(item.UnitPrice * 100),
		})
	}

	if err := s.containerRepo.Create(ctx, container); err != nil {
		return nil, err
	}

	return container, nil
}

// GetContainer retrieves a container with its supplier
func (s *ContainerService) GetContainer(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	container, err := s.containerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, apperror.NewNotFoundError("Container")
	}
	return container, nil
}

// GetContainerWithItems retrieves a container with its items loaded
func (s *ContainerService) GetContainerWithItems(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	container, err := s.containerRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, apperror.NewNotFoundError("Container")
	}
	return container, nil
}

// ListContainers lists all containers, newest arrival first
func (s *ContainerService) ListContainers(ctx context.Context) ([]entity.Container, error) {
	return s.containerRepo.List(ctx)
}

// ListContainersBySupplier lists a supplier's containers
func (s *ContainerService) ListContainersBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.Container, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return s.containerRepo.ListBySupplier(ctx, supplierID)
}

// DeleteContainer removes a container. Containers with recorded sales
// cannot be deleted.
func (s *ContainerService) DeleteContainer(ctx context.Context, id uuid.UUID) error {
	container, err := s.containerRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if container == nil {
		return apperror.NewNotFoundError("Container")
	}

	for _, item := range container.Items {
		if item.SoldQty > 0 {
			return apperror.NewConflictError("Container has recorded sales")
		}
	}

	return s.containerRepo.Delete(ctx, id)
}

// MarkReceived moves a Pending container to Received
func (s *ContainerService) MarkReceived(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	return s.transition(ctx, id, enum.ContainerStatusReceived)
}

// MarkIncomplete reopens a Received container back to Pending, used when
// offloading turns out to be unfinished
func (s *ContainerService) MarkIncomplete(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	return s.transition(ctx, id, enum.ContainerStatusPending)
}

// MarkDone closes a Received container
func (s *ContainerService) MarkDone(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	return s.transition(ctx, id, enum.ContainerStatusDone)
}

// transition applies a status change, rejecting anything the lifecycle
// table disallows, including re-applying the current status.
func (s *ContainerService) transition(ctx context.Context, id uuid.UUID, to enum.ContainerStatus) (*entity.Container, error) {
	container, err := s.containerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, apperror.NewNotFoundError("Container")
	}

	if !container.Status.CanTransitionTo(to) {
		return nil, apperror.NewInvalidTransitionError(container.Status.String(), to.String())
	}

	if err := s.containerRepo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}

	container.Status = to
	return container, nil
}

// OffloadItemInput is one confirmed quantity during offload
type OffloadItemInput struct {
	ItemID      uuid.UUID
	ReceivedQty int
}

// Offload records the confirmed received quantities for a container and
// moves it to Received. Only Pending containers can be offloaded.
func (s *ContainerService) Offload(ctx context.Context, id uuid.UUID, items []OffloadItemInput) (*entity.Container, error) {
	container, err := s.containerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, apperror.NewNotFoundError("Container")
	}

	if container.Status != enum.ContainerStatusPending {
		return nil, apperror.NewInvalidTransitionError(container.Status.String(), enum.ContainerStatusReceived.String())
	}

	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("Offload needs at least one item")
	}

	updates := make([]repository.ReceivedQtyUpdate, 0, len(items))
	for _, item := range items {
		if item.ReceivedQty < 0 {
			return nil, apperror.NewBadRequestError("Received quantity cannot be negative")
		}
		updates = append(updates, repository.ReceivedQtyUpdate{
			ItemID:      item.ItemID,
			ReceivedQty: item.ReceivedQty,
		})
	}

	if err := s.containerRepo.UpdateReceivedQuantities(ctx, id, updates); err != nil {
		return nil, err
	}

	if err := s.containerRepo.UpdateStatus(ctx, id, enum.ContainerStatusReceived); err != nil {
		return nil, err
	}

	return s.containerRepo.GetWithItems(ctx, id)
}

// ListItemsWithSales returns one container's stock lines with container and
// supplier identity attached
func (s *ContainerService) ListItemsWithSales(ctx context.Context, containerID uuid.UUID) ([]repository.ContainerItemSales, error) {
	container, err := s.containerRepo.GetByID(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, apperror.NewNotFoundError("Container")
	}
	return s.containerRepo.ListItemsWithSales(ctx, containerID)
}

// ListItemsBySupplier returns the sellable catalog across a supplier's
// offloaded containers
func (s *ContainerService) ListItemsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]repository.ContainerItemSales, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return s.containerRepo.ListItemsBySupplier(ctx, supplierID)
}

// ContainerSummary aggregates one container's stock position.
type ContainerSummary struct {
	ContainerID    uuid.UUID `json:"containerId"`
	ContainerNo    string    `json:"containerNo"`
	Status         string    `json:"status"`
	TotalItems     int       `json:"totalItems"`
	TotalReceived  int       `json:"totalReceived"`
	TotalSold      int       `json:"totalSold"`
	TotalRemaining int       `json:"totalRemaining"`
	StockValue     float64   `json:"stockValue"`
	SoldValue      float64   `json:"soldValue"`
}

// Summary computes stock and value totals for one container
func (s *ContainerService) Summary(ctx context.Context, id uuid.UUID) (*ContainerSummary, error) {
	container, err := s.containerRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, apperror.NewNotFoundError("Container")
	}

	summary := &ContainerSummary{
		ContainerID: container.ID,
		ContainerNo: container.ContainerNo,
		Status:      container.Status.String(),
		TotalItems:  len(container.Items),
	}

	var stockValue, soldValue int64
	for _, item := range container.Items {
		summary.TotalReceived += item.ReceivedQty
		summary.TotalSold += item.SoldQty
		summary.TotalRemaining += item.RemainingQty()
		stockValue += int64(item.RemainingQty()) * item.UnitPrice
		soldValue += int64(item.SoldQty) * item.UnitPrice
	}
	summary.StockValue = float64(stockValue) / 100
	summary.SoldValue = float64(soldValue) / 100

	return summary, nil
}
