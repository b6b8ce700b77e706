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

type fakeLifecycleContainerRepo struct {
	repository.ContainerRepository
	containers map[uuid.UUID]*entity.Container
}

func (f *fakeLifecycleContainerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	return f.containers[id], nil
}

func (f *fakeLifecycleContainerRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ContainerStatus) error {
	f.containers[id].Status = status
	return nil
}

func newLifecycleFixture(status enum.ContainerStatus) (*ContainerService, uuid.UUID) {
	id := uuid.New()
	repo := &fakeLifecycleContainerRepo{containers: map[uuid.UUID]*entity.Container{
		id: {ID: id, ContainerNo: "CNT-001", Status: status},
	}}
	return NewContainerService(repo, nil), id
}

func TestMarkReceivedFromPending(t *testing.T) {
	svc, id := newLifecycleFixture(enum.ContainerStatusPending)

	container, err := svc.MarkReceived(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, enum.ContainerStatusReceived, container.Status)
}

func TestMarkIncompleteReopensReceived(t *testing.T) {
	svc, id := newLifecycleFixture(enum.ContainerStatusReceived)

	container, err := svc.MarkIncomplete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, enum.ContainerStatusPending, container.Status)
}

func TestMarkDoneRequiresReceived(t *testing.T) {
	svc, id := newLifecycleFixture(enum.ContainerStatusPending)

	_, err := svc.MarkDone(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestReapplyingCurrentStatusRejected(t *testing.T) {
	svc, id := newLifecycleFixture(enum.ContainerStatusReceived)

	_, err := svc.MarkReceived(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func (f *fakeLifecycleContainerRepo) UpdateReceivedQuantities(ctx context.Context, containerID uuid.UUID, updates []repository.ReceivedQtyUpdate) error {
	for _, u := range updates {
		for _, item := range f.containers[containerID].Items {
			if item.ID == u.ItemID && u.ReceivedQty < item.SoldQty {
				return apperror.NewConflictError("Received quantity cannot be below the quantity already sold")
			}
		}
	}
	return nil
}

func (f *fakeLifecycleContainerRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	return f.containers[id], nil
}

func TestOffloadBelowSoldQuantityIsConflict(t *testing.T) {
	svc, id := newLifecycleFixture(enum.ContainerStatusPending)
	itemID := uuid.New()
	repo := containerRepoOf(svc)
	repo.containers[id].Items = []entity.ContainerItem{
		{ID: itemID, ItemName: "Rice 25kg", Quantity: 100, ReceivedQty: 100, SoldQty: 40},
	}

	_, err := svc.Offload(context.Background(), id, []OffloadItemInput{
		{ItemID: itemID, ReceivedQty: 30},
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	// A failed offload leaves the container Pending.
	assert.Equal(t, enum.ContainerStatusPending, repo.containers[id].Status)
}

func TestOffloadAtSoldQuantitySucceeds(t *testing.T) {
	svc, id := newLifecycleFixture(enum.ContainerStatusPending)
	itemID := uuid.New()
	repo := containerRepoOf(svc)
	repo.containers[id].Items = []entity.ContainerItem{
		{ID: itemID, ItemName: "Rice 25kg", Quantity: 100, ReceivedQty: 100, SoldQty: 40},
	}

	container, err := svc.Offload(context.Background(), id, []OffloadItemInput{
		{ItemID: itemID, ReceivedQty: 40},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ContainerStatusReceived, container.Status)
}

func containerRepoOf(svc *ContainerService) *fakeLifecycleContainerRepo {
	return svc.containerRepo.(*fakeLifecycleContainerRepo)
}

func TestDoneIsTerminal(t *testing.T) {
	svc, id := newLifecycleFixture(enum.ContainerStatusDone)

	_, err := svc.MarkIncomplete(context.Background(), id)
	assert.Error(t, err)

	_, err = svc.MarkReceived(context.Background(), id)
	assert.Error(t, err)
}

func TestUnknownContainerNotFound(t *testing.T) {
	svc := NewContainerService(&fakeLifecycleContainerRepo{containers: map[uuid.UUID]*entity.Container{}}, nil)

	_, err := svc.MarkReceived(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
