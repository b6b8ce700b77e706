package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/presentation/http/dto/response"
)

// ContainerHandler handles container endpoints
type ContainerHandler struct {
	containerService *service.ContainerService
}

// NewContainerHandler creates a new container handler
func NewContainerHandler(containerService *service.ContainerService) *ContainerHandler {
	return &ContainerHandler{containerService: containerService}
}

type containerItemRequest struct {
	ItemName  string  `json:"itemName" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" binding:"required,gt=0"`
}

type createContainerRequest struct {
	ContainerNo string                 `json:"containerNo" binding:"required"`
	SupplierID  uuid.UUID              `json:"supplierId" binding:"required"`
	ArrivalDate time.Time              `json:"arrivalDate" binding:"required"`
	Items       []containerItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create handles POST /containers
func (h *ContainerHandler) Create(c *gin.Context) {
	var req createContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.ContainerItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.ContainerItemInput{
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	container, err := h.containerService.CreateContainer(c.Request.Context(), &service.CreateContainerInput{
		ContainerNo: req.ContainerNo,
		SupplierID:  req.SupplierID,
		ArrivalDate: req.ArrivalDate,
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Container created", container)
}

// List handles GET /containers
func (h *ContainerHandler) List(c *gin.Context) {
	containers, err := h.containerService.ListContainers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Containers retrieved", containers)
}

// Get handles GET /containers/:id
func (h *ContainerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	container, err := h.containerService.GetContainerWithItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Container retrieved", container)
}

// Delete handles DELETE /containers/:id
func (h *ContainerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	if err := h.containerService.DeleteContainer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Container deleted", nil)
}

// MarkReceived handles PUT /containers/:id/mark-received
func (h *ContainerHandler) MarkReceived(c *gin.Context) {
	h.transition(c, h.containerService.MarkReceived, "Container marked as received")
}

// MarkIncomplete handles PUT /containers/:id/mark-incomplete
func (h *ContainerHandler) MarkIncomplete(c *gin.Context) {
	h.transition(c, h.containerService.MarkIncomplete, "Container reopened")
}

// MarkDone handles PUT /containers/:id/mark-done
func (h *ContainerHandler) MarkDone(c *gin.Context) {
	h.transition(c, h.containerService.MarkDone, "Container completed")
}

func (h *ContainerHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*entity.Container, error), msg string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	container, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, msg, container)
}

type offloadItemRequest struct {
	ItemID      uuid.UUID `json:"itemId" binding:"required"`
	ReceivedQty int       `json:"receivedQty" binding:"min=0"`
}

type offloadRequest struct {
	Items []offloadItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Offload handles POST /containers/:id/offload, confirming the received
// quantities and moving the container to Received.
func (h *ContainerHandler) Offload(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	var req offloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.OffloadItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OffloadItemInput{
			ItemID:      it.ItemID,
			ReceivedQty: it.ReceivedQty,
		})
	}

	container, err := h.containerService.Offload(c.Request.Context(), id, items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Container offloaded", container)
}

// ListItems handles GET /containers/:id/items
func (h *ContainerHandler) ListItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	container, err := h.containerService.GetContainerWithItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Container items retrieved", container.Items)
}

// ListItemsWithSales handles GET /containers/:id/items/withsales
func (h *ContainerHandler) ListItemsWithSales(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	items, err := h.containerService.ListItemsWithSales(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Container items retrieved", items)
}

// Summary handles GET /containers/:id/summary
func (h *ContainerHandler) Summary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	summary, err := h.containerService.Summary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Container summary retrieved", summary)
}
