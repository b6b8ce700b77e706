package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/presentation/http/dto/response"
)

// SupplierHandler handles supplier and supplier catalog endpoints
type SupplierHandler struct {
	supplierService  *service.SupplierService
	containerService *service.ContainerService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *service.SupplierService, containerService *service.ContainerService) *SupplierHandler {
	return &SupplierHandler{
		supplierService:  supplierService,
		containerService: containerService,
	}
}

type createSupplierRequest struct {
	SupplierName string  `json:"supplierName" binding:"required"`
	Contact      *string `json:"contact"`
	Country      *string `json:"country"`
}

// Create handles POST /suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req createSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), &service.CreateSupplierInput{
		SupplierName: req.SupplierName,
		Contact:      req.Contact,
		Country:      req.Country,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created", supplier)
}

// List handles GET /suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Suppliers retrieved", suppliers)
}

// Get handles GET /suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetSupplierWithItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved", supplier)
}

type updateSupplierRequest struct {
	SupplierName *string `json:"supplierName"`
	Contact      *string `json:"contact"`
	Country      *string `json:"country"`
}

// Update handles PUT /suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req updateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), &service.UpdateSupplierInput{
		ID:           id,
		SupplierName: req.SupplierName,
		Contact:      req.Contact,
		Country:      req.Country,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated", supplier)
}

// Delete handles DELETE /suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier deleted", nil)
}

type createSupplierItemRequest struct {
	ItemName string  `json:"itemName" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// CreateItem handles POST /suppliers/:id/items
func (h *SupplierHandler) CreateItem(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req createSupplierItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.supplierService.CreateSupplierItem(c.Request.Context(), &service.CreateSupplierItemInput{
		SupplierID: supplierID,
		ItemName:   req.ItemName,
		Price:      req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier item created", item)
}

// ListItems handles GET /suppliers/:id/items
func (h *SupplierHandler) ListItems(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	items, err := h.supplierService.ListSupplierItems(c.Request.Context(), supplierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier items retrieved", items)
}

type updateSupplierItemRequest struct {
	ItemName *string  `json:"itemName"`
	Price    *float64 `json:"price"`
}

// UpdateItem handles PUT /suppliers/items/:id
func (h *SupplierHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req updateSupplierItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.supplierService.UpdateSupplierItem(c.Request.Context(), &service.UpdateSupplierItemInput{
		ID:       id,
		ItemName: req.ItemName,
		Price:    req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier item updated", item)
}

// DeleteItem handles DELETE /suppliers/items/:id
func (h *SupplierHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.supplierService.DeleteSupplierItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier item deleted", nil)
}

// ListItemsWithSales handles GET /suppliers/items/withsales, returning every
// supplier catalog item joined with its lifetime sales figures.
func (h *SupplierHandler) ListItemsWithSales(c *gin.Context) {
	items, err := h.supplierService.ListItemsWithSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier items retrieved", items)
}

// ListContainers handles GET /suppliers/:id/containers
func (h *SupplierHandler) ListContainers(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	containers, err := h.containerService.ListContainersBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Containers retrieved", containers)
}

// ListStockItems handles GET /sales/supplier/:id/items, the sellable
// container lines for a supplier with availability figures.
func (h *SupplierHandler) ListStockItems(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	items, err := h.containerService.ListItemsBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock items retrieved", items)
}
