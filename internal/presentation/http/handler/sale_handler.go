package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/internal/presentation/http/dto/response"
	"github.com/petros-hq/petros-api/pkg/pagination"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	saleService    *service.SaleService
	printerService *service.PrinterService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, printerService *service.PrinterService) *SaleHandler {
	return &SaleHandler{
		saleService:    saleService,
		printerService: printerService,
	}
}

type saleLineRequest struct {
	ContainerItemID uuid.UUID `json:"containerItemId" binding:"required"`
	Quantity        int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice       *float64  `json:"unitPrice"`
}

type createSaleRequest struct {
	CustomerID uuid.UUID         `json:"customerId" binding:"required"`
	SourceType string            `json:"sourceType" binding:"required"`
	SourceID   uuid.UUID         `json:"sourceId" binding:"required"`
	SaleType   string            `json:"saleType" binding:"required"`
	Lines      []saleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Create handles POST /sales. The whole checkout either lands or leaves
// stock and balances untouched.
func (h *SaleHandler) Create(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	sourceType := enum.SaleSource(req.SourceType)
	if !sourceType.Valid() {
		response.BadRequest(c, "Invalid source type")
		return
	}
	saleType := enum.SaleType(req.SaleType)
	if !saleType.Valid() {
		response.BadRequest(c, "Invalid sale type")
		return
	}

	lines := make([]service.SaleLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.SaleLineInput{
			ContainerItemID: l.ContainerItemID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
		})
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		UserID:     *userID,
		IsAdmin:    IsAdmin(c),
		CustomerID: req.CustomerID,
		SourceType: sourceType,
		SourceID:   req.SourceID,
		SaleType:   saleType,
		Lines:      lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded", sale)
}

// List handles GET /sales with optional filters and sort parameters.
func (h *SaleHandler) List(c *gin.Context) {
	var pageParams pagination.Params
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pageParams,
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}

	if raw := c.Query("customerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID filter")
			return
		}
		params.CustomerID = &id
	}
	if raw := c.Query("supplierId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID filter")
			return
		}
		params.SupplierID = &id
	}

	if err := bindDateRange(c, params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sales, total, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pageParams.Normalize()
	meta := pagination.NewMeta(pageParams, total)
	response.SuccessWithPagination(c, 200, "Sales retrieved", sales, meta)
}

func bindDateRange(c *gin.Context, params *repository.SaleFilterParams) error {
	start, err := parseDateQuery(c, "startDate")
	if err != nil {
		return errors.New("Invalid startDate, expected YYYY-MM-DD")
	}
	params.StartDate = start

	end, err := parseDateQuery(c, "endDate")
	if err != nil {
		return errors.New("Invalid endDate, expected YYYY-MM-DD")
	}
	if end != nil {
		// End date is inclusive of the whole day.
		e := end.Add(24*time.Hour - time.Nanosecond)
		end = &e
	}
	params.EndDate = end
	return nil
}

// ListByCustomer handles GET /sales/customer/:id
func (h *SaleHandler) ListByCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	sales, err := h.saleService.ListSalesByCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved", sales)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}

// Delete handles DELETE /sales/:id, restoring stock and reversing any
// credit balance movement.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted", nil)
}

// GetTotal handles GET /sales/:id/total
func (h *SaleHandler) GetTotal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	total, err := h.saleService.GetSaleTotal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale total retrieved", gin.H{"total": total})
}

type updateSaleTotalRequest struct {
	Total float64 `json:"total" binding:"required,gt=0"`
}

// UpdateTotal handles PUT /sales/:id/total. Admin only; a credit sale's
// customer balance is adjusted by the difference.
func (h *SaleHandler) UpdateTotal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req updateSaleTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.saleService.UpdateSaleTotal(c.Request.Context(), id, req.Total, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale total updated", sale)
}

// Print handles POST /sales/:id/print, sending the receipt to the
// configured printer and returning the receipt content.
func (h *SaleHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.printerService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", receipt)
}

// Receipt handles GET /sales/:id/receipt, returning the receipt content
// without printing it.
func (h *SaleHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.printerService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved", receipt)
}
