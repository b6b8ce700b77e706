package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/internal/presentation/http/dto/response"
	"github.com/petros-hq/petros-api/pkg/export"
)

// ReportHandler handles report endpoints. Every report supports a
// ?format=csv|xlsx|pdf query parameter; without it the table is returned
// as JSON.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Container handles GET /reports/container/:id
func (h *ReportHandler) Container(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid container ID")
		return
	}

	table, err := h.reportService.ContainerReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respond(c, table, "container-report")
}

// Supplier handles GET /reports/supplier/:id
func (h *ReportHandler) Supplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	table, err := h.reportService.SupplierReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respond(c, table, "supplier-report")
}

// DetailedSales handles GET /reports/detailed with the same filters as the
// sales listing.
func (h *ReportHandler) DetailedSales(c *gin.Context) {
	params := &repository.SaleFilterParams{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
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

	table, err := h.reportService.DetailedSalesReport(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respond(c, table, "sales-report")
}

// SalesSummaryBySupplier handles GET /reports/salessummary/supplier. The
// range defaults to the current month when from/to are omitted.
func (h *ReportHandler) SalesSummaryBySupplier(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if t, err := parseDateQuery(c, "startDate"); err != nil {
		response.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
		return
	} else if t != nil {
		from = *t
	}
	if t, err := parseDateQuery(c, "endDate"); err != nil {
		response.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
		return
	} else if t != nil {
		to = t.Add(24*time.Hour - time.Nanosecond)
	}

	table, err := h.reportService.SalesSummaryBySupplier(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respond(c, table, "supplier-sales-summary")
}

// Inventory handles GET /reports/inventory
func (h *ReportHandler) Inventory(c *gin.Context) {
	table, err := h.reportService.InventoryReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respond(c, table, "inventory-report")
}

func (h *ReportHandler) respond(c *gin.Context, table *export.Table, name string) {
	format := c.Query("format")
	if format == "" || format == "json" {
		response.OK(c, "Report generated", table)
		return
	}

	rendered, err := h.reportService.Render(c.Request.Context(), table, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.%s", name, time.Now().Format("20060102"), rendered.Extension)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, rendered.ContentType, rendered.Data)
}
