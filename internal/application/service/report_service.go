package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/config"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
	"github.com/petros-hq/petros-api/pkg/export"
	"github.com/petros-hq/petros-api/pkg/pdf"
)

// ReportService builds tabular reports and renders them as CSV, Excel or PDF
type ReportService struct {
	containerRepo repository.ContainerRepository
	supplierRepo  repository.SupplierRepository
	saleRepo      repository.SaleRepository
	analyticsRepo repository.AnalyticsRepository
	pdfClient     *pdf.Client
	business      config.BusinessConfig
}

// NewReportService creates a new report service. pdfClient may be nil when
// PDF export is disabled.
func NewReportService(
	containerRepo repository.ContainerRepository,
	supplierRepo repository.SupplierRepository,
	saleRepo repository.SaleRepository,
	analyticsRepo repository.AnalyticsRepository,
	pdfClient *pdf.Client,
	business config.BusinessConfig,
) *ReportService {
	return &ReportService{
		containerRepo: containerRepo,
		supplierRepo:  supplierRepo,
		saleRepo:      saleRepo,
		analyticsRepo: analyticsRepo,
		pdfClient:     pdfClient,
		business:      business,
	}
}

func money(minor int64) string {
	return fmt.Sprintf("%.2f", float64(minor)/100)
}

// ContainerReport tabulates one container's stock position per item.
func (s *ReportService) ContainerReport(ctx context.Context, containerID uuid.UUID) (*export.Table, error) {
	container, err := s.containerRepo.GetWithItems(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, apperror.NewNotFoundError("Container")
	}

	table := &export.Table{
		Title:   fmt.Sprintf("Container %s Report", container.ContainerNo),
		Headers: []string{"Item", "Manifest Qty", "Received", "Sold", "Remaining", "Unit Price", "Sold Value"},
	}
	for _, item := range container.Items {
		table.Rows = append(table.Rows, []string{
			item.ItemName,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.ReceivedQty),
			fmt.Sprintf("%d", item.SoldQty),
			fmt.Sprintf("%d", item.RemainingQty()),
			money(item.UnitPrice),
			money(int64(item.SoldQty) * item.UnitPrice),
		})
	}
	return table, nil
}

// SupplierReport tabulates a supplier's containers with their stock totals.
func (s *ReportService) SupplierReport(ctx context.Context, supplierID uuid.UUID) (*export.Table, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	containers, err := s.containerRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:   fmt.Sprintf("Supplier %s Report", supplier.SupplierName),
		Headers: []string{"Container", "Arrival", "Status", "Received", "Sold", "Remaining", "Sold Value"},
	}
	for _, container := range containers {
		items, err := s.containerRepo.ListItems(ctx, container.ID)
		if err != nil {
			return nil, err
		}

		var received, sold, remaining int
		var soldValue int64
		for _, item := range items {
			received += item.ReceivedQty
			sold += item.SoldQty
			remaining += item.RemainingQty()
			soldValue += int64(item.SoldQty) * item.UnitPrice
		}

		table.Rows = append(table.Rows, []string{
			container.ContainerNo,
			container.ArrivalDate.Format("2006-01-02"),
			container.Status.String(),
			fmt.Sprintf("%d", received),
			fmt.Sprintf("%d", sold),
			fmt.Sprintf("%d", remaining),
			money(soldValue),
		})
	}
	return table, nil
}

// DetailedSalesReport tabulates individual sales inside the filter window.
func (s *ReportService) DetailedSalesReport(ctx context.Context, params *repository.SaleFilterParams) (*export.Table, error) {
	sales, _, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:   "Detailed Sales Report",
		Headers: []string{"Invoice", "Date", "Customer", "Type", "Items", "Total"},
	}
	for _, sale := range sales {
		table.Rows = append(table.Rows, []string{
			sale.InvoiceNo,
			sale.CreatedAt.Format("2006-01-02 15:04"),
			sale.Customer.Name,
			sale.SaleType.String(),
			fmt.Sprintf("%d", len(sale.Items)),
			money(sale.TotalAmount),
		})
	}
	return table, nil
}

// SalesSummaryBySupplier tabulates sale totals per supplier in a window.
func (s *ReportService) SalesSummaryBySupplier(ctx context.Context, from, to time.Time) (*export.Table, error) {
	rows, err := s.analyticsRepo.GetSalesBySupplier(ctx, from, to)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:   "Sales Summary by Supplier",
		Headers: []string{"Supplier", "Quantity Sold", "Total Sales"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.SupplierName,
			fmt.Sprintf("%d", row.QuantitySold),
			fmt.Sprintf("%.2f", row.TotalSales),
		})
	}
	return table, nil
}

// InventoryReport tabulates the stock position of every supplier item.
func (s *ReportService) InventoryReport(ctx context.Context) (*export.Table, error) {
	items, err := s.supplierRepo.ListItemsWithSales(ctx)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:   "Inventory Report",
		Headers: []string{"Supplier", "Item", "Received", "Sold", "Remaining", "Price"},
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []string{
			item.SupplierName,
			item.ItemName,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.SoldQty),
			fmt.Sprintf("%d", item.RemainingQty),
			fmt.Sprintf("%.2f", item.Price),
		})
	}
	return table, nil
}

// RenderedReport is a serialized report ready for an HTTP response.
type RenderedReport struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Render serializes a report table to the requested format: "csv", "xlsx"
// or "pdf".
func (s *ReportService) Render(ctx context.Context, table *export.Table, format string) (*RenderedReport, error) {
	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, *table); err != nil {
			return nil, err
		}
		return &RenderedReport{
			Data:        buf.Bytes(),
			ContentType: "text/csv",
			Extension:   "csv",
		}, nil

	case "xlsx", "excel":
		var buf bytes.Buffer
		if err := export.WriteExcel(&buf, *table); err != nil {
			return nil, err
		}
		return &RenderedReport{
			Data:        buf.Bytes(),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Extension:   "xlsx",
		}, nil

	case "pdf":
		if s.pdfClient == nil {
			return nil, apperror.NewBadRequestError("PDF export is not enabled")
		}
		html, err := s.reportHTML(table)
		if err != nil {
			return nil, err
		}
		data, err := s.pdfClient.RenderHTML(ctx, html)
		if err != nil {
			return nil, err
		}
		return &RenderedReport{
			Data:        data,
			ContentType: "application/pdf",
			Extension:   "pdf",
		}, nil

	default:
		return nil, apperror.NewBadRequestError("Unknown report format: " + format)
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; }
h1 { font-size: 18px; }
.meta { color: #555; font-size: 11px; margin-bottom: 16px; }
table { border-collapse: collapse; width: 100%; font-size: 12px; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">{{.Business}} &middot; Generated {{.Generated}}</div>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</body>
</html>`))

func (s *ReportService) reportHTML(table *export.Table) (string, error) {
	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, map[string]interface{}{
		"Title":     table.Title,
		"Business":  s.business.Name,
		"Generated": time.Now().Format("2006-01-02 15:04"),
		"Headers":   table.Headers,
		"Rows":      table.Rows,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
