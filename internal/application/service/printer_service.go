package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/config"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
	"github.com/petros-hq/petros-api/pkg/printer"
)

// PrinterService formats and prints sale receipts on the configured
// thermal printer
type PrinterService struct {
	printer  printer.Printer
	saleRepo repository.SaleRepository
	width    int
	business config.BusinessConfig
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, saleRepo repository.SaleRepository, cfg config.PrinterConfig, business config.BusinessConfig) *PrinterService {
	return &PrinterService{
		printer:  p,
		saleRepo: saleRepo,
		width:    cfg.Width,
		business: business,
	}
}

// BuildReceipt assembles the printable view of a sale.
func (s *PrinterService) BuildReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BusinessName: s.business.Name,
			Address:      s.business.Address,
			Phone:        s.business.Phone,
		},
		InvoiceNo: sale.InvoiceNo,
		Date:      sale.CreatedAt.Format("2006-01-02 15:04"),
		Customer:  sale.Customer.Name,
		SaleType:  sale.SaleType.String(),
		Total:     sale.GetTotalDecimal(),
		Currency:  s.business.Currency,
	}

	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.Total) / 100,
		})
	}

	return receipt, nil
}

// FormatReceipt renders a receipt as an ESC/POS byte stream.
func (s *PrinterService) FormatReceipt(receipt *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(receipt.Header.BusinessName).
		SetFontSize(printer.FontNormal)

	if receipt.Header.Address != "" {
		doc.Text(receipt.Header.Address)
	}
	if receipt.Header.Phone != "" {
		doc.Text(receipt.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Invoice", receipt.InvoiceNo).
		KeyValue("Date", receipt.Date).
		KeyValue("Customer", receipt.Customer).
		KeyValue("Type", receipt.SaleType).
		Separator('-')

	for _, item := range receipt.Items {
		doc.ItemLine(item.Quantity, item.Name, printer.Money(int64(item.Total*100)))
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("TOTAL", receipt.Currency+" "+printer.Money(int64(receipt.Total*100))).
		SetBold(false).
		LineFeed().
		SetAlign(printer.AlignCenter).
		Text("Thank you for your business").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// PrintReceipt builds, formats and sends a sale receipt to the printer.
func (s *PrinterService) PrintReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(s.FormatReceipt(receipt)); err != nil {
		return nil, apperror.NewAppError(503, "Printer unavailable: "+err.Error())
	}

	return receipt, nil
}

// Status reports the configured printer's connectivity.
func (s *PrinterService) Status() printer.Status {
	return s.printer.Status()
}

// TestPrint sends a short test page to verify the printer works.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(s.business.Name).
		SetBold(false).
		Text("Printer test page").
		FeedLines(3).
		Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return apperror.NewAppError(503, "Printer unavailable: "+err.Error())
	}
	return nil
}
