package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/internal/domain/statement"
	"github.com/petros-hq/petros-api/pkg/apperror"
	"github.com/petros-hq/petros-api/pkg/export"
)

// StatementService builds customer account statements
type StatementService struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	paymentRepo  repository.PaymentRepository
}

// NewStatementService creates a new statement service
func NewStatementService(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
) *StatementService {
	return &StatementService{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		paymentRepo:  paymentRepo,
	}
}

// StatementRow is one rendered statement line with decimal amounts.
type StatementRow struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Debit       float64   `json:"debit"`
	Credit      float64   `json:"credit"`
	Balance     float64   `json:"balance"`
}

// Statement is a customer's ledger over an optional date window.
type Statement struct {
	Customer       *entity.Customer `json:"customer"`
	From           *time.Time       `json:"from,omitempty"`
	To             *time.Time       `json:"to,omitempty"`
	Rows           []StatementRow   `json:"rows"`
	ClosingBalance float64          `json:"closingBalance"`
}

// Table renders a statement as an exportable report table.
func (s *StatementService) Table(st *Statement) *export.Table {
	table := &export.Table{
		Title: fmt.Sprintf("Account Statement - %s", st.Customer.Name),
		Headers: []string{
			"Date", "Description", "Debit", "Credit", "Balance",
		},
	}
	for _, row := range st.Rows {
		table.Rows = append(table.Rows, []string{
			row.Date.Format("2006-01-02"),
			row.Description,
			fmt.Sprintf("%.2f", row.Debit),
			fmt.Sprintf("%.2f", row.Credit),
			fmt.Sprintf("%.2f", row.Balance),
		})
	}
	table.Rows = append(table.Rows, []string{
		"", "Closing Balance", "", "", fmt.Sprintf("%.2f", st.ClosingBalance),
	})
	return table
}

// GetStatement merges a customer's sales and payments into a chronological
// ledger with running balances.
func (s *StatementService) GetStatement(ctx context.Context, customerID uuid.UUID, from, to *time.Time) (*Statement, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	sales, err := s.saleRepo.ListByCustomerBetween(ctx, customerID, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByCustomerBetween(ctx, customerID, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]statement.Entry, 0, len(sales)+len(payments))
	for _, sale := range sales {
		entries = append(entries, statement.Entry{
			ID:          sale.ID,
			Date:        sale.CreatedAt,
			Type:        statement.EntrySale,
			Description: "Sale " + sale.InvoiceNo,
			Amount:      sale.TotalAmount,
		})
	}
	for _, payment := range payments {
		desc := "Payment (" + payment.Method.String() + ")"
		if payment.Note != nil && *payment.Note != "" {
			desc += " - " + *payment.Note
		}
		entries = append(entries, statement.Entry{
			ID:          payment.ID,
			Date:        payment.CreatedAt,
			Type:        statement.EntryPayment,
			Description: desc,
			Amount:      payment.Amount,
		})
	}

	rows := statement.Compute(entries)

	out := &Statement{
		Customer:       customer,
		From:           from,
		To:             to,
		Rows:           make([]StatementRow, 0, len(rows)),
		ClosingBalance: float64(statement.ClosingBalance(rows)) / 100,
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, StatementRow{
			ID:          row.ID,
			Date:        row.Date,
			Type:        string(row.Type),
			Description: row.Description,
			Debit:       float64(row.Debit) / 100,
			Credit:      float64(row.Credit) / 100,
			Balance:     float64(row.Balance) / 100,
		})
	}

	return out, nil
}
