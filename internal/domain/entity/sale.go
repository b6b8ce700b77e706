package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents one checkout: a set of line items sold to a customer,
// either against a container or a supplier's general stock.
type Sale struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	SourceType  enum.SaleSource `gorm:"size:50;not null" json:"sourceType"`
	SourceID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"sourceId"`
	SaleType    enum.SaleType   `gorm:"size:50;not null" json:"saleType"`
	InvoiceNo   string          `gorm:"size:100;unique;not null" json:"invoice_no"`
	TotalAmount int64           `gorm:"default:0" json:"-"` // Stored in pesewas, excluded from JSON
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User     User       `gorm:"foreignKey:UserID" json:"-"`
	Customer Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert pesewas to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"totalAmount"`
	}{
		Alias:       Alias(s),
		TotalAmount: float64(s.TotalAmount) / 100,
	})
}

// GetTotalDecimal returns the total as a decimal
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.TotalAmount) / 100
}

// IsCredit reports whether this sale added to the customer's balance.
func (s *Sale) IsCredit() bool {
	return s.SaleType == enum.SaleTypeCredit
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. ContainerItemID links back to the stock
// line the quantity was drawn from so deleting the sale can restore it.
type SaleItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ContainerItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"container_item_id"`
	ItemName        string         `gorm:"size:255;not null" json:"itemName"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	UnitPrice       int64          `gorm:"not null" json:"-"` // Stored in pesewas, excluded from JSON
	Total           int64          `gorm:"not null" json:"-"` // Stored in pesewas, excluded from JSON
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert pesewas to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unitPrice"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
		Total:     float64(si.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
