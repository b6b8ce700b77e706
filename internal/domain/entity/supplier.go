package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a company that ships containers of goods.
type Supplier struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SupplierName string         `gorm:"size:255;not null" json:"suppliername"`
	Contact      *string        `gorm:"size:100" json:"contact,omitempty"`
	Country      *string        `gorm:"size:100" json:"country,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items      []SupplierItem `gorm:"foreignKey:SupplierID" json:"items,omitempty"`
	Containers []Container    `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierItem is a catalog entry: an item the supplier ships, with its
// standing unit price. Container items are cut from this catalog at intake.
type SupplierItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	ItemName   string         `gorm:"size:255;not null" json:"itemName"`
	Price      int64          `gorm:"default:0" json:"-"` // Stored in pesewas, excluded from JSON
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// MarshalJSON custom marshaler to convert pesewas to decimal for API responses
func (i SupplierItem) MarshalJSON() ([]byte, error) {
	type Alias SupplierItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
	})
}

// GetPriceDecimal returns the unit price as a decimal
func (i *SupplierItem) GetPriceDecimal() float64 {
	return float64(i.Price) / 100
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (i *SupplierItem) SetPriceFromDecimal(price float64) {
	i.Price = int64(price * 100)
}

// BeforeCreate generates a UUID before creating a new supplier item
func (i *SupplierItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SupplierItem model
func (SupplierItem) TableName() string {
	return "supplier_items"
}
