package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer of the distribution business.
// Balance is signed and stored in pesewas: positive means the customer
// owes money (accumulated by credit sales, reduced by payments).
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Balance   int64          `gorm:"default:0" json:"-"` // Stored in pesewas, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales    []Sale    `gorm:"foreignKey:CustomerID" json:"-"`
	Payments []Payment `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert pesewas to decimal for API responses
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		Balance float64 `json:"balance"`
	}{
		Alias:   Alias(c),
		Balance: float64(c.Balance) / 100,
	})
}

// GetBalanceDecimal returns the balance as a decimal
func (c *Customer) GetBalanceDecimal() float64 {
	return float64(c.Balance) / 100
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
