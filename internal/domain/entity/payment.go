package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment is money received from a customer against their balance.
type Payment struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount     int64              `gorm:"not null" json:"-"` // Stored in pesewas, excluded from JSON
	Note       *string            `gorm:"type:text" json:"note,omitempty"`
	Method     enum.PaymentMethod `gorm:"size:50;default:'CASH';column:method" json:"paymentType"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert pesewas to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// GetAmountDecimal returns the amount as a decimal
func (p *Payment) GetAmountDecimal() float64 {
	return float64(p.Amount) / 100
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
