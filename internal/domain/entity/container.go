package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Container represents a supplier shipment tracked through
// Pending -> Received -> Done.
type Container struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ContainerNo string              `gorm:"size:100;not null;index" json:"containerNo"`
	SupplierID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	ArrivalDate time.Time           `gorm:"type:date;not null" json:"arrivalDate"`
	Status      enum.ContainerStatus `gorm:"size:50;default:'Pending'" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Supplier Supplier        `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []ContainerItem `gorm:"foreignKey:ContainerID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new container
func (c *Container) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Container model
func (Container) TableName() string {
	return "containers"
}

// ContainerItem is a line of stock inside a container. Quantity is what the
// supplier manifest promised; ReceivedQty is what offloading confirmed
// (initialized to Quantity until an offload corrects it); SoldQty grows as
// sales are recorded. The stock invariant sold <= received is enforced by a
// guarded decrement in the repository, never read-modify-write.
type ContainerItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ContainerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"container_id"`
	ItemName    string         `gorm:"size:255;not null" json:"itemName"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	ReceivedQty int            `gorm:"default:0" json:"receivedQty"`
	SoldQty     int            `gorm:"default:0" json:"soldQty"`
	UnitPrice   int64          `gorm:"default:0" json:"-"` // Stored in pesewas, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Container Container `gorm:"foreignKey:ContainerID" json:"-"`
}

// RemainingQty returns how many units are still available to sell.
func (i *ContainerItem) RemainingQty() int {
	return i.ReceivedQty - i.SoldQty
}

// MarshalJSON custom marshaler to convert pesewas to decimal and expose
// the derived remaining quantity
func (i ContainerItem) MarshalJSON() ([]byte, error) {
	type Alias ContainerItem
	return json.Marshal(&struct {
		Alias
		UnitPrice    float64 `json:"unitPrice"`
		RemainingQty int     `json:"remainingQty"`
	}{
		Alias:        Alias(i),
		UnitPrice:    float64(i.UnitPrice) / 100,
		RemainingQty: i.RemainingQty(),
	})
}

// GetUnitPriceDecimal returns the unit price as a decimal
func (i *ContainerItem) GetUnitPriceDecimal() float64 {
	return float64(i.UnitPrice) / 100
}

// BeforeCreate generates a UUID before creating a new container item
func (i *ContainerItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ContainerItem model
func (ContainerItem) TableName() string {
	return "container_items"
}
