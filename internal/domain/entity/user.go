package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a dashboard user
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	Role      enum.UserRole  `gorm:"size:50;default:'staff'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// IsAdmin reports whether the user may perform privileged actions
// such as overriding unit prices on a sale.
func (u *User) IsAdmin() bool {
	return u.Role == enum.UserRoleAdmin
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// Company represents the business a user belongs to
type Company struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName string         `gorm:"size:255;unique;not null" json:"companyName"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Users []User `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
