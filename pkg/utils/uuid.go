package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a UUID string
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo generates a unique invoice number with a date prefix,
// e.g. INV-20250601-3F2A8C
func GenerateInvoiceNo() string {
	id := uuid.New()
	return fmt.Sprintf("INV-%s-%X", time.Now().Format("20060102"), id[:3])
}
