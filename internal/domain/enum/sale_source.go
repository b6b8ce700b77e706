package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleSource identifies which catalog a sale draws stock from: a specific
// container, or a supplier's general item list (a "regular" sale).
type SaleSource string

const (
	SaleSourceContainer SaleSource = "container"
	SaleSourceSupplier  SaleSource = "supplier"
)

func (s SaleSource) String() string {
	return string(s)
}

// Valid reports whether the sale source is a known value.
func (s SaleSource) Valid() bool {
	return s == SaleSourceContainer || s == SaleSourceSupplier
}

func (s SaleSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *SaleSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SaleSource(str)
	return nil
}

func (s SaleSource) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *SaleSource) Scan(value interface{}) error {
	if value == nil {
		*s = SaleSourceContainer
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = SaleSource(v)
	case []byte:
		*s = SaleSource(string(v))
	}
	return nil
}
