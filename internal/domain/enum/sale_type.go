package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleType distinguishes immediate-payment sales from deferred-payment sales.
// Credit sales increase the customer's outstanding balance.
type SaleType string

const (
	SaleTypeCash   SaleType = "cash"
	SaleTypeCredit SaleType = "credit"
)

func (t SaleType) String() string {
	return string(t)
}

// Valid reports whether the sale type is a known value.
func (t SaleType) Valid() bool {
	return t == SaleTypeCash || t == SaleTypeCredit
}

func (t SaleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *SaleType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = SaleType(str)
	return nil
}

func (t SaleType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *SaleType) Scan(value interface{}) error {
	if value == nil {
		*t = SaleTypeCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = SaleType(v)
	case []byte:
		*t = SaleType(string(v))
	}
	return nil
}
