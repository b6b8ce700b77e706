package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod is how a customer settled an amount owed.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodBank PaymentMethod = "BANK"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Valid reports whether the payment method is a known value.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodBank
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = PaymentMethod(str)
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = PaymentMethod(v)
	case []byte:
		*m = PaymentMethod(string(v))
	}
	return nil
}
