package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserRole controls what a dashboard user is allowed to do.
// Admins may override unit prices on sale lines and adjust sale totals.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

func (r UserRole) String() string {
	return string(r)
}

// Valid reports whether the role is a known value.
func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleStaff
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = UserRole(str)
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleStaff
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(string(v))
	}
	return nil
}
