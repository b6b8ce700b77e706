package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ContainerStatus represents the lifecycle status of a container shipment.
type ContainerStatus string

const (
	// ContainerStatusPending means the container has been registered but not offloaded.
	ContainerStatusPending ContainerStatus = "Pending"
	// ContainerStatusReceived means offloading is complete and quantities are confirmed.
	ContainerStatusReceived ContainerStatus = "Received"
	// ContainerStatusDone means the container is fully sold out / closed.
	ContainerStatusDone ContainerStatus = "Done"
)

func (s ContainerStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known values.
func (s ContainerStatus) Valid() bool {
	switch s {
	case ContainerStatusPending, ContainerStatusReceived, ContainerStatusDone:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed.
// Pending -> Received -> Done is the forward path; Received can be reopened
// to Pending when an offload turns out to be incomplete. Re-applying the
// current status is rejected so a double "mark received" surfaces as a
// conflict instead of silently succeeding.
func (s ContainerStatus) CanTransitionTo(next ContainerStatus) bool {
	switch s {
	case ContainerStatusPending:
		return next == ContainerStatusReceived
	case ContainerStatusReceived:
		return next == ContainerStatusDone || next == ContainerStatusPending
	case ContainerStatusDone:
		return false
	}
	return false
}

func (s ContainerStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *ContainerStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ContainerStatus(str)
	return nil
}

func (s ContainerStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ContainerStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ContainerStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ContainerStatus(v)
	case []byte:
		*s = ContainerStatus(string(v))
	}
	return nil
}
