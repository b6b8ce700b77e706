// Package cart implements sale composition: accumulating catalog items into
// a working line-item list that is checked out in one atomic submission.
// Availability is capped per item, and the submission lifecycle is an
// explicit state machine so re-entrancy guarantees are testable.
package cart

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrOutOfStock is returned when adding an item with nothing available.
	ErrOutOfStock = errors.New("cart: item is out of stock")
	// ErrInsufficientStock is returned when an add would exceed the
	// item's available quantity. The cart is left unchanged.
	ErrInsufficientStock = errors.New("cart: insufficient stock")
	// ErrLineNotFound is returned when a line id is not in the cart.
	ErrLineNotFound = errors.New("cart: line not found")
	// ErrInvalidUnitPrice is returned for a non-positive price override.
	ErrInvalidUnitPrice = errors.New("cart: unit price must be positive")
)

// Item is a catalog entry a cart draws from: a container item or supplier
// stock line with its remaining availability and standing unit price in
// pesewas.
type Item struct {
	ID        uuid.UUID
	Name      string
	Available int
	UnitPrice int64
}

// Line is one accumulated cart entry. UnitPrice starts at the catalog price
// and may be overridden (admin only, enforced by the caller).
type Line struct {
	ItemID    uuid.UUID
	Name      string
	Quantity  int
	UnitPrice int64
}

// Total returns the line total in pesewas.
func (l Line) Total() int64 {
	return int64(l.Quantity) * l.UnitPrice
}

// Cart accumulates lines for one sale. Lines keep most-recently-added-first
// order; adding an existing item increments its quantity in place.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of item into the cart. If the item is already present
// its quantity is incremented, capped at item.Available; at the cap the cart
// is unchanged and ErrInsufficientStock is returned. A new item with no
// availability returns ErrOutOfStock.
func (c *Cart) Add(item Item) error {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			if c.lines[i].Quantity >= item.Available {
				return ErrInsufficientStock
			}
			c.lines[i].Quantity++
			return nil
		}
	}

	if item.Available <= 0 {
		return ErrOutOfStock
	}

	c.lines = append([]Line{{
		ItemID:    item.ID,
		Name:      item.Name,
		Quantity:  1,
		UnitPrice: item.UnitPrice,
	}}, c.lines...)
	return nil
}

// Remove deletes the line for itemID. Removing an absent line returns
// ErrLineNotFound; no other line is touched.
func (c *Cart) Remove(itemID uuid.UUID) error {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// SetUnitPrice overrides the unit price of an existing line. The caller is
// responsible for restricting this to privileged users.
func (c *Cart) SetUnitPrice(itemID uuid.UUID, price int64) error {
	if price <= 0 {
		return ErrInvalidUnitPrice
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].UnitPrice = price
			return nil
		}
	}
	return ErrLineNotFound
}

// Total returns the cart total in pesewas: sum of quantity x unit price.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// Lines returns a copy of the cart contents, most recently added first.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear discards all lines.
func (c *Cart) Clear() {
	c.lines = nil
}
