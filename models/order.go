package models

import (
	"time"
)

// Status is the lifecycle state of an order. The set is closed: arbitrary
// strings are rejected, and new intermediate states must be registered
// through RegisterIntermediateStatus before they are accepted.
type Status string

const (
	StatusPending        Status = "pending"
	StatusInPreparation  Status = "in_preparation"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
)

// intermediateStatuses holds the non-terminal states an order may pass
// through between creation and delivery, in the order they are offered on
// the board. Extended at startup via RegisterIntermediateStatus.
var intermediateStatuses = []Status{
	StatusInPreparation,
	StatusOutForDelivery,
}

// RegisterIntermediateStatus adds a custom intermediate state (e.g. "in_oven")
// to the accepted set. Registered states behave like in_preparation: the
// order counts as active and may still be delivered. Intended to be called
// during startup wiring, before the server accepts requests.
func RegisterIntermediateStatus(name string) {
	s := Status(name)
	if s == "" || s.IsValid() {
		return
	}
	intermediateStatuses = append(intermediateStatuses, s)
}

// IntermediateStatuses returns the registered intermediate states for form
// construction. The returned slice is a copy.
func IntermediateStatuses() []Status {
	out := make([]Status, len(intermediateStatuses))
	copy(out, intermediateStatuses)
	return out
}

// IsValid reports whether s is pending, delivered, or a registered
// intermediate state.
func (s Status) IsValid() bool {
	if s == StatusPending || s == StatusDelivered {
		return true
	}
	for _, i := range intermediateStatuses {
		if s == i {
			return true
		}
	}
	return false
}

// IsDelivered reports whether s is the terminal delivered state.
func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}

// OrderDateLayout is the canonical format of Order.OrderDate.
const OrderDateLayout = "2006-01-02"

// Today returns the current date in the canonical order-date format.
func Today() string {
	return time.Now().Format(OrderDateLayout)
}

// Order represents one customer order tracked from creation through delivery.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Customer      string    `json:"customer"`
	Area          string    `json:"area"` // delivery area / neighborhood
	Phone         string    `json:"phone"`
	Item          string    `gorm:"not null" json:"item"` // flavor/topping description
	Quantity      int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice     float64   `gorm:"not null" json:"unit_price"`
	Total         float64   `gorm:"not null" json:"total"` // always quantity * unit_price, never supplied
	DeliveryTime  string    `json:"delivery_time"`         // free text, e.g. "19:30"
	Status        Status    `gorm:"not null;default:'pending';index" json:"status"`
	PaymentMethod string    `json:"payment_method"` // recorded at delivery, empty before
	Notes         string    `json:"notes"`
	OrderDate     string    `gorm:"not null;index" json:"order_date"` // YYYY-MM-DD, immutable after creation
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
