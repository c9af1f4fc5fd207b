package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lapizzeria/orders-api/models"
)

// SelectionSeparator joins the selected option names when an order's item
// description is composed from dynamic fields.
const SelectionSeparator = " - "

// OrderService manages the order lifecycle: creation, status transitions,
// delivery, and deletion. It holds the database handle it was constructed
// with; all mutations are single-record operations against it.
type OrderService struct {
	db     *gorm.DB
	fields *FieldService
}

// NewOrderService creates an OrderService on the given database handle.
// The FieldService supplies the active dynamic fields used to compose item
// descriptions from selections.
func NewOrderService(db *gorm.DB, fields *FieldService) *OrderService {
	return &OrderService{db: db, fields: fields}
}

// CreateOrderInput carries the raw order entry form values. Quantity and
// UnitPrice arrive as strings exactly as submitted and are parsed here, so
// a garbage value is rejected before anything touches the store.
type CreateOrderInput struct {
	Customer     string
	Area         string
	Phone        string
	Item         string
	Selections   map[uint]string // field config ID -> selected option name
	Quantity     string
	UnitPrice    string
	DeliveryTime string
	Notes        string
	OrderDate    string // optional YYYY-MM-DD; defaults to today
}

// Create validates the input, computes the total, and persists a new order
// in pending status. When dynamic field selections are present, the item
// description is built by joining the non-empty selections for currently
// active fields; fields with no selection contribute nothing.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(input.Quantity))
	if err != nil {
		return nil, NewValidationError("quantity %q is not a number", input.Quantity)
	}
	if quantity <= 0 {
		return nil, NewValidationError("quantity must be greater than zero")
	}

	unitPrice, err := strconv.ParseFloat(strings.TrimSpace(input.UnitPrice), 64)
	if err != nil {
		return nil, NewValidationError("unit price %q is not a number", input.UnitPrice)
	}
	if unitPrice < 0 {
		return nil, NewValidationError("unit price must not be negative")
	}

	orderDate := strings.TrimSpace(input.OrderDate)
	if orderDate == "" {
		orderDate = models.Today()
	} else if _, err := time.Parse(models.OrderDateLayout, orderDate); err != nil {
		return nil, NewValidationError("order date %q is not a valid YYYY-MM-DD date", input.OrderDate)
	}

	item := strings.TrimSpace(input.Item)
	if len(input.Selections) > 0 {
		composed, err := s.composeItem(input.Selections)
		if err != nil {
			return nil, err
		}
		if composed != "" {
			item = composed
		}
	}

	order := models.Order{
		Customer:     strings.TrimSpace(input.Customer),
		Area:         strings.TrimSpace(input.Area),
		Phone:        strings.TrimSpace(input.Phone),
		Item:         item,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Total:        float64(quantity) * unitPrice,
		DeliveryTime: strings.TrimSpace(input.DeliveryTime),
		Status:       models.StatusPending,
		Notes:        strings.TrimSpace(input.Notes),
		OrderDate:    orderDate,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// composeItem joins the selected option names of the active fields, in
// field order.
func (s *OrderService) composeItem(selections map[uint]string) (string, error) {
	fields, err := s.fields.ActiveFields()
	if err != nil {
		return "", err
	}

	var parts []string
	for _, field := range fields {
		selected := strings.TrimSpace(selections[field.ID])
		if selected == "" {
			continue
		}
		parts = append(parts, selected)
	}
	return strings.Join(parts, SelectionSeparator), nil
}

// Get returns the order with the given id.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: id}
		}
		return nil, err
	}
	return &order, nil
}

// Deliver marks the order as delivered and records the payment method.
// Calling it again on an already delivered order is allowed and overwrites
// the payment method, so a mis-keyed method can be corrected.
func (s *OrderService) Deliver(id uint, paymentMethod string) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":         models.StatusDelivered,
		"payment_method": strings.TrimSpace(paymentMethod),
	}
	if err := s.db.Model(order).Updates(updates).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus moves the order to an intermediate state. Delivered is terminal:
// a delivered order cannot be transitioned, and delivered itself can only be
// reached through Deliver so a payment method is always recorded with it.
func (s *OrderService) SetStatus(id uint, status models.Status) (*models.Order, error) {
	if !status.IsValid() {
		return nil, NewValidationError("unknown status %q", string(status))
	}
	if status.IsDelivered() {
		return nil, NewValidationError("orders are delivered through the deliver operation")
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status.IsDelivered() {
		return nil, NewValidationError("order %d is already delivered", id)
	}

	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order permanently.
func (s *OrderService) Delete(id uint) error {
	result := s.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "order", ID: id}
	}
	return nil
}
