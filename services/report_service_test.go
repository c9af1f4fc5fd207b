package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/lapizzeria/orders-api/models"
)

// seedOrder inserts an order directly, bypassing the lifecycle, so report
// tests control every field.
func seedOrder(t *testing.T, db *gorm.DB, order models.Order) models.Order {
	t.Helper()
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return order
}

func TestDailyTotalsEmptyDay(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewReportService(db)

	totals, err := svc.DailyTotals("2025-10-05")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, totals.Active)
	assert.Equal(t, 0.0, totals.Delivered)
	assert.Equal(t, 0.0, totals.Grand)
}

func TestDailyTotals(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewReportService(db)
	date := "2025-10-05"

	seedOrder(t, db, models.Order{Item: "Hawaiana", Quantity: 1, UnitPrice: 1000, Total: 1000, OrderDate: date})
	seedOrder(t, db, models.Order{Item: "Pepperoni", Quantity: 1, UnitPrice: 2000, Total: 2000, OrderDate: date, Status: models.StatusInPreparation})
	seedOrder(t, db, models.Order{Item: "Margarita", Quantity: 1, UnitPrice: 500, Total: 500, OrderDate: date, Status: models.StatusDelivered})

	// Another day's orders must not leak in
	seedOrder(t, db, models.Order{Item: "Napolitana", Quantity: 1, UnitPrice: 9000, Total: 9000, OrderDate: "2025-10-04"})

	totals, err := svc.DailyTotals(date)
	assert.NoError(t, err)
	assert.Equal(t, 3000.0, totals.Active)
	assert.Equal(t, 500.0, totals.Delivered)
	assert.Equal(t, 3500.0, totals.Grand)
}

func TestActiveAndDeliveredOrders(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewReportService(db)
	date := "2025-10-05"

	late := seedOrder(t, db, models.Order{Item: "Hawaiana", Quantity: 1, UnitPrice: 1000, Total: 1000, OrderDate: date, DeliveryTime: "20:00"})
	early := seedOrder(t, db, models.Order{Item: "Pepperoni", Quantity: 1, UnitPrice: 2000, Total: 2000, OrderDate: date, DeliveryTime: "18:30", Status: models.StatusOutForDelivery})
	done := seedOrder(t, db, models.Order{Item: "Margarita", Quantity: 1, UnitPrice: 500, Total: 500, OrderDate: date, DeliveryTime: "19:00", Status: models.StatusDelivered, PaymentMethod: "cash"})

	active, err := svc.ActiveOrders(date)
	assert.NoError(t, err)
	if assert.Len(t, active, 2) {
		// Soonest delivery time first
		assert.Equal(t, early.ID, active[0].ID)
		assert.Equal(t, late.ID, active[1].ID)
	}

	delivered, err := svc.DeliveredOrders(date)
	assert.NoError(t, err)
	if assert.Len(t, delivered, 1) {
		assert.Equal(t, done.ID, delivered[0].ID)
	}
}

func TestFullHistoryOrdering(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewReportService(db)

	old := seedOrder(t, db, models.Order{Item: "Hawaiana", Quantity: 1, UnitPrice: 1000, Total: 1000, OrderDate: "2025-10-03"})
	midA := seedOrder(t, db, models.Order{Item: "Pepperoni", Quantity: 1, UnitPrice: 2000, Total: 2000, OrderDate: "2025-10-04"})
	midB := seedOrder(t, db, models.Order{Item: "Margarita", Quantity: 1, UnitPrice: 500, Total: 500, OrderDate: "2025-10-04"})

	history, err := svc.FullHistory()
	assert.NoError(t, err)
	if assert.Len(t, history, 3) {
		// Newest date first, highest id first within a date
		assert.Equal(t, midB.ID, history[0].ID)
		assert.Equal(t, midA.ID, history[1].ID)
		assert.Equal(t, old.ID, history[2].ID)
	}

	// A newly inserted order on a later date comes back at the front
	newest := seedOrder(t, db, models.Order{Item: "Napolitana", Quantity: 1, UnitPrice: 3000, Total: 3000, OrderDate: "2025-10-05"})

	history, err = svc.FullHistory()
	assert.NoError(t, err)
	if assert.Len(t, history, 4) {
		assert.Equal(t, newest.ID, history[0].ID)
	}
}

func TestOrdersOn(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewReportService(db)

	seedOrder(t, db, models.Order{Item: "Hawaiana", Quantity: 1, UnitPrice: 1000, Total: 1000, OrderDate: "2025-10-04"})
	seedOrder(t, db, models.Order{Item: "Pepperoni", Quantity: 1, UnitPrice: 2000, Total: 2000, OrderDate: "2025-10-04", Status: models.StatusDelivered})
	seedOrder(t, db, models.Order{Item: "Margarita", Quantity: 1, UnitPrice: 500, Total: 500, OrderDate: "2025-10-05"})

	orders, total, err := svc.OrdersOn("2025-10-04")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, 3000.0, total)

	orders, total, err = svc.OrdersOn("2024-01-01")
	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 0.0, total)
}
