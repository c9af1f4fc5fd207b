package services

import (
	"gorm.io/gorm"

	"github.com/lapizzeria/orders-api/models"
)

// DailyTotals is the day's money split by delivery state. All three values
// are exact numeric sums; empty days are all zeros.
type DailyTotals struct {
	Active    float64 `json:"active"`
	Delivered float64 `json:"delivered"`
	Grand     float64 `json:"grand"`
}

// ReportService computes the daily board and the historical report over the
// order collection. It only reads.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a ReportService on the given database handle.
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// ActiveOrders returns the not-yet-delivered orders for the given date,
// soonest delivery time first.
func (s *ReportService) ActiveOrders(date string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Where("order_date = ? AND status <> ?", date, models.StatusDelivered).
		Order("delivery_time asc, id asc").
		Find(&orders).Error
	return orders, err
}

// DeliveredOrders returns the delivered orders for the given date, soonest
// delivery time first.
func (s *ReportService) DeliveredOrders(date string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Where("order_date = ? AND status = ?", date, models.StatusDelivered).
		Order("delivery_time asc, id asc").
		Find(&orders).Error
	return orders, err
}

// ComputeDailyTotals sums the given active and delivered orders. Split out
// so callers that already loaded the lists don't hit the store again.
func ComputeDailyTotals(active, delivered []models.Order) DailyTotals {
	var totals DailyTotals
	for _, order := range active {
		totals.Active += order.Total
	}
	for _, order := range delivered {
		totals.Delivered += order.Total
	}
	totals.Grand = totals.Active + totals.Delivered
	return totals
}

// DailyTotals returns the active/delivered/grand sums for the given date.
func (s *ReportService) DailyTotals(date string) (DailyTotals, error) {
	active, err := s.ActiveOrders(date)
	if err != nil {
		return DailyTotals{}, err
	}
	delivered, err := s.DeliveredOrders(date)
	if err != nil {
		return DailyTotals{}, err
	}
	return ComputeDailyTotals(active, delivered), nil
}

// FullHistory returns every order across all dates, most recent first:
// newest date, then highest id within the date.
func (s *ReportService) FullHistory() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Order("order_date desc, id desc").
		Find(&orders).Error
	return orders, err
}

// OrdersOn returns the orders stored with exactly the given date, most
// recent first, together with their total.
func (s *ReportService) OrdersOn(date string) ([]models.Order, float64, error) {
	var orders []models.Order
	err := s.db.
		Where("order_date = ?", date).
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, order := range orders {
		total += order.Total
	}
	return orders, total, nil
}
