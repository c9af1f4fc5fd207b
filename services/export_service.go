package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/lapizzeria/orders-api/models"
)

// ExportSheet is the name of the worksheet the report is written to.
const ExportSheet = "Orders"

// ExportColumns is the report column set. The order is significant: the
// shop's bookkeeping spreadsheet imports by position.
var ExportColumns = []string{
	"ID", "Date", "Customer", "Area", "Phone", "Item",
	"Quantity", "Unit Price", "Total", "Status", "Notes", "Payment Method",
}

// ExportService turns order lists into a downloadable .xlsx report.
type ExportService struct{}

// NewExportService creates an ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteHistory writes the given orders as an .xlsx workbook with one header
// row followed by one row per order, in the order received.
func (s *ExportService) WriteHistory(w io.Writer, orders []models.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(ExportColumns))
	for i, col := range ExportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return err
	}

	for i, order := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			order.ID,
			order.OrderDate,
			order.Customer,
			order.Area,
			order.Phone,
			order.Item,
			order.Quantity,
			order.UnitPrice,
			order.Total,
			string(order.Status),
			order.Notes,
			order.PaymentMethod,
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
