package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lapizzeria/orders-api/models"
	"github.com/lapizzeria/orders-api/services"
	"github.com/lapizzeria/orders-api/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController exposes the daily board, the historical report, and the
// spreadsheet export.
type ReportController struct {
	reports        *services.ReportService
	exporter       *services.ExportService
	currencySymbol string
}

// NewReportController creates a ReportController backed by the given
// services. The currency symbol is only used for the formatted display
// strings; all totals in the payload stay numeric.
func NewReportController(reports *services.ReportService, exporter *services.ExportService, currencySymbol string) *ReportController {
	return &ReportController{reports: reports, exporter: exporter, currencySymbol: currencySymbol}
}

// reportDate reads the optional ?date= query, defaulting to today. It
// writes the error response itself on a malformed date.
func reportDate(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		return models.Today(), true
	}
	if _, err := time.Parse(models.OrderDateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "date must be formatted as YYYY-MM-DD",
			},
		})
		return "", false
	}
	return date, true
}

// Daily handles GET /api/v1/reports/daily - the day board: active orders,
// delivered orders, and the day's totals
func (ctrl *ReportController) Daily(c *gin.Context) {
	date, ok := reportDate(c)
	if !ok {
		return
	}

	active, err := ctrl.reports.ActiveOrders(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	delivered, err := ctrl.reports.DeliveredOrders(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	totals := services.ComputeDailyTotals(active, delivered)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"date":             date,
			"active_orders":    active,
			"delivered_orders": delivered,
			"totals":           totals,
			"formatted_totals": gin.H{
				"active":    utils.FormatMoney(totals.Active, ctrl.currencySymbol),
				"delivered": utils.FormatMoney(totals.Delivered, ctrl.currencySymbol),
				"grand":     utils.FormatMoney(totals.Grand, ctrl.currencySymbol),
			},
		},
	})
}

// History handles GET /api/v1/reports/history - every order, newest first
func (ctrl *ReportController) History(c *gin.Context) {
	orders, err := ctrl.reports.FullHistory()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// Day handles GET /api/v1/reports/day - the orders of one stored date with
// their total
func (ctrl *ReportController) Day(c *gin.Context) {
	date, ok := reportDate(c)
	if !ok {
		return
	}

	orders, total, err := ctrl.reports.OrdersOn(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"date":            date,
			"orders":          orders,
			"total":           total,
			"formatted_total": utils.FormatMoney(total, ctrl.currencySymbol),
		},
	})
}

// Export handles GET /api/v1/reports/history/export - downloads the order
// history as an .xlsx file; ?date= narrows it to a single day
func (ctrl *ReportController) Export(c *gin.Context) {
	var (
		orders   []models.Order
		err      error
		filename = "orders-history.xlsx"
	)

	if date := c.Query("date"); date != "" {
		if _, perr := time.Parse(models.OrderDateLayout, date); perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_REQUEST",
					"message": "date must be formatted as YYYY-MM-DD",
				},
			})
			return
		}
		orders, _, err = ctrl.reports.OrdersOn(date)
		filename = fmt.Sprintf("orders-%s.xlsx", date)
	} else {
		orders, err = ctrl.reports.FullHistory()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Build the workbook in memory so an export failure still gets a clean
	// JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := ctrl.exporter.WriteHistory(&buf, orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_ERROR",
				"message": "Failed to generate export file",
			},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
