// Package testutil provides shared helpers for the integration tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lapizzeria/orders-api/config"
	"github.com/lapizzeria/orders-api/controllers"
	"github.com/lapizzeria/orders-api/services"
)

// OpenTestDB opens a migrated in-memory database through the real connect
// and migrate path, so integration tests run against the same schema the
// server boots with.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.Connect(":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		config.Close(db)
	})

	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// NewTestRouter wires the full controller stack onto a Gin engine the same
// way the server does.
func NewTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	fieldService := services.NewFieldService(db)
	orderService := services.NewOrderService(db, fieldService)
	reportService := services.NewReportService(db)
	exportService := services.NewExportService()

	orderController := controllers.NewOrderController(orderService)
	reportController := controllers.NewReportController(reportService, exportService, "$")
	fieldController := controllers.NewFieldController(fieldService)

	router := gin.New()
	v1 := router.Group("/api/v1")

	orders := v1.Group("/orders")
	orders.POST("", orderController.CreateOrder)
	orders.GET("/:id", orderController.GetOrder)
	orders.PATCH("/:id/status", orderController.UpdateStatus)
	orders.POST("/:id/deliver", orderController.Deliver)
	orders.DELETE("/:id", orderController.DeleteOrder)

	reports := v1.Group("/reports")
	reports.GET("/daily", reportController.Daily)
	reports.GET("/day", reportController.Day)
	reports.GET("/history", reportController.History)
	reports.GET("/history/export", reportController.Export)

	fields := v1.Group("/fields")
	fields.POST("", fieldController.CreateField)
	fields.GET("", fieldController.ListFields)
	fields.GET("/active", fieldController.ActiveFields)
	fields.POST("/:id/toggle", fieldController.ToggleField)
	fields.POST("/:id/options", fieldController.AddOption)
	fields.DELETE("/:id", fieldController.DeleteField)

	return router
}

// Request performs a JSON request against the router and returns the
// recorder.
func Request(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a JSON response body.
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response should be valid JSON: %v", err)
	}
	return response
}
