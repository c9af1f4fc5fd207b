package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lapizzeria/orders-api/config"
)

// TestHealthCheck is a unit test for the healthCheck handler function
func TestHealthCheck(t *testing.T) {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create a test context and response recorder
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Call the handler
	healthCheck(c)

	// Assert the status code
	assert.Equal(t, http.StatusOK, w.Code, "Expected status code 200")

	// Parse the response body
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")

	// Assert the response structure
	assert.Equal(t, true, response["success"], "Expected success to be true")
	assert.Equal(t, "Pizzeria Orders API is running", response["message"], "Expected correct message")
}

// TestDatabaseStatus exercises the status endpoint against a migrated
// in-memory database
func TestDatabaseStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := config.Connect(":memory:")
	assert.NoError(t, err)
	defer config.Close(db)
	assert.NoError(t, config.Migrate(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	databaseStatus(db)(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	tables := response["tables"].([]interface{})
	assert.Contains(t, tables, "orders")
	assert.Contains(t, tables, "field_configs")
	assert.Contains(t, tables, "field_options")
}

// TestSetupRouterRoutes verifies the route table is wired
func TestSetupRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := config.Connect(":memory:")
	assert.NoError(t, err)
	defer config.Close(db)
	assert.NoError(t, config.Migrate(db))

	router := setupRouter(db, &config.Config{CurrencySymbol: "$"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reports/daily", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
