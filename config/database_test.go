package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lapizzeria/orders-api/models"
)

func TestConnectSQLite(t *testing.T) {
	db, err := Connect(":memory:")
	assert.NoError(t, err)
	assert.NotNil(t, db)

	assert.NoError(t, Close(db))
}

func TestMigrateIsIdempotentAndNonDestructive(t *testing.T) {
	db, err := Connect(":memory:")
	assert.NoError(t, err)
	defer Close(db)

	assert.NoError(t, Migrate(db))

	// Existing data survives a re-run of the migration
	order := models.Order{Item: "Hawaiana", Quantity: 1, UnitPrice: 15000, Total: 15000, Status: models.StatusPending, OrderDate: "2025-10-05"}
	assert.NoError(t, db.Create(&order).Error)

	assert.NoError(t, Migrate(db))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)

	for _, table := range []string{"orders", "field_configs", "field_options"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s to exist", table)
	}
}
