package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lapizzeria/orders-api/config"
	"github.com/lapizzeria/orders-api/controllers"
	"github.com/lapizzeria/orders-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting pizzeria orders API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := config.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Bring the schema up to date (additive only, existing data is kept)
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := setupRouter(db, cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires the services, controllers, and routes onto a Gin engine.
func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Construct services on the shared database handle
	fieldService := services.NewFieldService(db)
	orderService := services.NewOrderService(db, fieldService)
	reportService := services.NewReportService(db)
	exportService := services.NewExportService()

	orderController := controllers.NewOrderController(orderService)
	reportController := controllers.NewReportController(reportService, exportService, cfg.CurrencySymbol)
	fieldController := controllers.NewFieldController(fieldService)

	// Initialize Gin router
	router := gin.Default()

	// The board frontend is served from a different origin
	router.Use(cors.Default())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus(db))

		orders := v1.Group("/orders")
		{
			orders.POST("", orderController.CreateOrder)
			orders.GET("/:id", orderController.GetOrder)
			orders.PATCH("/:id/status", orderController.UpdateStatus)
			orders.POST("/:id/deliver", orderController.Deliver)
			orders.DELETE("/:id", orderController.DeleteOrder)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/daily", reportController.Daily)
			reports.GET("/day", reportController.Day)
			reports.GET("/history", reportController.History)
			reports.GET("/history/export", reportController.Export)
		}

		fields := v1.Group("/fields")
		{
			fields.POST("", fieldController.CreateField)
			fields.GET("", fieldController.ListFields)
			fields.GET("/active", fieldController.ActiveFields)
			fields.POST("/:id/toggle", fieldController.ToggleField)
			fields.POST("/:id/options", fieldController.AddOption)
			fields.DELETE("/:id", fieldController.DeleteField)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pizzeria Orders API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the underlying SQL database to check connection
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to get database instance",
				},
			})
			return
		}

		// Ping the database to verify connection
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_CONNECTION_ERROR",
					"message": "Database connection failed",
				},
			})
			return
		}

		// List tables through the migrator so this works on both dialects
		tables, err := db.Migrator().GetTables()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_QUERY_ERROR",
					"message": "Failed to query tables",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database connected",
			"tables":  tables,
		})
	}
}
