package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lapizzeria/orders-api/models"
	"github.com/lapizzeria/orders-api/services"
)

// OrderController exposes the order lifecycle over HTTP.
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates an OrderController backed by the given service.
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrderRequest represents the request body for creating an order.
// Quantity and unit price are passed through as the raw strings the entry
// form submits; the service parses and validates them.
type CreateOrderRequest struct {
	Customer     string          `json:"customer" form:"customer"`
	Area         string          `json:"area" form:"area"`
	Phone        string          `json:"phone" form:"phone"`
	Item         string          `json:"item" form:"item"`
	Selections   map[uint]string `json:"selections"`
	Quantity     string          `json:"quantity" form:"quantity" binding:"required"`
	UnitPrice    string          `json:"unit_price" form:"unit_price" binding:"required"`
	DeliveryTime string          `json:"delivery_time" form:"delivery_time"`
	Notes        string          `json:"notes" form:"notes"`
	OrderDate    string          `json:"order_date" form:"order_date"`
}

// CreateOrder handles POST /api/v1/orders - registers a new order
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	// Parse request body
	var req CreateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	order, err := ctrl.orders.Create(services.CreateOrderInput{
		Customer:     req.Customer,
		Area:         req.Area,
		Phone:        req.Phone,
		Item:         req.Item,
		Selections:   req.Selections,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		DeliveryTime: req.DeliveryTime,
		Notes:        req.Notes,
		OrderDate:    req.OrderDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrder handles GET /api/v1/orders/:id - returns one order
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := ctrl.orders.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status - moves an order to
// an intermediate state (delivery goes through the deliver endpoint)
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	order, err := ctrl.orders.SetStatus(id, models.Status(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeliverRequest represents the request body for delivering an order
type DeliverRequest struct {
	PaymentMethod string `json:"payment_method" form:"payment_method" binding:"required"`
}

// Deliver handles POST /api/v1/orders/:id/deliver - marks the order
// delivered and records how it was paid
func (ctrl *OrderController) Deliver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req DeliverRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	order, err := ctrl.orders.Deliver(id, req.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.orders.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted",
	})
}
