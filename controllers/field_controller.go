package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lapizzeria/orders-api/services"
)

// FieldController exposes the dynamic field administration: the operator
// defines the attributes (and their options) offered on the entry form.
type FieldController struct {
	fields *services.FieldService
}

// NewFieldController creates a FieldController backed by the given service.
func NewFieldController(fields *services.FieldService) *FieldController {
	return &FieldController{fields: fields}
}

// FieldRequest represents the request body for creating a field or adding
// an option
type FieldRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// CreateField handles POST /api/v1/fields - defines a new form field
func (ctrl *FieldController) CreateField(c *gin.Context) {
	var req FieldRequest
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

	field, err := ctrl.fields.CreateField(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    field,
	})
}

// ListFields handles GET /api/v1/fields - every field, active or not
func (ctrl *FieldController) ListFields(c *gin.Context) {
	fields, err := ctrl.fields.AllFields()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fields,
	})
}

// ActiveFields handles GET /api/v1/fields/active - the fields offered on
// the order entry form
func (ctrl *FieldController) ActiveFields(c *gin.Context) {
	fields, err := ctrl.fields.ActiveFields()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fields,
	})
}

// ToggleField handles POST /api/v1/fields/:id/toggle - flips a field's
// active flag
func (ctrl *FieldController) ToggleField(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	field, err := ctrl.fields.ToggleField(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    field,
	})
}

// AddOption handles POST /api/v1/fields/:id/options - adds a selectable
// value to a field
func (ctrl *FieldController) AddOption(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req FieldRequest
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

	option, err := ctrl.fields.AddOption(id, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    option,
	})
}

// DeleteField handles DELETE /api/v1/fields/:id - removes a field and all
// of its options
func (ctrl *FieldController) DeleteField(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.fields.DeleteField(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Field deleted",
	})
}
