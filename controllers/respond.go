package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lapizzeria/orders-api/services"
)

// respondServiceError translates the service error taxonomy into the API
// envelope: validation errors are 400, missing records are 404, and
// anything else is a store failure surfaced as 500.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    ve.Code,
				"message": ve.Message,
			},
		})
		return
	}

	var nfe *services.NotFoundError
	if errors.As(err, &nfe) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": nfe.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "A database error occurred",
		},
	})
}

// parseIDParam reads the :id URL parameter. It writes the error response
// itself and reports ok=false when the parameter is missing or not numeric.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "A numeric id is required",
			},
		})
		return 0, false
	}
	return uint(id), true
}
