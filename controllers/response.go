package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-pos-api/services"
)

// serviceError maps state-machine errors onto HTTP statuses. Conflicts carry
// the current occupant so the client can show who holds the table.
func serviceError(c *gin.Context, err error) {
	var conflict *services.TableConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":      conflict.Error(),
			"status":     conflict.Status,
			"reservedBy": conflict.ReservedBy,
			"orderId":    conflict.OrderID,
		})
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrComboNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyItems),
		errors.Is(err, services.ErrEmptyReservedBy),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrOrderNotActive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
