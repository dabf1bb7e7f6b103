package handlers

import (
	"errors"
	"net/http"

	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service error kinds onto HTTP statuses. Validation
// failures carry enough detail to identify the offending input; anything
// unrecognized is a 500 without internals leaking to the client.
func respondServiceError(c *gin.Context, err error) {
	var itemNotFound *services.ItemNotFoundError
	var itemUnavailable *services.ItemUnavailableError
	var invalidTransition *services.InvalidTransitionError

	switch {
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPrice),
		errors.As(err, &itemUnavailable),
		errors.As(err, &invalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrInvalidToken),
		errors.As(err, &itemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
