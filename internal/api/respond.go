package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sociable/social-api/internal/service"
)

// writeError maps service errors onto HTTP statuses. Validation failures and
// not-found conditions carry their message to the client; anything else is a
// generic 500 so internals do not leak.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
