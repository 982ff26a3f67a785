package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pduarte/aviacao/internal/domain"
)

// respondError writes the {kind, message} error body. Kinds are a stable
// contract; messages are not. Unexpected errors are logged and surface as a
// generic internal error.
func respondError(c *gin.Context, err error) {
	kind := domain.ErrorKind(err)
	message := err.Error()

	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrSameCity),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrSaleAfterDeparture):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrNoSeatAvailable),
		errors.Is(err, domain.ErrSeatClassMismatch),
		errors.Is(err, domain.ErrAircraftMismatch):
		status = http.StatusConflict
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		status = http.StatusInternalServerError
		message = "internal error"
	}

	c.JSON(status, gin.H{"kind": kind, "message": message})
}
