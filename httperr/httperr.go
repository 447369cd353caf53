// Package httperr holds the error taxonomy shared by all controllers and the
// single place where errors become HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrNotFound covers both a missing entity and an entity outside the
	// caller's visibility scope. The two are indistinguishable on purpose.
	ErrNotFound = errors.New("not found")

	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationError is recoverable: the caller re-presents the form with the
// field messages attached and the user may resubmit.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}

func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Render writes err as a JSON response with the matching status code.
func Render(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "fields": vErr.Fields})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "403 access denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
