package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPErrorDefaultsToBadRequest(t *testing.T) {
	err := NewHTTPError(110001, "bad", 0)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "bad", err.Error())
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(400, "id", "is required", "must be short")
	assert.Equal(t, "id: is required, must be short", err.Error())
}
