package v1

import (
	"errors"
	"net/http"

	"github.com/kasku/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrUnauthenticated) || errors.Is(err, models.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errMonthWithoutYear  = errors.New("month and year must be set together")
	errPasswordRequired  = errors.New("the password is required")
	errCurrentPassword   = errors.New("the current password is required to set a new password")
	errTypeFilterInvalid = errors.New("the type filter must be one of 'income' or 'expense'")

	errCategoryTypeImmutable = errors.New("the type of a category cannot be changed")
)
