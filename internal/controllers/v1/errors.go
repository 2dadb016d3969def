package v1

import (
	"errors"
	"net/http"

	"github.com/flatshare/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid   = errors.New("the month query parameter must be in the format YYYY-MM")
	errAmountFraction = errors.New("the amount must not have more than two decimal places")
	errBalanceInvalid = errors.New("the flat contains expenses that cannot be balanced")
)

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
