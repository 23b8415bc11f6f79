package service

import (
	"errors"

	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
)

var ErrNoFlightsFound = exception.New(exception.KindNotFound,
	"No flights found for the selected route and dates. Please try a different search.")

// errorMessage is the caller-facing text of a leg failure.
func errorMessage(err error) string {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return err.Error()
}
