package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", contentTypeJSON)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client. Application errors
// carry their own status and kind; anything else is a 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr  exception.ApplicationError
		status  = http.StatusInternalServerError
		message = "internal server error"
		kind    string
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		message = appErr.Message
		kind = string(appErr.Kind)
	} else {
		slog.ErrorContext(ctx, "unhandled error", slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", contentTypeJSON)
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Error: message,
		Kind:  kind,
	})
}
