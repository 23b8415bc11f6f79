package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/transport"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
)

// Binder is a request DTO that render.Bind can decode and validate.
type Binder[T any] interface {
	*T
	render.Binder
}

// MakeHandlerFunc adapts a go-kit endpoint to an http.HandlerFunc using
// the shared error encoder.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
		kithttp.ServerErrorHandler(transport.ErrorHandlerFunc(logError)),
	).ServeHTTP
}

// DecodeRequest decodes the JSON body into a *T and runs its Bind hook.
// Malformed bodies are reported as bad requests.
func DecodeRequest[T any, PT Binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		if exception.KindOf(err) != "" {
			return nil, err
		}

		return nil, exception.Wrap(exception.KindBadRequest, "invalid request body", err)
	}

	return req, nil
}

func logError(ctx context.Context, err error) {
	if exception.KindOf(err) == "" {
		// ErrorResponse logs these itself
		return
	}

	slog.WarnContext(ctx, "request failed", slog.Any("error", err))
}
