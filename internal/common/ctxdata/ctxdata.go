// Package ctxdata carries request-scoped identifiers (correlation id) through
// context so every layer logs and traces with the same id.
package ctxdata

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	correlationIDKey contextKey = "correlation-id"

	HeaderCorrelationID = "X-Correlation-Id"
)

type Setter func(ctx context.Context) context.Context

func Sets(ctx context.Context, setters ...Setter) context.Context {
	for _, set := range setters {
		ctx = set(ctx)
	}
	return ctx
}

func SetCorrelationId(id string) Setter {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, correlationIDKey, id)
	}
}

func GetCorrelationId(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIDKey).(string); ok {
		return v
	}
	return ""
}

// SetContextFromHTTP propagates the inbound correlation id, generating a new
// one when the caller did not supply any.
func SetContextFromHTTP(ctx context.Context, req *http.Request) context.Context {
	id := req.Header.Get(HeaderCorrelationID)
	if id == "" {
		id = uuid.New().String()
	}
	return Sets(ctx, SetCorrelationId(id))
}
