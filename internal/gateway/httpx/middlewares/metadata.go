// Package middlewares carries the gateway's request metadata plumbing.
package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// contextKey is unexported so keys from this package cannot collide with
// keys from other packages using the same string value.
type contextKey string

const (
	HeaderXIdempotencyKey = "X-Idempotency-Key"

	contextKeyRequestID      contextKey = "request_id"
	contextKeyIdempotencyKey contextKey = "idempotency_key"
)

// AttachRequestMetadata copies the chi request id and the client-supplied
// idempotency key into typed context values for downstream handlers.
func AttachRequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), contextKeyRequestID, middleware.GetReqID(r.Context()))
		ctx = context.WithValue(ctx, contextKeyIdempotencyKey, r.Header.Get(HeaderXIdempotencyKey))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the request id attached by AttachRequestMetadata.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// IdempotencyKey returns the idempotency key attached by
// AttachRequestMetadata; empty when the client sent none.
func IdempotencyKey(ctx context.Context) string {
	key, _ := ctx.Value(contextKeyIdempotencyKey).(string)
	return key
}
