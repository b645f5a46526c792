package media

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// Middleware attaches the strategy's codec to every request context.
// It applies globally, so it must be registered before any handler that
// negotiates payload content.
func Middleware(strategy Strategy) func(http.Handler) http.Handler {
	codec := strategy.Codec()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ctxKey{}, codec)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromRequest returns the codec attached to the request by [Middleware].
// A missing codec means the handler was invoked before its required
// middleware; callers must treat that as a server error, not skip
// content negotiation.
func FromRequest(r *http.Request) (Codec, error) {
	codec, ok := r.Context().Value(ctxKey{}).(Codec)
	if !ok {
		return nil, ErrNoCodec
	}
	return codec, nil
}
