package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/tapforge/tapforge/pkg/log"
)

type ContextKey int

const (
	// RequestIDContextKey is the key used to store the request id in the request context
	RequestIDContextKey ContextKey = iota
)

// RequestID assigns each request a uuid, exposes it on the response
// and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), RequestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs every request at debug level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(RequestIDContextKey).(string)
		log.Debug("%s %s (request %s)", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

// CORS allows the browser UI, served from another origin, to call
// the API. The engine has no credentials to protect.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
