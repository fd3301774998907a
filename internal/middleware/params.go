package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type intParamKey string

// IntParam returns route middleware that parses the chi URL parameter name as a
// base-10 int64. Requests whose segment does not parse are rejected with
// 400 INVALID_ID before the handler runs; otherwise the value is stored in the
// request context for IntParamFromContext.
func IntParam(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, name)
			value, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Path parameter '"+name+"' must be an integer")
				return
			}

			ctx := context.WithValue(r.Context(), intParamKey(name), value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IntParamFromContext returns the value parsed by IntParam(name).
func IntParamFromContext(ctx context.Context, name string) (int64, bool) {
	value, ok := ctx.Value(intParamKey(name)).(int64)
	return value, ok
}
