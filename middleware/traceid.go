package middleware

import (
	"net/http"
	"strconv"

	"github.com/godruoyi/go-snowflake"
)

const TraceIDHeader = "X-Trace-Id"

// TraceIDHeaderMiddleware stamps every response with a request-scoped
// snowflake so a failed call can be matched against the logs.
func TraceIDHeaderMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(TraceIDHeader, strconv.FormatUint(snowflake.ID(), 10))
		next.ServeHTTP(w, r)
	})
}
