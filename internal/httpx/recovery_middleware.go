package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"bookcatalog/internal/platform/logging"
)

// RecoveryMiddleware turns a panic into a 500 response. It must be the
// outermost middleware so the wrapped writer can tell whether a header was
// already sent.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrap(w)
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				logging.FromContext(r.Context()).Error("panic recovered",
					"request_id", rw.Header().Get(requestIDHeader),
					"error", fmt.Sprint(err),
					"stack", string(debug.Stack()),
				)

				if !rw.wroteHeader() {
					JSONError(rw, http.StatusInternalServerError, "Internal server error")
				}
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
