package middleware

import (
	"net/http"
	"runtime/debug"

	"media-browser/internal/logging"
)

// Recover converts a handler panic into a 500 and logs the stack. The
// connection-abort sentinel is re-raised so net/http can drop the client.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				logging.Error("panic serving %s %s: %v\n%s",
					sanitizeLogField(r.Method), sanitizeLogField(r.URL.Path), err, debug.Stack())
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
