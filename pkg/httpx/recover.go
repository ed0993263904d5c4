package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

// Recover turns a panicking handler into a logged 500 so a single bad request
// cannot take the process down.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteError(w, http.StatusInternalServerError, "server_error", "An internal error occurred")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
