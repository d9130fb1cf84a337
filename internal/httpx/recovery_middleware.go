package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a handler panic into a 500 error envelope.
// It must sit inside AccessLogMiddleware so the header state is visible.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("panic recovered: request_id=%s error=%v stack=%s", RequestIDFrom(r), rec, debug.Stack())

			if rw, ok := w.(*statusRecorder); ok && rw.wrote {
				return
			}
			JSONError(w, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
