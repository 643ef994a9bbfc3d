package controller

import (
	"net/http"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"
	"runtime/debug"

	"go.uber.org/zap"
)

// WithRecover turns a panicking handler into a 500 response with the
// regular error body instead of a dropped connection.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rv := recover()
			if rv == nil {
				return
			}
			if rv == http.ErrAbortHandler { //nolint: errorlint, err113
				panic(rv)
			}

			logger.Error(r.Context(), "handler panicked",
				zap.Any("panic", rv),
				zap.ByteString("stack", debug.Stack()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"` + serrors.ErrInternal.Error() + `","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
