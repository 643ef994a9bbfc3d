package controller

import (
	"net/http"
	"slices"
)

// WithCORS returns a middleware that sets CORS headers on every response and
// short-circuits OPTIONS preflight requests with 204 No Content. With no
// origins every origin is allowed; otherwise only the listed ones are echoed
// back and other origins get no CORS headers.
func WithCORS(next http.Handler, origins ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		switch origin := r.Header.Get("Origin"); {
		case len(origins) == 0:
			h.Set("Access-Control-Allow-Origin", "*")
		case slices.Contains(origins, origin):
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		default:
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}
			next.ServeHTTP(w, r)

			return
		}

		h.Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-Id")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		h.Set("Access-Control-Expose-Headers", "X-Request-Id")

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
