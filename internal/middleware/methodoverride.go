package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride rewrites multipart POSTs carrying a _method=PUT field (the
// way browser FormData updates arrive) into real PUTs before routing.
func MethodOverride() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				if err := r.ParseMultipartForm(32 << 20); err == nil {
					if override := strings.ToUpper(r.FormValue("_method")); override == http.MethodPut || override == http.MethodPatch || override == http.MethodDelete {
						r.Method = override
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
