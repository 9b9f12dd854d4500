package middleware

import (
	"net/http"

	"github.com/isamardev/graphify/internal/auth"
	"github.com/isamardev/graphify/internal/transport"
)

// AccessCookie is where the admin access token lives; RefreshCookie is
// scoped to the admin auth routes only.
const (
	AccessCookie  = "graphify_access"
	RefreshCookie = "graphify_refresh"
)

// AdminAuth admits requests carrying either the static admin API key or a
// valid admin access-token cookie. With neither mechanism configured every
// admin route answers 503 rather than silently opening up.
func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if adminKey != "" && r.Header.Get("X-Admin-Key") == adminKey {
				next.ServeHTTP(w, r)
				return
			}

			if manager != nil {
				cookie, err := r.Cookie(AccessCookie)
				if err == nil && cookie.Value != "" {
					claims, err := manager.Parse(cookie.Value)
					if err == nil && claims.Role == "admin" {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}
