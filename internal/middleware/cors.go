package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the configured front-end origins, including the admin panel,
// with the verbs and headers the managers actually send.
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Admin-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler
}
