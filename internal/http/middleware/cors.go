package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors allows all origins, methods and headers. The frontends consuming this
// API are served from arbitrary hosts.
func Cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}
