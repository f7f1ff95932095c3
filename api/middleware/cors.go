package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:5000", // local dev, frontend served by vite
	"http://localhost:5173",
	"https://walksandlawns.com",
	"https://www.walksandlawns.com",
}

// CORS returns middleware that applies the API's allowed origin policy.
// Credentials are allowed because the dashboard authenticates with a
// session cookie.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
