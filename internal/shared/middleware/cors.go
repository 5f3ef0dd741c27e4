package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/cors"
)

// CORS lets browsers on the allowed hosts call the API. With no allowed
// hosts configured every origin is accepted.
func CORS(allowedHosts []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         3600,
	}
	if len(allowedHosts) == 0 {
		opts.AllowedOrigins = []string{"*"}
	} else {
		opts.AllowOriginFunc = func(origin string) bool {
			return isOriginAllowed(origin, allowedHosts)
		}
	}
	return cors.New(opts).Handler
}

func isOriginAllowed(origin string, allowedHosts []string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	hostWithPort := strings.ToLower(u.Host)

	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == hostWithPort || allowed == host {
			return true
		}
	}
	return false
}
