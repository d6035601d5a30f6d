package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig controls cross-origin access to the API.
type CORSConfig struct {
	// AllowedOrigins is an explicit whitelist; no entry means no
	// cross-origin access at all. Wildcards are not supported, the
	// Authorization header makes "*" too dangerous to offer.
	AllowedOrigins []string

	// AllowedMethods and AllowedHeaders are echoed on preflight.
	AllowedMethods []string
	AllowedHeaders []string

	// ExposedHeaders names response headers scripts may read.
	ExposedHeaders []string

	// MaxAge caches the preflight result in the browser, in seconds.
	MaxAge int
}

// DefaultCORSConfig covers the three JSON endpoints: bearer tokens
// travel in the Authorization header and X-Request-ID is echoed back
// for correlation.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: nil,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         86400,
	}
}

// CORS returns a middleware enforcing the configured origin whitelist.
// Preflight requests from allowed origins are answered with 204 and
// never reach the handlers; preflights from other origins get 403.
// Non-preflight requests from unlisted origins pass through without
// CORS headers, which makes the browser discard the response.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	exposed := strings.Join(cfg.ExposedHeaders, ", ")

	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[strings.ToLower(origin)] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Same-origin request, nothing to negotiate.
				next.ServeHTTP(w, r)
				return
			}

			if !allowed[strings.ToLower(origin)] {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			if exposed != "" {
				w.Header().Set("Access-Control-Expose-Headers", exposed)
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				if cfg.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
