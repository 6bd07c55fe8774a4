package server

import (
	"net/http"
	"strings"

	"github.com/agbru/seqcalc/internal/sequence"
)

// SecurityConfig holds the security-related settings of the HTTP server.
type SecurityConfig struct {
	// EnableCORS enables cross-origin resource sharing headers.
	EnableCORS bool
	// AllowedOrigins lists the origins allowed to call the API ("*" for any).
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised for CORS.
	AllowedMethods []string
	// MaxTerms is the largest term count the API accepts, mirroring the
	// engine's validation bound.
	MaxTerms int
}

// DefaultSecurityConfig returns the standard security configuration:
// permissive CORS (the API is public and read-only) and hardened response
// headers.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		MaxTerms:       sequence.MaxTerms,
	}
}

// SecurityMiddleware wraps a handler with security response headers and CORS
// handling. OPTIONS preflight requests are answered directly.
//
// Parameters:
//   - config: The security configuration.
//   - next: The handler to wrap.
//
// Returns:
//   - http.HandlerFunc: The wrapped handler.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := allowedOrigin(config, r.Header.Get("Origin")); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				if origin != "*" {
					w.Header().Add("Vary", "Origin")
				}
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin resolves the Access-Control-Allow-Origin value for a request
// origin, or empty when the origin is not allowed.
func allowedOrigin(config SecurityConfig, origin string) string {
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin && origin != "" {
			return origin
		}
	}
	return ""
}
