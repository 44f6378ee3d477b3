package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Content-Security-Policy directives. img-src allows data: URIs so that
// clients can render the base64 payloads inline.
var csp = map[string][]string{
	"default-src": {"'self'"},
	"img-src":     {"*", "data:"},
	"connect-src": {"'self'"},
	"script-src":  {"'self'", "'unsafe-inline'"},
	"style-src":   {"'self'", "'unsafe-inline'"},
}

func parsePolicy(policy map[string][]string) string {
	// Keep a stable order
	sections := []string{"default-src", "img-src", "connect-src", "script-src", "style-src"}
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		parts = append(parts, section+" "+strings.Join(policy[section], " "))
	}
	return strings.Join(parts, "; ")
}

var cspHeader = parsePolicy(csp)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware(c *gin.Context) {
	c.Header("Content-Security-Policy", cspHeader)
	c.Header("Cross-Origin-Opener-Policy", "same-origin")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Header("Strict-Transport-Security", "max-age=31556926; includeSubDomains")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-XSS-Protection", "1; mode=block")
	c.Next()
}
