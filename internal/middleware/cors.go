package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CORSConfig restricts which browser origins may drive the control server.
// An origin entry may be exact, "*", or a "*.domain" suffix pattern.
type CORSConfig struct {
	Origins []string
	Methods []string
	Headers []string
	MaxAge  time.Duration
}

// DefaultCORSConfig allows only the page origin to call the control server.
func DefaultCORSConfig(pageOrigin string) CORSConfig {
	return CORSConfig{
		Origins: []string{pageOrigin},
		Methods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		Headers: []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-CSRFToken"},
		MaxAge:  24 * time.Hour,
	}
}

// CORS answers preflights itself and tags allowed requests with the
// matching origin. Disallowed origins get no CORS headers at all.
func (m Middleware) CORS(cfg CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.Methods, ", ")
	headers := strings.Join(cfg.Headers, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge / time.Second))

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if isOriginAllowed(origin, cfg.Origins) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		if methods != "" {
			c.Header("Access-Control-Allow-Methods", methods)
		}
		if headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", maxAge)
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}

func isOriginAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return false
	}
	for _, a := range allowed {
		switch {
		case a == "*", a == origin:
			return true
		case strings.HasPrefix(a, "*.") && strings.HasSuffix(origin, a[1:]):
			return true
		}
	}
	return false
}
