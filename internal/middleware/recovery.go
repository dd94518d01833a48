package middleware

import (
	"fmt"
	"time"

	"realtime-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 envelope and reports it.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.Error(c, fmt.Errorf("panic: %v", err), m.discord)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// Logger writes one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Debugf(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
