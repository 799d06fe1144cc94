package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	allowHeaders = "Content-Type, Authorization, true"
	allowMethods = "GET, POST, PATCH, DELETE, OPTIONS"
)

// CORS answers preflight requests and echoes the allowed origin.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	})
}

// AccessControl stamps the allowed headers and methods on every response,
// errors included. Headers must be set before the handler writes.
func AccessControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		c.Next()
	}
}
