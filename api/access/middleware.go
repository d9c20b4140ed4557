// Package access guards routes that need a solution token.
package access

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextTokenClaims is the key used to store token claims in the Gin context.
	ContextTokenClaims = "tokenClaims"
)

// Authorize rejects requests without a valid bearer token and stores the
// decoded claims under ContextTokenClaims.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextTokenClaims, claims)
		c.Next()
	}
}

// Claims returns the claims stored by Authorize.
func Claims(c *gin.Context) (map[string]interface{}, bool) {
	raw, ok := c.Get(ContextTokenClaims)
	if !ok {
		return nil, false
	}
	claims, ok := raw.(map[string]interface{})
	return claims, ok
}
