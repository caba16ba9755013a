package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tripnest/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware. Handlers take the caller's
// identity from these, never from request bodies.
const (
	CtxUserID  = "authUserID"
	CtxAgentID = "authAgentID"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
	})
}

// bearerToken extracts the token string from the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// tokenMatchesCache compares the token's hash with the one cached at issue
// time. A revoked or superseded token fails here even if its signature is
// still valid.
func tokenMatchesCache(subject, tokenString string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cached, err := utils.GetAuthCacheClient().Get(ctx, utils.AuthCachePrefix+subject).Result()
	if err != nil {
		return false
	}
	return cached == utils.HashToken(tokenString)
}

func jwtAuth(role string, ctxKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		subject, tokenRole, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || tokenRole != role {
			abortUnauthorized(c)
			return
		}

		if !tokenMatchesCache(subject, tokenString) {
			abortUnauthorized(c)
			return
		}

		c.Set(ctxKey, subject)
		c.Next()
	}
}

// JWTAuthUserMiddleware guards routes that require a signed-in user.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return jwtAuth(utils.RoleUser, CtxUserID)
}

// JWTAuthAgentMiddleware guards routes that require a signed-in agent.
func JWTAuthAgentMiddleware() gin.HandlerFunc {
	return jwtAuth(utils.RoleAgent, CtxAgentID)
}
