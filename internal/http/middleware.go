package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"club-site/internal/domain"
	"club-site/internal/service"
)

const claimsContextKey = "sessionClaims"

// authRequired validates the bearer token and stores its claims in the
// request context. Validation is local computation only, no I/O.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		claims, err := h.tokens.Validate(strings.TrimSpace(token))
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// requireRole guards a route behind a role claim. Must run after authRequired.
func (h *Handler) requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFromContext(c)
		if claims == nil || claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

func claimsFromContext(c *gin.Context) *service.Claims {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
