package middleware

import (
	"net/http"
	"strings"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AccessTokenCookie is the cookie checked when no Authorization header is present.
const AccessTokenCookie = "access_token"

// Attach resolves the request's Principal from a bearer token or session
// cookie and stores it in the request context. It never rejects: the
// classifiers below decide admission. An invalid or expired token simply
// leaves the request anonymous.
func Attach(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenStr = cookie
			}
		}
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := jwtService.ParseAccessToken(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		c.Set(principalKey, &entity.Principal{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Role:    claims.Role,
			Premium: claims.Premium,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// PrincipalFromContext returns the Principal attached to the request, if any.
func PrincipalFromContext(c *gin.Context) (*entity.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*entity.Principal)
	return p, ok && p != nil
}

// RequireAnonymous admits only requests with no attached Principal. It keeps
// a logged-in user out of the register/login flows.
func RequireAnonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFromContext(c); ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "already authenticated"})
			return
		}
		c.Next()
	}
}

// RequireAuthenticated admits only requests with an attached Principal.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin admits only requests whose Principal has the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}
