package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/token"
)

// AuthCookieName is the session cookie carrying the signed token.
const AuthCookieName = "auth_token"

// AuthMiddleware requires a valid token and attaches the resolved identity
// to the request context. The role always comes from the database, not from
// the token claim, so role changes take effect without reissuing tokens.
func AuthMiddleware(tokens *token.Service, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveClaims(c, tokens)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}
		if user.IsBlocked {
			response.Error(c, http.StatusForbidden, "Account is blocked", nil)
			c.Abort()
			return
		}

		attachIdentity(c, user)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present but never
// rejects the request. Handlers behind it decide what an anonymous caller
// gets; /auth/current answers 404.
func OptionalAuth(tokens *token.Service, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveClaims(c, tokens)
		if ok {
			if user, err := authUC.GetUser(c.Request.Context(), claims.UserID); err == nil && !user.IsBlocked {
				attachIdentity(c, user)
			}
		}
		c.Next()
	}
}

func resolveClaims(c *gin.Context, tokens *token.Service) (token.Claims, bool) {
	var tokenString string

	// 1. Try the Authorization header
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else {
		// 2. Fall back to the session cookie
		if cookie, err := c.Cookie(AuthCookieName); err == nil {
			tokenString = cookie
		}
	}

	if tokenString == "" {
		return token.Claims{}, false
	}

	claims, err := tokens.Parse(tokenString)
	if err != nil {
		return token.Claims{}, false
	}
	return claims, true
}

// attachIdentity threads the identity through the request context as
// explicit values; usecases read it from there, never from shared state.
// The gin keys are set too so logging middleware can reach them cheaply.
func attachIdentity(c *gin.Context, user *domain.User) {
	c.Set(string(domain.KeyUserID), user.ID)
	c.Set(string(domain.KeyUserEmail), user.Email)
	c.Set(string(domain.KeyUserRole), user.Role)

	ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
	c.Request = c.Request.WithContext(ctx)
}
