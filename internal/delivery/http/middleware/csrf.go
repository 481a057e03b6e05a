package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/response"
)

const (
	// CSRFTokenCookieName is the cookie holding the double-submit token.
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName must echo the cookie value on mutating requests.
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength in bytes (32 bytes = 64 hex chars).
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token cookie lives.
	CSRFTokenExpiry = 24 * time.Hour
)

func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern. The session
// cookie travels automatically with cross-site requests, so every mutating
// request must also carry the csrf_token cookie value in the X-CSRF-Token
// header, which an attacker on another origin cannot read.
//
// Signup and signin are exempt: callers have no session yet, and those
// routes sit behind the strict fail-closed rate limiter instead.
func CSRFMiddleware() gin.HandlerFunc {
	exemptPaths := map[string]bool{
		"/v1/auth/signup": true,
		"/v1/auth/signin": true,
		"/v1/health":      true,
	}

	return func(c *gin.Context) {
		if exemptPaths[c.Request.URL.Path] {
			ensureCSRFCookie(c)
			c.Next()
			return
		}

		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}
			setCSRFCookie(c, newToken)
			csrfCookie = newToken
		}

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFTokenHeaderName)
		if headerToken == "" {
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}
		if headerToken != csrfCookie {
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func ensureCSRFCookie(c *gin.Context) {
	if cookie, err := c.Cookie(CSRFTokenCookieName); err == nil && cookie != "" {
		return
	}
	if newToken, err := generateCSRFToken(); err == nil {
		setCSRFCookie(c, newToken)
	}
}

// setCSRFCookie leaves the cookie readable by JS (HttpOnly=false) so the
// front-end can copy it into the header.
func setCSRFCookie(c *gin.Context, token string) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CSRFTokenCookieName, token, int(CSRFTokenExpiry.Seconds()), "/", "", secure, false)
}
