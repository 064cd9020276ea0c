package middleware

import (
	"net/http"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/response"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the client-held opaque token for the in-flight
	// assessment. The token identifies state server-side; it carries no
	// data itself.
	SessionCookie = "vocatest_session"
	// SessionHeader lets non-browser clients pass the token explicitly.
	SessionHeader = "X-Session-Token"

	// ContextKeySessionToken is the Gin context key for the session token.
	ContextKeySessionToken = "session_token"
)

// RequireSession extracts the session token from the cookie or header and
// rejects requests without one. It does not load the session — resolving
// the token (and reporting expiry) is the flow's job.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractSessionToken(c)
		if token == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionRequired)
			return
		}
		c.Set(ContextKeySessionToken, token)
		c.Next()
	}
}

// GetSessionToken retrieves the session token from the Gin context.
func GetSessionToken(c *gin.Context) string {
	val, exists := c.Get(ContextKeySessionToken)
	if !exists {
		return ""
	}
	token, _ := val.(string)
	return token
}

func extractSessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	return c.GetHeader(SessionHeader)
}
