package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// PanelTokenHeader carries the shared panel access token. WebSocket and
// download clients that cannot set headers may use the token query param.
const PanelTokenHeader = "X-Panel-Token"

// RequirePanelToken guards the review panel with the configured shared
// secret. The secret may be stored as a bcrypt hash (see cmd/hash-token) so
// the plaintext never sits in the environment; plain values are compared in
// constant time.
//
// An empty secret disables the check entirely. That permissive default is
// deliberate — locking down the panel is a deployment decision, not
// application logic.
func RequirePanelToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		token := c.GetHeader(PanelTokenHeader)
		if token == "" {
			token = c.Query("token")
		}

		if !tokenMatches(secret, token) {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrPanelAccessDenied)
			return
		}
		c.Next()
	}
}

func tokenMatches(secret, token string) bool {
	if token == "" {
		return false
	}
	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(token)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(token)) == 1
}
