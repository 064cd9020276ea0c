package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func panelRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/panel", RequirePanelToken(secret), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func doPanelRequest(r *gin.Engine, header, query string) int {
	url := "/panel"
	if query != "" {
		url += "?token=" + query
	}
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if header != "" {
		req.Header.Set(PanelTokenHeader, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestPanelTokenPlainSecret(t *testing.T) {
	r := panelRouter("s3cret")

	cases := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"valid header", "s3cret", "", http.StatusOK},
		{"valid query", "", "s3cret", http.StatusOK},
		{"wrong token", "nope", "", http.StatusUnauthorized},
		{"missing token", "", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := doPanelRequest(r, tc.header, tc.query); got != tc.want {
				t.Fatalf("status = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPanelTokenBcryptSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	r := panelRouter(string(hash))

	if got := doPanelRequest(r, "s3cret", ""); got != http.StatusOK {
		t.Fatalf("valid token status = %d", got)
	}
	if got := doPanelRequest(r, "wrong", ""); got != http.StatusUnauthorized {
		t.Fatalf("wrong token status = %d", got)
	}
}

func TestPanelTokenPermissiveDefault(t *testing.T) {
	r := panelRouter("")
	if got := doPanelRequest(r, "", ""); got != http.StatusOK {
		t.Fatalf("unconfigured secret status = %d, want open access", got)
	}
}
