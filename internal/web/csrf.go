package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CSRFCookieName is the double-submit cookie backing the form token.
const CSRFCookieName = "csrf_token"

const (
	csrfFormField  = "_csrf"
	csrfContextKey = "web.csrf"
)

// CSRFProtect guards the HTML forms with a double-submit cookie: safe
// methods receive a token cookie, state-changing requests must echo the
// token back in the form body. The JSON API is routed around this
// middleware; it is protected by CORS and its non-form content type.
func CSRFProtect(secureOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			token, err := c.Cookie(CSRFCookieName)
			if err != nil || token == "" {
				token, err = newCSRFToken()
				if err != nil {
					c.AbortWithStatus(http.StatusInternalServerError)
					return
				}
				c.SetCookie(CSRFCookieName, token, 0, "/", "", secureOnly, true)
			}
			c.Set(csrfContextKey, token)
			c.Next()
			return
		}

		cookie, err := c.Cookie(CSRFCookieName)
		if err != nil || cookie == "" || !tokensMatch(cookie, c.PostForm(csrfFormField)) {
			c.HTML(http.StatusForbidden, "error.tmpl", baseData(c, "Forbidden", gin.H{
				"Heading": "Request blocked",
				"Detail":  "Your form session expired. Go back and try again.",
			}))
			c.Abort()
			return
		}
		c.Set(csrfContextKey, cookie)
		c.Next()
	}
}

func newCSRFToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate csrf token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func tokensMatch(cookie, form string) bool {
	if form == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie), []byte(form)) == 1
}
