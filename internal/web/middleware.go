package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogports "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/ports"
	usersdomain "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/domain"
	usersports "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

const (
	identityContextKey   = "web.identity"
	categoriesContextKey = "web.categories"
)

// LoadIdentity resolves the session cookie into an identity when one is
// present. Requests without a valid session continue anonymously.
func LoadIdentity(users usersports.Service, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		ident, err := users.IdentityForToken(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, usersports.ErrSessionNotFound) && logger != nil {
				logger.Warn("resolving session", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}
		c.Set(identityContextKey, ident)
		c.Next()
	}
}

// RequireAuth redirects anonymous browser requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := identityFrom(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadCategories attaches the category list so the navigation bar can
// render on every page.
func LoadCategories(catalog catalogports.Service, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.Categories(c.Request.Context())
		if err != nil {
			if logger != nil {
				logger.Warn("loading categories", slog.String("error", err.Error()))
			}
		} else {
			c.Set(categoriesContextKey, categories)
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) (usersdomain.Identity, bool) {
	v, ok := c.Get(identityContextKey)
	if !ok {
		return usersdomain.Identity{}, false
	}
	ident, ok := v.(usersdomain.Identity)
	return ident, ok && !ident.IsZero()
}
