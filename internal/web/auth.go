package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	usersdomain "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/domain"
	usersports "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
)

// AuthHandlers serves the login, register, and logout pages.
type AuthHandlers struct {
	users      usersports.Service
	logger     *slog.Logger
	cookieTTL  int
	secureOnly bool
}

// NewAuthHandlers wires the auth pages. cookieTTLSeconds bounds the
// session cookie lifetime and should match the server-side session TTL.
func NewAuthHandlers(users usersports.Service, logger *slog.Logger, cookieTTLSeconds int, secureOnly bool) *AuthHandlers {
	return &AuthHandlers{users: users, logger: logger, cookieTTL: cookieTTLSeconds, secureOnly: secureOnly}
}

func (h *AuthHandlers) ShowLogin(c *gin.Context) {
	if _, ok := identityFrom(c); ok {
		c.Redirect(http.StatusFound, "/purchase")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", baseData(c, "Login", gin.H{
		"Notice": c.Query("registered") == "1",
	}))
}

func (h *AuthHandlers) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	token, err := h.users.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, usersports.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.tmpl", baseData(c, "Login", gin.H{
				"Error":    "Invalid username or password.",
				"Username": username,
			}))
			return
		}
		h.renderFailure(c, err, "login")
		return
	}
	c.SetCookie(SessionCookieName, token, h.cookieTTL, "/", "", h.secureOnly, true)
	c.Redirect(http.StatusFound, "/purchase")
}

func (h *AuthHandlers) ShowRegister(c *gin.Context) {
	if _, ok := identityFrom(c); ok {
		c.Redirect(http.StatusFound, "/purchase")
		return
	}
	c.HTML(http.StatusOK, "register.tmpl", baseData(c, "Register", nil))
}

func (h *AuthHandlers) Register(c *gin.Context) {
	username := c.PostForm("username")
	displayName := c.PostForm("displayName")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := h.users.Register(c.Request.Context(), username, displayName, email, password)
	if err != nil {
		if isRegistrationError(err) {
			c.HTML(http.StatusOK, "register.tmpl", baseData(c, "Register", gin.H{
				"Error":       err.Error(),
				"Username":    username,
				"DisplayName": displayName,
				"Email":       email,
			}))
			return
		}
		h.renderFailure(c, err, "register")
		return
	}
	c.Redirect(http.StatusFound, "/login?registered=1")
}

func (h *AuthHandlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		h.users.Logout(c.Request.Context(), token)
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.secureOnly, true)
	c.Redirect(http.StatusFound, "/")
}

func isRegistrationError(err error) bool {
	return errors.Is(err, usersports.ErrUsernameTaken) ||
		errors.Is(err, usersdomain.ErrEmptyUsername) ||
		errors.Is(err, usersdomain.ErrEmptyPassword) ||
		errors.Is(err, usersdomain.ErrWeakPassword) ||
		errors.Is(err, usersdomain.ErrInvalidEmail)
}

func (h *AuthHandlers) renderFailure(c *gin.Context, err error, op string) {
	if h.logger != nil {
		h.logger.Error(op+" failed", slog.String("error", err.Error()))
	}
	c.HTML(http.StatusInternalServerError, "error.tmpl", baseData(c, "Error", gin.H{
		"Heading": "Something went wrong",
		"Detail":  "Please try again in a moment.",
	}))
}
