package web

import (
	"strings"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/domain"
)

// Crumb is a single breadcrumb entry. The current page carries no URL.
type Crumb struct {
	Name string
	URL  string
}

func breadcrumbsFor(path string) []Crumb {
	crumbs := []Crumb{{Name: "Home", URL: "/"}}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		crumbs[0].URL = ""
		return crumbs
	}
	segments := strings.Split(trimmed, "/")
	prefix := ""
	for i, seg := range segments {
		prefix += "/" + seg
		crumb := Crumb{Name: crumbTitle(seg)}
		if i < len(segments)-1 {
			crumb.URL = prefix
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

func crumbTitle(segment string) string {
	words := strings.Split(strings.ReplaceAll(segment, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func baseData(c *gin.Context, title string, extra gin.H) gin.H {
	data := gin.H{
		"Title":       title,
		"LoggedIn":    false,
		"CSRFToken":   "",
		"Breadcrumbs": breadcrumbsFor(c.Request.URL.Path),
	}
	if ident, ok := identityFrom(c); ok {
		data["LoggedIn"] = true
		data["IdentityName"] = ident.Key()
	}
	if token, ok := c.Get(csrfContextKey); ok {
		data["CSRFToken"] = token
	}
	if v, ok := c.Get(categoriesContextKey); ok {
		if categories, ok := v.([]*catalogdomain.Category); ok {
			data["Categories"] = categories
		}
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
