package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogports "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/ports"
)

// CatalogHandlers serves the public browsing pages.
type CatalogHandlers struct {
	catalog catalogports.Service
	logger  *slog.Logger
}

func NewCatalogHandlers(catalog catalogports.Service, logger *slog.Logger) *CatalogHandlers {
	return &CatalogHandlers{catalog: catalog, logger: logger}
}

func (h *CatalogHandlers) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", baseData(c, "Home", nil))
}

func (h *CatalogHandlers) ListCategories(c *gin.Context) {
	c.HTML(http.StatusOK, "products.tmpl", baseData(c, "Products", nil))
}

func (h *CatalogHandlers) ShowCategory(c *gin.Context) {
	slug := c.Param("slug")
	category, products, err := h.catalog.ProductsForCategory(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			NotFoundPage(c)
			return
		}
		if h.logger != nil {
			h.logger.Error("loading category", slog.String("slug", slug), slog.String("error", err.Error()))
		}
		c.HTML(http.StatusInternalServerError, "error.tmpl", baseData(c, "Error", gin.H{
			"Heading": "Something went wrong",
			"Detail":  "The catalog could not be loaded. Please try again.",
		}))
		return
	}
	c.HTML(http.StatusOK, "category.tmpl", baseData(c, category.Title, gin.H{
		"Category": category,
		"Products": products,
	}))
}

// NotFoundPage renders the catch-all 404 page.
func NotFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.tmpl", baseData(c, "Not Found", gin.H{
		"Heading": "Page not found",
		"Detail":  "The page you asked for does not exist.",
	}))
}
