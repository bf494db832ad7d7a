package catalog

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Handler serves the reference catalogs. Unlike the record handlers, the
// catalog service is shared across sessions.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/alternatives", h.FindAlternatives)
	g.GET("/alternatives/suggestions", h.Suggestions)
	g.GET("/resources", h.Resources)
	g.GET("/resources/categories", h.Categories)
}

func (h *Handler) FindAlternatives(c echo.Context) error {
	name := c.QueryParam("name")
	if strings.TrimSpace(name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name query parameter is required")
	}
	return c.JSON(http.StatusOK, h.svc.FindAlternatives(name))
}

func (h *Handler) Suggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Suggestions())
}

// Resources serves ?category= as an exact filter, otherwise ?q= as a
// substring search. The searched flag lets callers tell an empty query apart
// from a search that found nothing.
func (h *Handler) Resources(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return c.JSON(http.StatusOK, map[string]any{
			"searched": true,
			"data":     h.svc.FilterByCategory(category),
		})
	}
	q := c.QueryParam("q")
	return c.JSON(http.StatusOK, map[string]any{
		"searched": strings.TrimSpace(q) != "",
		"data":     h.svc.SearchResources(q),
	})
}

func (h *Handler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Categories())
}
