package prescription

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phr/phr/internal/validation"
)

// ServiceResolver yields the service bound to the request's session.
type ServiceResolver func(echo.Context) *Service

type Handler struct {
	resolve ServiceResolver
}

func NewHandler(resolve ServiceResolver) *Handler {
	return &Handler{resolve: resolve}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/prescriptions/import", h.Import)
}

func (h *Handler) Import(c echo.Context) error {
	var x Extraction
	if err := c.Bind(&x); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.resolve(c).Import(c.Request().Context(), x)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}
