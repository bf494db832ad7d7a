package agenda

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
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
	g.GET("/agenda", h.Get)
}

// Get serves ?date=2006-01-02 for a single day, or ?from=&to= for a range.
func (h *Handler) Get(c echo.Context) error {
	svc := h.resolve(c)
	ctx := c.Request().Context()

	from, to := c.QueryParam("from"), c.QueryParam("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "both from and to are required")
		}
		occs, err := svc.ForRange(ctx, from, to)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, occs)
	}

	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}
	occs, err := svc.ForDate(ctx, date)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, occs)
}

func httpError(err error) error {
	if errors.Is(err, ErrInvalidDate) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
