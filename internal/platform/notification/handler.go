package notification

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/phr/phr/internal/domain/agenda"
	"github.com/phr/phr/internal/validation"
)

// OutboxResolver yields the outbox bound to the request's session.
type OutboxResolver func(echo.Context) *Outbox

// AgendaResolver yields the agenda service bound to the request's session.
type AgendaResolver func(echo.Context) *agenda.Service

type Handler struct {
	resolveOutbox OutboxResolver
	resolveAgenda AgendaResolver
}

func NewHandler(outbox OutboxResolver, agenda AgendaResolver) *Handler {
	return &Handler{resolveOutbox: outbox, resolveAgenda: agenda}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications/outbox", h.ListOutbox)
	g.GET("/notifications/outbox/:id", h.GetMessage)
	g.POST("/notifications/outbox/:id/retry", h.Retry)
	g.GET("/notifications/stats", h.Stats)
	g.GET("/notifications/settings", h.GetSettings)
	g.PUT("/notifications/settings", h.UpdateSettings)
	g.POST("/notifications/agenda", h.QueueAgenda)
}

func (h *Handler) ListOutbox(c echo.Context) error {
	return c.JSON(http.StatusOK, h.resolveOutbox(c).List())
}

func (h *Handler) GetMessage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}
	m, err := h.resolveOutbox(c).Get(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Retry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}
	outbox := h.resolveOutbox(c)
	if err := outbox.Retry(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := outbox.Get(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.resolveOutbox(c).Stats())
}

func (h *Handler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.resolveOutbox(c).Settings())
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var s Settings
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	saved, err := h.resolveOutbox(c).UpdateSettings(s)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, saved)
}

type queueAgendaRequest struct {
	Date string `json:"date"`
}

// QueueAgenda builds the agenda for a date and sends one reminder per
// occurrence through the session's configured channel.
func (h *Handler) QueueAgenda(c echo.Context) error {
	var req queueAgendaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	occs, err := h.resolveAgenda(c).ForDate(c.Request().Context(), req.Date)
	if err != nil {
		return httpError(err)
	}

	msgs, err := h.resolveOutbox(c).QueueForAgenda(c.Request().Context(), occs)
	if err != nil {
		if errors.Is(err, ErrDisabled) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, msgs)
}

func httpError(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, verr)
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
