package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eventhub/events-api/internal/dto"
	"github.com/eventhub/events-api/internal/service"
	"github.com/labstack/echo/v4"
)

type JoinedEventHandler struct {
	svc service.JoinedEventService
}

func NewJoinedEventHandler(svc service.JoinedEventService) *JoinedEventHandler {
	return &JoinedEventHandler{svc: svc}
}

func (h *JoinedEventHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/join-event", h.JoinEvent)
	e.GET("/joined-events", h.ListJoinedEvents)
	e.DELETE("/joined-events/:id", h.RemoveJoinedEvent)
}

func (h *JoinedEventHandler) JoinEvent(c echo.Context) error {
	var req dto.JoinEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event_id and user_email are required")
	}

	eventID, err := strconv.ParseUint(req.EventID, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	joined, err := h.svc.JoinEvent(c.Request().Context(), uint(eventID), req.UserEmail)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyJoined) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToJoinedEventResponse(joined))
}

func (h *JoinedEventHandler) ListJoinedEvents(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	details, err := h.svc.ListJoinedByUser(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.JoinedEventDetailResponse, len(details))
	for i, d := range details {
		resp[i] = dto.ToJoinedEventDetailResponse(&d.Join, &d.Event)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *JoinedEventHandler) RemoveJoinedEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid joined event id")
	}

	if err := h.svc.RemoveJoinedEvent(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrJoinNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "joined event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{
		Acknowledged: true,
		DeletedCount: 1,
	})
}
