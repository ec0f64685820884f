package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/eventhub/events-api/internal/dto"
	"github.com/eventhub/events-api/internal/models"
	"github.com/eventhub/events-api/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/events", h.CreateEvent)
	e.GET("/events", h.ListEvents)
	e.GET("/events/:id", h.GetEvent)
	e.PATCH("/events/:id", h.UpdateEvent)
	e.DELETE("/events/:id", h.DeleteEvent)
	e.GET("/upcoming-events", h.ListUpcomingEvents)
	e.GET("/my-events", h.ListEventsByOrganizer)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "title and event_date are required")
	}

	eventDate, err := dto.ParseEventDate(req.EventDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event_date must be a valid timestamp")
	}

	event := &models.Event{
		Title:          req.Title,
		EventDate:      eventDate,
		Description:    req.Description,
		EventType:      req.EventType,
		Thumbnail:      req.Thumbnail,
		Location:       req.Location,
		EventDetails:   req.EventDetails,
		OrganizerName:  req.OrganizerName,
		OrganizerEmail: req.OrganizerEmail,
		OrganizerPhoto: req.OrganizerPhoto,
		Status:         req.Status,
	}
	if req.CreatedAt != "" {
		if createdAt, err := dto.ParseEventDate(req.CreatedAt); err == nil {
			event.CreatedAt = createdAt
		}
	}

	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.CreateEventResponse{
		Acknowledged: true,
		InsertedID:   event.ID,
	})
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	event, err := h.svc.GetEvent(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var eventDate time.Time
	if req.EventDate != "" {
		eventDate, err = dto.ParseEventDate(req.EventDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "event_date must be a valid timestamp")
		}
	}

	event := &models.Event{
		Title:          req.Title,
		EventDate:      eventDate,
		Description:    req.Description,
		EventType:      req.EventType,
		Thumbnail:      req.Thumbnail,
		Location:       req.Location,
		EventDetails:   req.EventDetails,
		OrganizerName:  req.OrganizerName,
		OrganizerEmail: req.OrganizerEmail,
		OrganizerPhoto: req.OrganizerPhoto,
		Status:         req.Status,
	}

	modified, err := h.svc.UpdateEvent(c.Request().Context(), uint(id), event)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.UpdateEventResponse{
		Acknowledged:  true,
		MatchedCount:  modified,
		ModifiedCount: modified,
	})
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	deleted, err := h.svc.DeleteEvent(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{
		Acknowledged: true,
		DeletedCount: deleted,
	})
}

func (h *EventHandler) ListUpcomingEvents(c echo.Context) error {
	events, err := h.svc.ListUpcomingEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) ListEventsByOrganizer(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	events, err := h.svc.ListEventsByOrganizer(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}
