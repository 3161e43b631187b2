package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type CreateEventRequest struct {
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	AvailableTickets int       `json:"available_tickets"`
}

func (s *Server) CreateEventHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var request CreateEventRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	event, err := s.eventsService.Create(ctx, request.Title, request.Date, request.AvailableTickets)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, event)
}
