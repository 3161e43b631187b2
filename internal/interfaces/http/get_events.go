package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) GetEventsHandler(c echo.Context) error {
	events, err := s.eventsService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, events)
}
