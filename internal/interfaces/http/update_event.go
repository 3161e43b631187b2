package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainevents "bookings/internal/domain/events"
)

func (s *Server) UpdateEventHandler(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var patch domainevents.Patch
	if err := c.Bind(&patch); err != nil {
		return err
	}

	event, err := s.eventsService.Update(ctx, id, patch)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, event)
}
