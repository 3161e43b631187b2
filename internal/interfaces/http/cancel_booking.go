package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type CancelBookingResponse struct {
	Message string `json:"message"`
}

func (s *Server) CancelBookingHandler(c echo.Context) error {
	ctx := c.Request().Context()

	bookingId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	if err := s.bookingService.CancelBooking(ctx, bookingId); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, CancelBookingResponse{Message: "booking cancelled"})
}
