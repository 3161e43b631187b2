package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainbookings "bookings/internal/domain/bookings"
)

type BookEventResponse struct {
	Message string                 `json:"message"`
	Booking domainbookings.Booking `json:"booking"`
}

func (s *Server) BookEventHandler(c echo.Context) error {
	ctx := c.Request().Context()

	eventId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	booking, err := s.bookingService.BookEvent(ctx, eventId, user.Id)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, BookEventResponse{
		Message: "booking successful",
		Booking: booking,
	})
}
