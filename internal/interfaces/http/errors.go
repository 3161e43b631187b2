package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bookings/internal/domain"
)

// mapError translates engine errors into transport status codes. Anything
// unrecognized is an internal error.
func mapError(err error) error {
	var validationErr domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, domain.ErrSoldOut):
		return echo.NewHTTPError(http.StatusConflict, "booking failed: no tickets available")
	case errors.Is(err, domain.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	case errors.Is(err, domain.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	default:
		return err
	}
}
