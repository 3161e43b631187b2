package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"bookings/internal/application/services"
	domainusers "bookings/internal/domain/users"
)

type Server struct {
	e    *echo.Echo
	addr string

	eventsService  *services.EventsService
	bookingService *services.BookingService
}

func NewServer(
	addr string,
	eventsService *services.EventsService,
	bookingService *services.BookingService,
	userResolver UserResolver,
	routerIsRunning func() bool,
	logger zerolog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		e:              e,
		addr:           addr,
		eventsService:  eventsService,
		bookingService: bookingService,
	}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("handling a request")

			err := next(c)

			if err != nil {
				logger.Err(err).
					Str("path", c.Request().URL.Path).
					Msg("request handling error")
			}

			return err
		}
	})

	auth := AuthMiddleware(userResolver)
	organizer := RequireRole(domainusers.RoleOrganizer)
	customer := RequireRole(domainusers.RoleCustomer)

	api := e.Group("/api")
	api.POST("/events", srv.CreateEventHandler, auth, organizer)
	api.PUT("/events/:id", srv.UpdateEventHandler, auth, organizer)
	api.GET("/events", srv.GetEventsHandler, auth, customer)
	api.GET("/events/:id", srv.GetEventHandler, auth, customer)
	api.POST("/events/:id/book", srv.BookEventHandler, auth, customer)
	api.DELETE("/bookings/:id", srv.CancelBookingHandler, auth, customer)

	e.GET("/health", func(c echo.Context) error {
		if !routerIsRunning() {
			return c.String(http.StatusServiceUnavailable, "router is not running")
		}
		return c.String(http.StatusOK, "ok")
	})

	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
