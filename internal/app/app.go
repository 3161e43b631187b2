package app

import (
	"context"
	"io"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"bookings/internal/application/services"
	"bookings/internal/audit"
	"bookings/internal/config"
	"bookings/internal/dispatcher"
	domainusers "bookings/internal/domain/users"
	"bookings/internal/interfaces/events"
	"bookings/internal/interfaces/http"
	"bookings/internal/observability"
	"bookings/internal/repository"
)

type App struct {
	logger     zerolog.Logger
	router     *message.Router
	srv        *http.Server
	dispatcher *dispatcher.Dispatcher
}

// NewApp wires the whole process: in-memory store, booking engine, the
// in-process event bus and its handlers, the background dispatcher and the
// HTTP server. The audit sink and notifier are injected so tests can observe
// them.
func NewApp(
	cfg *config.Config,
	logger zerolog.Logger,
	auditSink io.Writer,
	notifier dispatcher.Notifier,
	seedUsers []domainusers.User,
) (*App, error) {
	watermillLogger := observability.NewWatermillLogger(logger)

	// Block-until-ack keeps listener fan-out on the publishing call: a
	// booking is not reported successful until its handlers have run.
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            int64(cfg.DispatcherQueueSize),
		BlockPublishUntilSubscriberAck: true,
	}, watermillLogger)

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	// BestEffort sits outside Recoverer so panicking handlers are contained
	// too: logged, acked, never retried.
	router.AddMiddleware(events.BestEffortMiddleware)
	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware(logger))
	router.AddMiddleware(events.LoggingMiddleware)

	eventBus, err := events.NewEventBus(pubSub, watermillLogger)
	if err != nil {
		return nil, err
	}

	eventsRepo := repository.NewEventsRepo()
	bookingsRepo := repository.NewBookingsRepo()
	usersRepo := repository.NewUsersRepo()
	for _, user := range seedUsers {
		if err := usersRepo.Add(context.Background(), user); err != nil {
			return nil, err
		}
	}

	locks := services.NewEventLocks()
	eventsService := services.NewEventsService(eventsRepo, eventBus, locks, logger)
	bookingService := services.NewBookingService(eventsRepo, bookingsRepo, eventBus, locks, logger)

	disp := dispatcher.New(notifier, bookingsRepo, cfg.DispatcherQueueSize, logger)
	auditLog := audit.NewLog(auditSink)

	processor, err := events.NewEventProcessor(router, pubSub, watermillLogger)
	if err != nil {
		return nil, err
	}
	err = processor.AddHandlers(
		events.AuditBookingCreatedHandler(auditLog),
		events.AuditBookingCancelledHandler(auditLog),
		events.AuditEventUpdatedHandler(auditLog),
		events.SendConfirmationHandler(disp),
		events.BroadcastUpdateHandler(disp),
	)
	if err != nil {
		return nil, err
	}

	srv := http.NewServer(
		cfg.HTTPAddr,
		eventsService,
		bookingService,
		usersRepo,
		router.IsRunning,
		logger,
	)

	return &App{
		logger:     logger,
		router:     router,
		srv:        srv,
		dispatcher: disp,
	}, nil
}

// Dispatcher exposes the background queue so tests can flush pending jobs.
func (a *App) Dispatcher() *dispatcher.Dispatcher {
	return a.dispatcher
}

func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting router")

		return a.router.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()

		a.dispatcher.Run(ctx)
		return nil
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("router is running")

		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		<-ctx.Done()

		err := a.srv.Stop(context.Background())
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		return err
	})

	return g.Wait()
}
