package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bookings/internal/app"
	"bookings/internal/audit"
	"bookings/internal/config"
	domainusers "bookings/internal/domain/users"
	"bookings/internal/notifications"
	"bookings/internal/observability"
)

// Stand-in identities until a real auth service fronts this process.
var seedUsers = []domainusers.User{
	{Id: 1, Role: domainusers.RoleOrganizer},
	{Id: 2, Role: domainusers.RoleCustomer},
	{Id: 3, Role: domainusers.RoleCustomer},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	auditSink, err := audit.OpenFileSink(cfg.AuditLogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open audit log")
	}
	defer auditSink.Close()

	notifier := notifications.NewLogNotifier(logger)

	a, err := app.NewApp(cfg, logger, auditSink, notifier, seedUsers)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build app")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("app exited with error")
	}
}
