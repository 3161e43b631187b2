package observability

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

// WatermillLogger routes the message router's internal logging through
// zerolog, so bus and application logs share one pipeline.
type WatermillLogger struct {
	logger zerolog.Logger
}

func NewWatermillLogger(logger zerolog.Logger) WatermillLogger {
	return WatermillLogger{logger: logger}
}

func (l WatermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	logger := l.withFields(fields)
	logger.Err(err).Msg(msg)
}

func (l WatermillLogger) Info(msg string, fields watermill.LogFields) {
	logger := l.withFields(fields)
	logger.Info().Msg(msg)
}

func (l WatermillLogger) Debug(msg string, fields watermill.LogFields) {
	logger := l.withFields(fields)
	logger.Debug().Msg(msg)
}

func (l WatermillLogger) Trace(msg string, fields watermill.LogFields) {
	logger := l.withFields(fields)
	logger.Trace().Msg(msg)
}

func (l WatermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return WatermillLogger{logger: l.withFields(fields)}
}

func (l WatermillLogger) withFields(fields watermill.LogFields) zerolog.Logger {
	logger := l.logger
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}
