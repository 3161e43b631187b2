package events

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func CorrelationIDMiddleware(logger zerolog.Logger) message.HandlerMiddleware {
	return func(next message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			correlationID := msg.Metadata.Get("correlation_id")
			if correlationID == "" {
				correlationID = uuid.NewString()
				msg.Metadata.Set("correlation_id", correlationID)
			}

			msgLogger := logger.With().
				Str("correlation_id", correlationID).
				Str("message_uuid", msg.UUID).
				Logger()

			msg.SetContext(msgLogger.WithContext(msg.Context()))

			return next(msg)
		}
	}
}

func LoggingMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		logger := zerolog.Ctx(msg.Context())
		logger.Debug().
			Str("payload", string(msg.Payload)).
			Msg("handling a message")

		messages, err := next(msg)

		if err != nil {
			logger.Err(err).
				Str("payload", string(msg.Payload)).
				Msg("message handling error")
		}

		return messages, err
	}
}

// BestEffortMiddleware makes listener delivery best effort: a failing handler
// is logged and skipped so the message is still acked, other handlers still
// run and nothing propagates back to the publisher. No retries.
func BestEffortMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		messages, err := next(msg)
		if err != nil {
			zerolog.Ctx(msg.Context()).
				Err(err).
				Msg("dropping message after handler failure")

			return nil, nil
		}

		return messages, nil
	}
}
