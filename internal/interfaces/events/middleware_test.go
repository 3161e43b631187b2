package events

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestBestEffortMiddleware_SwallowsHandlerErrors(t *testing.T) {
	handler := BestEffortMiddleware(func(msg *message.Message) ([]*message.Message, error) {
		return nil, errors.New("listener blew up")
	})

	msgs, err := handler(message.NewMessage("1", nil))

	require.NoError(t, err, "listener failures must not reach the publisher")
	assert.Nil(t, msgs)
}

func TestCorrelationIDMiddleware_SetsMissingID(t *testing.T) {
	var seen string
	handler := CorrelationIDMiddleware(testLogger())(func(msg *message.Message) ([]*message.Message, error) {
		seen = msg.Metadata.Get("correlation_id")
		return nil, nil
	})

	_, err := handler(message.NewMessage("1", nil))

	require.NoError(t, err)
	assert.NotEmpty(t, seen)
}

func TestCorrelationIDMiddleware_KeepsExistingID(t *testing.T) {
	var seen string
	handler := CorrelationIDMiddleware(testLogger())(func(msg *message.Message) ([]*message.Message, error) {
		seen = msg.Metadata.Get("correlation_id")
		return nil, nil
	})

	msg := message.NewMessage("1", nil)
	msg.Metadata.Set("correlation_id", "abc-123")

	_, err := handler(msg)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", seen)
}
