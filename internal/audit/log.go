package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is one audit record: the durable form of an otherwise ephemeral
// domain event.
type Entry struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Log appends one self-contained JSON line per domain event to an
// append-only sink.
type Log struct {
	mu   sync.Mutex
	sink io.Writer
}

func NewLog(sink io.Writer) *Log {
	return &Log{sink: sink}
}

func (l *Log) Append(ctx context.Context, event string, data any) error {
	line, err := json.Marshal(Entry{
		Event:     event,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.sink.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}

	return nil
}

// OpenFileSink opens path for appending, creating parent directories as
// needed.
func OpenFileSink(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
