package services

import "sync"

// EventLocks serializes inventory mutations per event: book, cancel and
// update calls for the same event never interleave, while different events
// proceed concurrently. Entries are never released; events are never deleted.
type EventLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewEventLocks() *EventLocks {
	return &EventLocks{
		locks: make(map[int64]*sync.Mutex),
	}
}

func (l *EventLocks) Lock(eventId int64) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[eventId]
	if !ok {
		m = &sync.Mutex{}
		l.locks[eventId] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
