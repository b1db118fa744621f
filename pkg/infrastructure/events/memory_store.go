package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// InMemoryEventStore keeps every stream in memory and notifies subscribers asynchronously
type InMemoryEventStore struct {
	streams     map[string][]Event
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
	position    int
	allEvents   []Event
	inFlight    sync.WaitGroup
	log         zerolog.Logger
}

// NewInMemoryEventStore creates an empty store that logs handler failures to log
func NewInMemoryEventStore(log zerolog.Logger) *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
		allEvents:   make([]Event, 0),
		log:         log.With().Str("component", "event_store").Logger(),
	}
}

// Verify interface compliance
var _ EventStore = (*InMemoryEventStore)(nil)

func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	eventWithVersion := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}

	s.streams[streamID] = append(s.streams[streamID], eventWithVersion)
	s.allEvents = append(s.allEvents, eventWithVersion)
	s.position++

	handlers := s.handlersFor(eventWithVersion.EventType)
	if len(handlers) > 0 {
		s.inFlight.Add(len(handlers))
		for _, handler := range handlers {
			go s.dispatch(handler, eventWithVersion)
		}
	}

	return nil
}

func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.streams[streamID]
	if !exists {
		return []Event{}, nil
	}

	if fromVersion < 1 {
		fromVersion = 1
	}

	if fromVersion > len(events) {
		return []Event{}, nil
	}

	out := make([]Event, len(events)-fromVersion+1)
	copy(out, events[fromVersion-1:])
	return out, nil
}

func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}

	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}

	out := make([]Event, len(s.allEvents)-fromPosition)
	copy(out, s.allEvents[fromPosition:])
	return out, nil
}

// Position returns the number of events appended so far
func (s *InMemoryEventStore) Position() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.position
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}

	return nil
}

func (s *InMemoryEventStore) Unsubscribe(handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for eventType, handlers := range s.subscribers {
		newHandlers := make([]EventHandler, 0, len(handlers))
		for _, h := range handlers {
			if h != handler {
				newHandlers = append(newHandlers, h)
			}
		}
		s.subscribers[eventType] = newHandlers
	}

	return nil
}

// Wait blocks until every handler notified so far has returned
func (s *InMemoryEventStore) Wait() {
	s.inFlight.Wait()
}

// handlersFor must be called with the mutex held
func (s *InMemoryEventStore) handlersFor(eventType string) []EventHandler {
	handlers := make([]EventHandler, 0, len(s.subscribers[eventType]))
	for _, handler := range s.subscribers[eventType] {
		if handler.CanHandle(eventType) {
			handlers = append(handlers, handler)
		}
	}
	return handlers
}

func (s *InMemoryEventStore) dispatch(handler EventHandler, event Event) {
	defer s.inFlight.Done()
	if err := handler.Handle(event); err != nil {
		s.log.Error().
			Err(err).
			Str("event_type", event.Type()).
			Str("stream", event.StreamID()).
			Int("version", event.Version()).
			Msg("Error handling event")
	}
}
