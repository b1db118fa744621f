package events

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

func TestInMemoryEventStore_AppendAssignsVersions(t *testing.T) {
	store := NewInMemoryEventStore(zerolog.Nop())

	require.NoError(t, store.AppendEvent("run-1", NewEvent(RepricingStartedEvent, "run-1", RepricingStarted{RunID: "run-1"})))
	require.NoError(t, store.AppendEvent("run-1", NewEvent(PricePublishedEvent, "run-1", PricePublished{})))
	require.NoError(t, store.AppendEvent("run-2", NewEvent(RepricingStartedEvent, "run-2", RepricingStarted{RunID: "run-2"})))

	events, err := store.ReadEvents("run-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Version())
	assert.Equal(t, 2, events[1].Version())
	assert.Equal(t, PricePublishedEvent, events[1].Type())

	other, _ := store.ReadEvents("run-2", 1)
	require.Len(t, other, 1)
	assert.Equal(t, 1, other[0].Version())

	assert.Equal(t, 3, store.Position())
}

func TestInMemoryEventStore_ReadBounds(t *testing.T) {
	store := NewInMemoryEventStore(zerolog.Nop())
	for i := 0; i < 3; i++ {
		_ = store.AppendEvent("run", NewEvent(PricePublishedEvent, "run", nil))
	}

	fromTwo, _ := store.ReadEvents("run", 2)
	assert.Len(t, fromTwo, 2)

	past, _ := store.ReadEvents("run", 10)
	assert.Empty(t, past)

	missing, _ := store.ReadEvents("nope", 1)
	assert.Empty(t, missing)

	all, _ := store.ReadAllEvents(-1)
	assert.Len(t, all, 3)

	tail, _ := store.ReadAllEvents(2)
	assert.Len(t, tail, 1)
}

func TestInMemoryEventStore_NotifiesSubscribers(t *testing.T) {
	store := NewInMemoryEventStore(zerolog.Nop())

	var mu sync.Mutex
	received := make([]string, 0)
	handler := &HandlerFunc{
		Types: []string{MAPViolatedEvent},
		Fn: func(e Event) error {
			mu.Lock()
			defer mu.Unlock()
			received = append(received, string(e.Data().(MAPViolated).SKU))
			return nil
		},
	}
	require.NoError(t, store.Subscribe([]string{MAPViolatedEvent}, handler))

	_ = store.AppendEvent("run", NewEvent(MAPViolatedEvent, "run", MAPViolated{SKU: "SERUM-30"}))
	_ = store.AppendEvent("run", NewEvent(PricePublishedEvent, "run", PricePublished{}))
	store.Wait()

	mu.Lock()
	assert.Equal(t, []string{"SERUM-30"}, received)
	mu.Unlock()

	require.NoError(t, store.Unsubscribe(handler))
	_ = store.AppendEvent("run", NewEvent(MAPViolatedEvent, "run", MAPViolated{SKU: "CREAM-50"}))
	store.Wait()

	mu.Lock()
	assert.Len(t, received, 1)
	mu.Unlock()
}

func TestInMemoryEventStore_LogsHandlerErrors(t *testing.T) {
	var buf bytes.Buffer
	store := NewInMemoryEventStore(zerolog.New(&buf))

	failing := &HandlerFunc{
		Types: []string{GuardrailFailedEvent},
		Fn:    func(Event) error { return errors.New("sink unavailable") },
	}
	_ = store.Subscribe([]string{GuardrailFailedEvent}, failing)

	_ = store.AppendEvent("run-9", NewEvent(GuardrailFailedEvent, "run-9", GuardrailFailed{
		SKU:    "SERUM-30",
		Result: entities.GuardrailResult{MarginPct: 12},
	}))
	store.Wait()

	assert.Contains(t, buf.String(), "sink unavailable")
	assert.Contains(t, buf.String(), `"event_type":"guardrail.failed"`)
	assert.Contains(t, buf.String(), `"stream":"run-9"`)
}
