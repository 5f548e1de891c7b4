package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// CancelledObserver is implemented by listeners that still run after an
// earlier listener, or the host, cancelled the event. Item guards need this
// so a pre-cancelled event cannot slip a marked item past them.
type CancelledObserver interface {
	ObservesCancelled() bool
}

func observesCancelled(l EventListener) bool {
	o, ok := l.(CancelledObserver)
	return ok && o.ObservesCancelled()
}

// Bus routes inbound world events to listeners in priority order
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for one event type
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// SubscribeAll adds a listener for every inbound event type
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, t := range AllEventTypes {
		b.Subscribe(t, listener)
	}
}

// Emit sends an event to its listeners, lowest priority number first. Once
// the event is cancelled only CancelledObservers still see it.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() && !observesCancelled(listener) {
			continue
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}
