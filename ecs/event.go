package ecs

// EventType identifies different types of events
type EventType string

// Lifecycle events emitted by the World
const (
	EventEntityCreated    EventType = "entity_created"
	EventEntityDestroyed  EventType = "entity_destroyed"
	EventComponentAdded   EventType = "component_added"
	EventComponentRemoved EventType = "component_removed"
)

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EntityEvent is emitted when an entity is created or destroyed
type EntityEvent struct {
	Kind   EventType
	Entity EntityID
}

// Type returns the event type
func (e EntityEvent) Type() EventType { return e.Kind }

// ComponentEvent is emitted when a component is attached or detached
type ComponentEvent struct {
	Kind      EventType
	Entity    EntityID
	Component ComponentType
	Signature Signature // entity signature after the change
}

// Type returns the event type
func (e ComponentEvent) Type() EventType { return e.Kind }

// EventHandler is a function that processes events
type EventHandler func(Event)

// SubscriptionID identifies a handler registered with Subscribe
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches synchronously
type EventManager struct {
	subscribers map[EventType][]subscription
	nextID      SubscriptionID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) SubscriptionID {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes the handler registered under id
func (em *EventManager) Unsubscribe(id SubscriptionID) {
	for eventType, subs := range em.subscribers {
		for i, s := range subs {
			if s.id != id {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(em.subscribers, eventType)
			} else {
				em.subscribers[eventType] = subs
			}
			return
		}
	}
}

// HasSubscribers reports whether anyone listens for eventType, so callers can
// skip building events nobody will see
func (em *EventManager) HasSubscribers(eventType EventType) bool {
	return len(em.subscribers[eventType]) > 0
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	for _, s := range em.subscribers[event.Type()] {
		s.handler(event)
	}
}
