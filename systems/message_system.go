package systems

import (
	"fmt"

	"ebiten-pathsim/ecs"
)

// MessageLog stores recent simulation messages, oldest first
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a message log keeping the last maxMessages entries
func NewMessageLog(maxMessages int) *MessageLog {
	return &MessageLog{
		Messages:    make([]string, 0, maxMessages),
		MaxMessages: maxMessages,
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	if ml.MaxMessages <= 0 {
		return
	}

	// Drop the oldest message once full
	if len(ml.Messages) == ml.MaxMessages {
		copy(ml.Messages, ml.Messages[1:])
		ml.Messages = ml.Messages[:len(ml.Messages)-1]
	}
	ml.Messages = append(ml.Messages, message)
}

// Addf formats and adds a message
func (ml *MessageLog) Addf(format string, args ...any) {
	ml.Add(fmt.Sprintf(format, args...))
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = ml.Messages[:0]
}

// Attach subscribes the log to w's lifecycle events. Call Detach with the
// returned IDs to stop listening.
func (ml *MessageLog) Attach(w *ecs.World) []ecs.SubscriptionID {
	events := w.Events()

	onEntity := func(ev ecs.Event) {
		e := ev.(ecs.EntityEvent)
		switch e.Kind {
		case ecs.EventEntityCreated:
			ml.Addf("entity %s created", e.Entity)
		case ecs.EventEntityDestroyed:
			ml.Addf("entity %s destroyed", e.Entity)
		}
	}
	onComponent := func(ev ecs.Event) {
		e := ev.(ecs.ComponentEvent)
		name := w.ComponentName(e.Component)
		switch e.Kind {
		case ecs.EventComponentAdded:
			ml.Addf("%s added to %s", name, e.Entity)
		case ecs.EventComponentRemoved:
			ml.Addf("%s removed from %s", name, e.Entity)
		}
	}

	return []ecs.SubscriptionID{
		events.Subscribe(ecs.EventEntityCreated, onEntity),
		events.Subscribe(ecs.EventEntityDestroyed, onEntity),
		events.Subscribe(ecs.EventComponentAdded, onComponent),
		events.Subscribe(ecs.EventComponentRemoved, onComponent),
	}
}

// Detach removes the subscriptions made by Attach
func (ml *MessageLog) Detach(w *ecs.World, ids []ecs.SubscriptionID) {
	for _, id := range ids {
		w.Events().Unsubscribe(id)
	}
}
