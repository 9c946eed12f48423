package ecs

// EventKind identifies gameplay events raised during a tick.
type EventKind string

const (
	EventKill         EventKind = "kill"
	EventDeath        EventKind = "death"
	EventBounce       EventKind = "bounce"
	EventGoalReached  EventKind = "goal"
	EventLevelReset   EventKind = "level_reset"
	EventLevelAdvance EventKind = "level_advance"
)

// Event is a gameplay event payload. Value carries the event magnitude
// (bounce intensity, next level index).
type Event struct {
	Kind   EventKind
	Entity Entity
	Other  Entity
	Value  float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
