package ecs

import "github.com/milk9111/gravitylegacy/geom"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventCollision = "collision"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionBegin CollisionEventKind = "begin"
	CollisionEnd   CollisionEventKind = "end"
)

// CollisionEvent is emitted when two shapes start or stop touching. NormalX/NormalY
// point from A towards B.
type CollisionEvent struct {
	Kind    CollisionEventKind
	A       Entity
	B       Entity
	NormalX float64
	NormalY float64
	ABox    geom.Box
	BBox    geom.Box
}

// Other returns the entity that is not e, and whether e took part at all.
func (c CollisionEvent) Other(e Entity) (Entity, bool) {
	switch e {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	}
	return 0, false
}

// EventQueue is a simple FIFO queue. Events live until the scheduler clears them at
// the end of the tick, so every system sees the same list.
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

// Items returns the queued events without clearing them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Collisions returns the queued collision events in order.
func (q *EventQueue) Collisions() []CollisionEvent {
	if q == nil {
		return nil
	}
	var out []CollisionEvent
	for _, evt := range q.items {
		if c, ok := evt.Data.(CollisionEvent); ok {
			out = append(out, c)
		}
	}
	return out
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
