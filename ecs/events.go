package ecs

// EventType names a gameplay event.
type EventType string

const (
	EventCoinCollected   EventType = "coin_collected"
	EventItemCollected   EventType = "item_collected"
	EventEnemyStomped    EventType = "enemy_stomped"
	EventEnemyTrampled   EventType = "enemy_trampled"
	EventEnemyShot       EventType = "enemy_shot"
	EventProjectileFired EventType = "projectile_fired"
	EventPowerConsumed   EventType = "power_consumed"
	EventPowerExpired    EventType = "power_expired"
	EventPlayerDied      EventType = "player_died"
	EventPlayerRespawned EventType = "player_respawned"
)

// Event is a gameplay notification. Data carries an optional payload such
// as the power kind picked up or the reason for a death.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
