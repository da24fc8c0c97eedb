package engine

// EventType identifies an outbound simulation event
// Events are produced during Simulation.Step and drained by the loop driver for audio,
// external callbacks and delayed scheduling; they never feed back into the same step
type EventType int

const (
	// EventShot signals one fire action (center plus optional side shots)
	// Trigger: FireSystem | Consumer: audio
	EventShot EventType = iota

	// EventCoinCollected signals one coin consumed by the craft
	// Trigger: WorldSystem | Consumer: driver (OnCoinCollected), audio
	EventCoinCollected

	// EventPowerup signals a power granted | Payload: Power
	EventPowerup

	// EventPowerExpired signals a power timer reaching zero | Payload: Power
	EventPowerExpired

	// EventAsteroidHit signals a projectile hit that did not destroy the asteroid
	EventAsteroidHit

	// EventAsteroidDestroyed signals an asteroid reaching zero hit points
	EventAsteroidDestroyed

	// EventShieldBlocked signals the shield consuming an obstacle collision
	EventShieldBlocked

	// EventCrash signals the FLYING to CRASHING transition, emitted once per run
	// Consumer: driver schedules the delayed game over
	EventCrash
)

var eventTypeNames = [...]string{
	EventShot:              "shot",
	EventCoinCollected:     "coin_collected",
	EventPowerup:           "powerup",
	EventPowerExpired:      "power_expired",
	EventAsteroidHit:       "asteroid_hit",
	EventAsteroidDestroyed: "asteroid_destroyed",
	EventShieldBlocked:     "shield_blocked",
	EventCrash:             "crash",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is one outbound notification
type Event struct {
	Type  EventType
	Frame int
	Pos   Point3D
	Power PowerKind
}

// EventQueue collects events for a single step
// Owned by the loop goroutine; not safe for concurrent use
type EventQueue struct {
	events []Event
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all queued events and empties the queue
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Peek returns the queued events without consuming them
func (q *EventQueue) Peek() []Event {
	return q.events
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Reset discards queued events
func (q *EventQueue) Reset() {
	q.events = nil
}
