// Package telemetry provides hunt statistics, event logs, and performance tracking.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventHarpoonLaunched EventType = iota
	EventHarpoonAttached
	EventHarpoonLost     // flying harpoon strayed past the tether length
	EventHarpoonReleased // released by the player, or on death/capture
	EventFishCaptured
	EventPlayerCrashed
)

var eventNames = [...]string{
	EventHarpoonLaunched: "harpoon_launched",
	EventHarpoonAttached: "harpoon_attached",
	EventHarpoonLost:     "harpoon_lost",
	EventHarpoonReleased: "harpoon_released",
	EventFishCaptured:    "fish_captured",
	EventPlayerCrashed:   "player_crashed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int32
	X, Y float64 // where it happened

	// Optional, depending on event type
	Amount float64 // launch speed, or player distance at attach/lost
}

// NewLaunchEvent creates a harpoon launch event.
func NewLaunchEvent(tick int32, x, y, speed float64) Event {
	return Event{Type: EventHarpoonLaunched, Tick: tick, X: x, Y: y, Amount: speed}
}

// NewAttachEvent creates an attach event; dist is the player to harpoon distance.
func NewAttachEvent(tick int32, x, y, dist float64) Event {
	return Event{Type: EventHarpoonAttached, Tick: tick, X: x, Y: y, Amount: dist}
}

// NewLostEvent creates a tether-break event.
func NewLostEvent(tick int32, x, y, dist float64) Event {
	return Event{Type: EventHarpoonLost, Tick: tick, X: x, Y: y, Amount: dist}
}

// NewReleaseEvent creates a harpoon release event.
func NewReleaseEvent(tick int32, x, y float64) Event {
	return Event{Type: EventHarpoonReleased, Tick: tick, X: x, Y: y}
}

// NewCaptureEvent creates a fish capture event.
func NewCaptureEvent(tick int32, x, y float64) Event {
	return Event{Type: EventFishCaptured, Tick: tick, X: x, Y: y}
}

// NewCrashEvent creates a player crash event; density is the terrain reading.
func NewCrashEvent(tick int32, x, y, density float64) Event {
	return Event{Type: EventPlayerCrashed, Tick: tick, X: x, Y: y, Amount: density}
}

// EventRecord is the CSV row for an event.
type EventRecord struct {
	Tick   int32   `csv:"tick"`
	Type   string  `csv:"type"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	Amount float64 `csv:"amount"`
}

// Record converts the event to a CSV row.
func (e Event) Record() EventRecord {
	return EventRecord{Tick: e.Tick, Type: e.Type.String(), X: e.X, Y: e.Y, Amount: e.Amount}
}
