package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to derive the simulation step.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Step returns the simulated time of one tick in seconds.
func (c RuntimeConfig) Step() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLap        EventKind = iota + 1 // A lap was completed; Value is the lap time in ticks
	EventCrash                           // The vehicle hit the boundary
	EventGearShift                       // The gear changed
	EventSessionEnd                      // The session timer ran out
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLap:
		return "lap"
	case EventCrash:
		return "crash"
	case EventGearShift:
		return "gear"
	case EventSessionEnd:
		return "session_end"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a game step.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
