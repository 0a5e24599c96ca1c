// Package racer implements Buggy Racer: drive the buggy around the ringed
// track and complete as many laps as possible before the clock runs out.
package racer

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/buggy-racer/internal/config"
	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/registry"
	"github.com/vovakirdan/buggy-racer/internal/scene"
	"github.com/vovakirdan/buggy-racer/internal/vehicle"
)

// Settings shared by every game created through the registry.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if preset == "" {
		difficultyPreset = ""
		return
	}
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	}
}

// SetLogger sets where config fallbacks are reported.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func settings() (string, config.DifficultyPreset, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, difficultyPreset, logger
}

// Game implements the Buggy Racer game logic.
type Game struct {
	cfg     config.RacerConfig
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset // Overrides the package preset when set

	car        *vehicle.Car
	track      *scene.Track
	camera     *scene.Camera
	renderer   scene.Renderer
	pose       vehicle.Pose
	laps       *LapCounter
	difficulty *config.DifficultyManager
	baseSpeed  float64 // Top speed before difficulty scaling

	ticks     int  // Simulation ticks since start
	remaining int  // Ticks left on the session clock; -1 when untimed
	crashes   int  // Times the car hit the boundary
	colliding bool // Whether the last tick ended in a collision
	gameOver  bool
	paused    bool
}

// New creates a new Buggy Racer game instance.
func New() *Game {
	return &Game{track: scene.NewTrack()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Buggy Racer"
}

// Description returns the one-line summary shown by the game list.
func (g *Game) Description() string {
	return "Lap the ringed track in a steerable buggy before time runs out"
}

// SetDifficulty selects a preset for this instance only, taking effect on
// the next Reset. Returns false for unknown names.
func (g *Game) SetDifficulty(name string) bool {
	p, ok := config.ParsePreset(name)
	if !ok {
		return false
	}
	g.preset = p
	return true
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	path, preset, lg := settings()
	if g.preset != "" {
		preset = g.preset
	}

	cfg, err := config.LoadRacer(path)
	if err != nil {
		lg.Warn("Could not load racer config, using defaults", "path", path, "error", err)
		cfg = config.DefaultRacerConfig()
	}
	if preset != "" {
		config.ApplyRacerPreset(&cfg, preset)
	}
	g.ResetWith(rt, cfg)
}

// ResetWith restarts the game with an explicit configuration.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.RacerConfig) {
	_, _, lg := settings()

	g.cfg = cfg
	g.runtime = rt

	params := cfg.Params()
	car, err := vehicle.NewBuggy(params)
	if err != nil {
		lg.Warn("Invalid vehicle tuning, using stock buggy", "error", err)
		params = vehicle.DefaultParams()
		car, _ = vehicle.NewBuggy(params)
	}
	g.car = car
	g.baseSpeed = params.MaxSpeed

	start := cfg.Track.Start.StartPosition()
	g.car.Place(start, cfg.Track.Start.HeadingRadians())
	g.car.PoseInto(&g.pose)

	g.camera = scene.NewCamera(g.track, cfg.Camera.OverheadHeight)
	g.camera.Mode = scene.ParseMode(cfg.Camera.Mode)
	g.laps = NewLapCounter(g.track.InfieldCenter(), start)
	g.laps.SetInfield(g.track.Bounds(scene.RingInner))

	g.ticks = 0
	g.remaining = -1
	if cfg.Session.DurationSeconds > 0 {
		g.remaining = cfg.Session.DurationSeconds * g.tickRate()
	}
	g.crashes = 0
	g.colliding = false
	g.gameOver = false
	g.paused = false

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.applyDifficulty()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionCamera) {
		g.camera.Mode = g.camera.Mode.Next()
	}

	g.ticks++
	g.applyDifficulty()

	var events []core.Event
	if g.drive(in) {
		events = append(events, core.Event{Kind: core.EventGearShift, Value: int(g.car.Direction())})
	}

	g.car.Advance(g.runtime.Step())
	g.car.PoseInto(&g.pose)

	// Count each impact once, not every tick spent against the wall
	if g.car.Collided() && !g.colliding {
		g.crashes++
		events = append(events, core.Event{Kind: core.EventCrash, Value: g.crashes})
	}
	g.colliding = g.car.Collided()

	if lap, ok := g.laps.Update(g.car.Position(), g.ticks); ok {
		events = append(events, core.Event{Kind: core.EventLap, Value: lap})
	}

	if g.remaining > 0 {
		g.remaining--
		if g.remaining == 0 {
			g.gameOver = true
			events = append(events, core.Event{Kind: core.EventSessionEnd, Value: g.laps.Count()})
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// drive maps the frame's actions to vehicle commands. It reports whether
// the gear changed.
func (g *Game) drive(in core.InputFrame) bool {
	steering := false
	if in.Has(core.ActionSteerLeft) {
		g.car.SteerLeft()
		steering = true
	}
	if in.Has(core.ActionSteerRight) {
		g.car.SteerRight()
		steering = true
	}
	if in.Has(core.ActionCenter) || (g.cfg.Session.AutoCenter && !steering) {
		g.car.CenterSteering()
	}

	if in.Has(core.ActionAccelerate) {
		g.car.Accelerate()
	}
	if in.Has(core.ActionBrake) {
		g.car.Decelerate()
	}

	gear := g.car.Direction()
	if in.Has(core.ActionGearForward) {
		g.car.ShiftForward()
	}
	if in.Has(core.ActionGearReverse) {
		g.car.ShiftReverse()
	}
	return g.car.Direction() != gear
}

// applyDifficulty raises the top speed as the session progresses.
func (g *Game) applyDifficulty() {
	top := g.difficulty.Speed(g.baseSpeed, g.laps.Count(), g.ticks)
	if top != g.car.Params().MaxSpeed {
		g.car.SetMaxSpeed(top)
	}
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// ticksToDuration converts simulation ticks to wall time.
func (g *Game) ticksToDuration(ticks int) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(g.tickRate())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.laps != nil {
		score = g.laps.Count()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Laps returns the completed lap times of this session.
func (g *Game) Laps() []time.Duration {
	if g.laps == nil {
		return nil
	}
	ticks := g.laps.Laps()
	out := make([]time.Duration, len(ticks))
	for i, t := range ticks {
		out[i] = g.ticksToDuration(t)
	}
	return out
}

// Car exposes the simulated vehicle.
func (g *Game) Car() *vehicle.Car {
	return g.car
}

// Crashes returns how many times the car hit the boundary.
func (g *Game) Crashes() int {
	return g.crashes
}

// Remaining returns the time left on the session clock, or -1 if untimed.
func (g *Game) Remaining() time.Duration {
	if g.remaining < 0 {
		return -1
	}
	return g.ticksToDuration(g.remaining)
}

// CameraMode returns the active camera mode.
func (g *Game) CameraMode() scene.Mode {
	return g.camera.Mode
}

// Register the game with the registry
func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}
