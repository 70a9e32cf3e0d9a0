// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps in columns of pipes that scroll in
// from the right; touching a pipe ends the run and leaving the screen starts
// a new one.
package flappy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Phase is the lifecycle state of the game.
type Phase int

const (
	PhasePreloading Phase = iota // loading sprites into a fresh engine
	PhaseRunning                 // a run is in progress
	PhaseOver                    // the run ended and a restart is pending
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePreloading:
		return "preloading"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle and collision events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSound sets the sound hook.
func WithSound(s SoundHook) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

// WithEngine replaces the engine used for every run.
func WithEngine(f EngineFactory) Option {
	return func(g *Game) {
		if f != nil {
			g.newEngine = f
		}
	}
}

// WithAssets replaces the sprite payloads.
func WithAssets(a Assets) Option {
	return func(g *Game) {
		g.assets = a
	}
}

// Game implements the Flappy lifecycle: Preloading -> Running -> Over, with
// every restart building a new engine and run.
type Game struct {
	cfg       config.FlappyConfig
	runtime   core.RuntimeConfig
	newEngine EngineFactory
	assets    Assets
	logger    *log.Logger
	sound     SoundHook

	rng    *rand.Rand
	eng    Engine
	run    *Run
	phase  Phase
	paused bool
	runs   int
	err    error
}

// New creates a game for a validated configuration.
func New(cfg config.FlappyConfig, opts ...Option) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:       cfg,
		runtime:   core.DefaultConfig(),
		newEngine: NewWorldEngine,
		assets:    DefaultAssets(),
		logger:    log.New(io.Discard),
		sound:     NopSound{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Background returns the configured #RRGGBB background color.
func (g *Game) Background() string {
	return g.cfg.World.Background
}

// Reset starts the game from scratch with a new seed and screen size.
// A lifecycle failure is kept and reported by Err.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.err = g.Start(cfg)
}

// Start is Reset with the lifecycle error returned.
func (g *Game) Start(cfg core.RuntimeConfig) error {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.runs = 0
	g.err = g.restart()
	return g.err
}

// restart discards the current engine and run, then preloads and creates
// new ones.
func (g *Game) restart() error {
	g.phase = PhasePreloading
	g.run = nil
	g.eng = g.newEngine(float64(g.cfg.World.Width), float64(g.cfg.World.Height))

	if err := preload(g.eng, g.assets); err != nil {
		g.logger.Error("preload failed", "error", err)
		return err
	}

	run := newRun(g.cfg, runDeps{
		eng:     g.eng,
		rng:     g.rng,
		log:     g.logger,
		sound:   g.sound,
		restart: g.requestRestart,
	})
	if err := run.create(); err != nil {
		g.logger.Error("create failed", "error", err)
		return err
	}

	g.run = run
	g.phase = PhaseRunning
	g.runs++
	g.logger.Debug("run started", "run", g.runs)
	return nil
}

func (g *Game) requestRestart() {
	g.phase = PhaseOver
}

// Step advances the game by one tick: input handlers run, the engine moves
// bodies and fires timers, then the frame update checks bounds, collisions
// and rotation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseOver {
		if err := g.restart(); err != nil {
			g.err = err
			return core.StepResult{State: g.State()}
		}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.State().GameOver {
		g.run.requestRestart("player restart")
		return core.StepResult{State: g.State()}
	}

	g.eng.Dispatch(in)
	g.eng.Advance(g.frameDuration())
	g.run.Update()

	return core.StepResult{State: g.State()}
}

func (g *Game) frameDuration() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// State returns the current game state. GameOver is true once the bird is
// dead and stays true until the next run starts.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.run != nil {
		st.Score = g.run.Score()
		if b := g.run.Bird(); b != nil && !b.Alive {
			st.GameOver = true
		}
	}
	if g.phase == PhaseOver || g.err != nil {
		st.GameOver = true
	}
	return st
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Run returns the current run context, or nil when none is active.
func (g *Game) Run() *Run {
	return g.run
}

// Runs returns how many runs have been started since the last Reset.
func (g *Game) Runs() int {
	return g.runs
}

// Err returns the lifecycle error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

var (
	configPath string
	logger     *log.Logger
)

// SetConfigPath sets a custom config file for games created by the registry.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger for games created by the registry.
func SetLogger(l *log.Logger) {
	logger = l
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{ID: "flappy", Title: "Flappy Bird"}, func() (registry.Game, error) {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			return nil, err
		}
		return New(cfg, WithLogger(logger))
	})
}
