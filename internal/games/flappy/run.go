package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Run is the context of a single run: one bird, one pipe pool, one score
// label and one spawn timer. A restart builds a new Run from scratch.
//
// A nil bird, pool or label means "not created yet"; operations that need
// them do nothing in that case.
type Run struct {
	cfg   config.FlappyConfig
	eng   Engine
	rng   *rand.Rand
	log   *log.Logger
	sound SoundHook

	bird  *engine.Sprite
	pipes *engine.Group
	label *engine.Label
	timer engine.TimerHandle // zero when no spawner is scheduled

	score   float64
	over    bool
	restart func()
}

// runDeps bundles what a run borrows from its Game.
type runDeps struct {
	eng     Engine
	rng     *rand.Rand
	log     *log.Logger
	sound   SoundHook
	restart func()
}

func newRun(cfg config.FlappyConfig, deps runDeps) *Run {
	r := &Run{
		cfg:     cfg,
		eng:     deps.eng,
		rng:     deps.rng,
		log:     deps.log,
		sound:   deps.sound,
		restart: deps.restart,
	}
	if r.log == nil {
		r.log = log.New(io.Discard)
	}
	if r.sound == nil {
		r.sound = NopSound{}
	}
	return r
}

// create builds the run's objects. Images must already be loaded.
func (r *Run) create() error {
	pipes, err := r.eng.CreatePool(r.cfg.Pipes.PoolSize, PipeKey)
	if err != nil {
		return &SetupError{Component: ComponentGroup, Err: err}
	}

	bird, err := r.eng.AddSprite(r.cfg.Bird.X, r.cfg.Bird.Y, BirdKey)
	if err != nil {
		return &SetupError{Component: ComponentSprite, Err: err}
	}
	if err := r.eng.EnablePhysics(bird); err != nil {
		return &SetupError{Component: ComponentPhysics, Err: err}
	}
	if bird.Body == nil {
		return &SetupError{Component: ComponentPhysics, Err: engine.ErrNoPhysics}
	}
	bird.Body.GravityY = r.cfg.World.Gravity

	if err := r.eng.BindKey(core.ActionJump, r.Jump); err != nil {
		return &SetupError{Component: ComponentKeyboard, Err: err}
	}

	label, err := r.eng.AddLabel(r.cfg.Score.X, r.cfg.Score.Y, "0", engine.TextStyle{
		FontSize: r.cfg.Score.FontSize,
		Color:    core.ColorBrightWhite,
	})
	if err != nil {
		return &SetupError{Component: ComponentLabel, Err: err}
	}

	r.pipes = pipes
	r.bird = bird
	r.label = label
	r.timer = r.eng.ScheduleRepeating(r.cfg.SpawnInterval(), r.AddRowOfPipes)
	return nil
}

// Score returns the current score.
func (r *Run) Score() int {
	return coerceScore(r.score)
}

// Bird returns the body sprite, or nil before create.
func (r *Run) Bird() *engine.Sprite {
	return r.bird
}

// Pipes returns the obstacle pool, or nil before create.
func (r *Run) Pipes() *engine.Group {
	return r.pipes
}

// Label returns the score label, or nil before create.
func (r *Run) Label() *engine.Label {
	return r.label
}

// Over reports whether this run has requested a restart.
func (r *Run) Over() bool {
	return r.over
}

// requestRestart ends the run. The owning Game replaces it on its next step.
func (r *Run) requestRestart(reason string) {
	if r.over {
		return
	}
	r.over = true
	r.log.Debug("restart requested", "reason", reason, "score", r.Score())
	if r.restart != nil {
		r.restart()
	}
}
