package flappy

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// countingEngine records Cancel calls and can fail overlap queries.
type countingEngine struct {
	*engine.World
	cancels    int
	overlapErr error
}

func (c *countingEngine) Cancel(h engine.TimerHandle) {
	c.cancels++
	c.World.Cancel(h)
}

func (c *countingEngine) Overlap(s *engine.Sprite, g *engine.Group, fn func(a, b *engine.Sprite)) error {
	if c.overlapErr != nil {
		return c.overlapErr
	}
	return c.World.Overlap(s, g, fn)
}

type recordingSound struct {
	events []SoundEvent
}

func (r *recordingSound) Play(e SoundEvent) {
	r.events = append(r.events, e)
}

type runFixture struct {
	run      *Run
	eng      *countingEngine
	restarts int
	sound    *recordingSound
}

func newFixture(t *testing.T, cfg config.FlappyConfig) *runFixture {
	t.Helper()
	f := &runFixture{
		eng:   &countingEngine{World: engine.NewWorld(float64(cfg.World.Width), float64(cfg.World.Height))},
		sound: &recordingSound{},
	}
	if err := preload(f.eng, DefaultAssets()); err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	f.run = newRun(cfg, runDeps{
		eng:     f.eng,
		rng:     rand.New(rand.NewSource(1)),
		sound:   f.sound,
		restart: func() { f.restarts++ },
	})
	if err := f.run.create(); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return f
}

func newUncreatedRun() *Run {
	return newRun(config.DefaultFlappyConfig(), runDeps{
		eng: engine.NewWorld(400, 490),
		rng: rand.New(rand.NewSource(1)),
	})
}

func killAll(g *engine.Group) {
	for _, p := range g.Children() {
		p.Kill()
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	r := f.run

	if r.Bird() == nil || r.Pipes() == nil || r.Label() == nil {
		t.Fatal("create should build bird, pipes and label")
	}
	if r.Bird().X != 100 || r.Bird().Y != 245 {
		t.Errorf("bird at (%f, %f), expected (100, 245)", r.Bird().X, r.Bird().Y)
	}
	if r.Bird().Body.GravityY != 1000 {
		t.Errorf("gravity = %f, expected 1000", r.Bird().Body.GravityY)
	}
	if r.Pipes().Len() != 20 || r.Pipes().CountAlive() != 0 {
		t.Errorf("pool len=%d alive=%d, expected 20 dead pipes", r.Pipes().Len(), r.Pipes().CountAlive())
	}
	if r.Label().Text != "0" {
		t.Errorf("label = %q, expected \"0\"", r.Label().Text)
	}
	if !f.eng.TimerActive(r.timer) {
		t.Error("spawn timer should be scheduled")
	}
}

func TestJumpSetsImpulse(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	bird := f.run.Bird()

	f.run.Jump()

	if bird.Body.VelocityY != -350 {
		t.Errorf("velocity = %f, expected -350", bird.Body.VelocityY)
	}
	f.eng.Advance(100 * time.Millisecond)
	if bird.Angle != -20 {
		t.Errorf("angle after jump tween = %f, expected -20", bird.Angle)
	}
	if len(f.sound.events) != 1 || f.sound.events[0] != SoundJump {
		t.Errorf("sound events = %v, expected [jump]", f.sound.events)
	}
}

func TestJumpDeadBirdIsNoop(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	bird := f.run.Bird()
	bird.Alive = false
	bird.Body.VelocityY = 42

	f.run.Jump()

	if bird.Body.VelocityY != 42 {
		t.Errorf("dead bird velocity changed to %f", bird.Body.VelocityY)
	}
	if len(f.sound.events) != 0 {
		t.Errorf("dead bird should not play sounds, got %v", f.sound.events)
	}
}

func TestOperationsBeforeCreateAreNoops(t *testing.T) {
	r := newUncreatedRun()

	r.Jump()
	r.AddOnePipe(400, 10)
	r.AddRowOfPipes()
	r.Update()
	r.HitPipe()

	if r.Score() != 0 {
		t.Errorf("score = %d, expected 0", r.Score())
	}
	if r.Over() {
		t.Error("uncreated run should not request a restart")
	}
}

func TestAddOnePipe(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())

	f.run.AddOnePipe(400, 70)

	p := f.run.Pipes().Children()[0]
	if !p.Alive || p.X != 400 || p.Y != 70 {
		t.Errorf("pipe = alive:%v (%f, %f), expected alive at (400, 70)", p.Alive, p.X, p.Y)
	}
	if p.Body.VelocityX != -200 {
		t.Errorf("pipe velocity = %f, expected -200", p.Body.VelocityX)
	}
	if !p.CheckWorldBounds || !p.OutOfBoundsKill {
		t.Error("pipe should be killed when leaving the world")
	}
}

func TestAddRowOfPipesLeavesAdjacentGap(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	f := newFixture(t, cfg)
	pipes := f.run.Pipes()
	maxY := cfg.MaxPipeY()

	holes := make(map[int]bool)
	for i := 0; i < 200; i++ {
		killAll(pipes)
		f.run.AddRowOfPipes()

		if got := pipes.CountAlive(); got != cfg.Pipes.RowCount-2 {
			t.Fatalf("call %d: spawned %d pipes, expected %d", i, got, cfg.Pipes.RowCount-2)
		}

		present := make(map[int]bool)
		pipes.ForEachAlive(func(p *engine.Sprite) {
			if p.X != float64(cfg.World.Width) {
				t.Errorf("pipe x = %f, expected %d", p.X, cfg.World.Width)
			}
			if p.Y < 0 || p.Y > maxY {
				t.Errorf("pipe y = %f outside [0, %f]", p.Y, maxY)
			}
			row := int(math.Round((p.Y - cfg.Pipes.RowOffset) / cfg.Pipes.RowSpacing))
			present[row] = true
		})

		var missing []int
		for row := 0; row < cfg.Pipes.RowCount; row++ {
			if !present[row] {
				missing = append(missing, row)
			}
		}
		if len(missing) != 2 || missing[1] != missing[0]+1 {
			t.Fatalf("call %d: missing rows %v, expected two adjacent rows", i, missing)
		}
		if missing[0] < cfg.Pipes.GapMin || missing[0] > cfg.Pipes.GapMax {
			t.Fatalf("hole %d outside [%d, %d]", missing[0], cfg.Pipes.GapMin, cfg.Pipes.GapMax)
		}
		holes[missing[0]] = true
	}

	for h := cfg.Pipes.GapMin; h <= cfg.Pipes.GapMax; h++ {
		if !holes[h] {
			t.Errorf("hole %d never chosen in 200 rows", h)
		}
	}
}

func TestAddRowOfPipesGapAtEdges(t *testing.T) {
	tests := []struct {
		name     string
		gapMin   int
		gapMax   int
		wantHole int
	}{
		{"negative gap min", -1, 0, 0},
		{"gap max on last row", 6, 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			cfg.Pipes.GapMin = tt.gapMin
			cfg.Pipes.GapMax = tt.gapMax
			f := newFixture(t, cfg)
			pipes := f.run.Pipes()

			for i := 0; i < 50; i++ {
				killAll(pipes)
				f.run.AddRowOfPipes()

				if got := pipes.CountAlive(); got != cfg.Pipes.RowCount-2 {
					t.Fatalf("call %d: spawned %d pipes, expected %d", i, got, cfg.Pipes.RowCount-2)
				}
				pipes.ForEachAlive(func(p *engine.Sprite) {
					row := int(math.Round((p.Y - cfg.Pipes.RowOffset) / cfg.Pipes.RowSpacing))
					if row == tt.wantHole || row == tt.wantHole+1 {
						t.Fatalf("call %d: pipe in gap row %d", i, row)
					}
				})
			}
		})
	}
}

func TestAddRowOfPipesScore(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())

	f.run.AddRowOfPipes()
	if f.run.Score() != 1 || f.run.Label().Text != "1" {
		t.Fatalf("score=%d label=%q, expected 1", f.run.Score(), f.run.Label().Text)
	}

	f.run.score = 41
	f.run.AddRowOfPipes()
	if f.run.Score() != 42 || f.run.Label().Text != "42" {
		t.Errorf("score=%d label=%q, expected 42", f.run.Score(), f.run.Label().Text)
	}
}

func TestAddRowOfPipesNonNumericScore(t *testing.T) {
	for _, prior := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		f := newFixture(t, config.DefaultFlappyConfig())
		f.run.score = prior

		f.run.AddRowOfPipes()

		if f.run.Score() != 1 {
			t.Errorf("prior %v: score = %d, expected 1", prior, f.run.Score())
		}
		if f.run.Label().Text != "1" {
			t.Errorf("prior %v: label = %q, expected \"1\"", prior, f.run.Label().Text)
		}
	}
}

func TestPoolExhaustionIsSilent(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	var buf bytes.Buffer
	f := newFixture(t, cfg)
	f.run.log = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	for i := 0; i < 4; i++ {
		f.run.AddRowOfPipes()
	}

	if got := f.run.Pipes().CountAlive(); got != cfg.Pipes.PoolSize {
		t.Errorf("alive pipes = %d, expected full pool %d", got, cfg.Pipes.PoolSize)
	}
	if f.run.Score() != 4 {
		t.Errorf("score = %d, expected 4 even when rows are short", f.run.Score())
	}
	if !strings.Contains(buf.String(), "pipe pool exhausted") {
		t.Errorf("expected exhaustion to be logged, got %q", buf.String())
	}
}

func TestHitPipeIsIdempotent(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	f.run.AddRowOfPipes()
	timer := f.run.timer

	f.run.HitPipe()

	if f.run.Bird().Alive {
		t.Error("bird should be dead")
	}
	if f.eng.cancels != 1 || f.eng.TimerActive(timer) {
		t.Errorf("cancels = %d active = %v, expected one cancel", f.eng.cancels, f.eng.TimerActive(timer))
	}
	f.run.Pipes().ForEachAlive(func(p *engine.Sprite) {
		if p.Body.VelocityX != 0 {
			t.Errorf("pipe velocity = %f, expected frozen", p.Body.VelocityX)
		}
	})

	// A second hit must not cancel again or touch the pipes.
	marker := f.run.Pipes().Children()[0]
	marker.Body.VelocityX = -5
	f.run.HitPipe()

	if f.eng.cancels != 1 {
		t.Errorf("cancels = %d after second hit, expected 1", f.eng.cancels)
	}
	if marker.Body.VelocityX != -5 {
		t.Error("second hit should not iterate pipes")
	}
	if len(f.sound.events) != 1 || f.sound.events[0] != SoundHit {
		t.Errorf("sound events = %v, expected a single hit", f.sound.events)
	}
}

func TestHitPipeStopsSpawner(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	f.run.HitPipe()

	f.eng.Advance(10 * time.Second)

	if f.run.Score() != 0 {
		t.Errorf("score = %d, spawner should be stopped", f.run.Score())
	}
}

func TestUpdateOutOfBoundsTakesPriority(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	bird := f.run.Bird()
	bird.Angle = 0
	bird.InWorld = false
	f.run.AddOnePipe(bird.X, bird.Y) // overlapping pipe

	f.run.Update()

	if f.restarts != 1 || !f.run.Over() {
		t.Errorf("restarts = %d, expected 1", f.restarts)
	}
	if !bird.Alive {
		t.Error("overlap must not be checked after leaving the world")
	}
	if bird.Angle != 0 {
		t.Errorf("angle = %f, rotation must be skipped", bird.Angle)
	}
}

func TestUpdateCollision(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	bird := f.run.Bird()
	bird.Angle = 0
	f.run.AddOnePipe(bird.X+10, bird.Y+10)

	f.run.Update()

	if bird.Alive {
		t.Error("bird should die on overlap")
	}
	if f.restarts != 0 {
		t.Errorf("collision alone should not restart, restarts = %d", f.restarts)
	}
	if bird.Angle != 0 {
		t.Errorf("dead bird rotated to %f", bird.Angle)
	}
}

func TestUpdateOverlapFailureRestarts(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	f.eng.overlapErr = errors.New("broken physics")
	bird := f.run.Bird()
	bird.Angle = 0

	f.run.Update()

	if f.restarts != 1 {
		t.Errorf("restarts = %d, expected 1", f.restarts)
	}
	if bird.Angle != 0 {
		t.Error("rotation must be skipped after a failed overlap query")
	}
}

func TestUpdateRotation(t *testing.T) {
	tests := []struct {
		start, want float64
	}{
		{0, 1},
		{-20, -19},
		{19.5, 20},
		{20, 20},
		{-30, -20},
	}

	for _, tc := range tests {
		f := newFixture(t, config.DefaultFlappyConfig())
		f.run.Bird().Angle = tc.start

		f.run.Update()

		if got := f.run.Bird().Angle; got != tc.want {
			t.Errorf("angle %f -> %f, expected %f", tc.start, got, tc.want)
		}
	}
}

func TestRequestRestartOnce(t *testing.T) {
	f := newFixture(t, config.DefaultFlappyConfig())
	f.run.Bird().InWorld = false

	f.run.Update()
	f.run.Update()

	if f.restarts != 1 {
		t.Errorf("restarts = %d, expected 1", f.restarts)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"12":                        "12",
		"<b>7</b>":                  "7",
		"<script>alert(1)</script>": "alert(1)",
		`5"&'`:                      "5",
		"3 > 2":                     "3  2",
		"<unclosed 9":               "unclosed 9",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestHitPipeLogs(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(t, config.DefaultFlappyConfig())
	f.run.log = log.New(&buf)

	f.run.HitPipe()

	if !strings.Contains(buf.String(), "bird hit a pipe") {
		t.Errorf("log output = %q", buf.String())
	}
}
