package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Update runs once per frame after the engine has advanced.
// Leaving the world restarts the run before anything else is checked; a
// failed overlap query is treated like a fatal collision.
func (r *Run) Update() {
	if r.bird == nil || r.pipes == nil {
		return
	}

	if !r.bird.InWorld {
		r.requestRestart("out of bounds")
		return
	}

	err := r.eng.Overlap(r.bird, r.pipes, func(_, _ *engine.Sprite) {
		r.HitPipe()
	})
	if err != nil {
		r.log.Warn("overlap query failed", "error", err)
		r.requestRestart("collision query failed")
		return
	}

	bc := r.cfg.Bird
	if r.bird.Alive && r.bird.Angle < bc.MaxAngle {
		r.bird.Angle = core.ClampF(r.bird.Angle+bc.AngleStep, bc.MinAngle, bc.MaxAngle)
	}
}

// HitPipe kills the bird, stops the spawner and freezes every pipe.
// Only the first call of a run has any effect.
func (r *Run) HitPipe() {
	if r.bird == nil || r.pipes == nil || !r.bird.Alive {
		return
	}

	r.bird.Alive = false
	if r.timer != 0 {
		r.eng.Cancel(r.timer)
		r.timer = 0
	}
	r.pipes.ForEachAlive(func(p *engine.Sprite) {
		if p.Body != nil {
			p.Body.VelocityX = 0
		}
	})

	r.log.Info("bird hit a pipe", "score", r.Score())
	r.sound.Play(SoundHit)
}
