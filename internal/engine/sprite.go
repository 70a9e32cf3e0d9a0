// Package engine is the small host engine the game runs on: images, sprites
// with arcade physics, recyclable sprite pools, repeating timers, angle tweens,
// key bindings and text labels. A World is advanced by its owner once per
// tick and is not safe for concurrent use.
package engine

import "github.com/vovakirdan/tui-flappy/internal/core"

// Body holds the arcade physics state of a sprite.
type Body struct {
	VelocityX float64 // px/s
	VelocityY float64 // px/s
	GravityY  float64 // px/s², applied every step
}

// Sprite is a positioned image in the world.
//
// Alive is game-level liveness; Exists controls whether the engine still
// simulates, collides and draws the sprite. Kill clears both.
type Sprite struct {
	Key   string
	X, Y  float64
	W, H  float64
	Angle float64 // degrees

	Alive   bool
	Exists  bool
	InWorld bool

	// CheckWorldBounds enables out-of-bounds tracking; with OutOfBoundsKill
	// the sprite is killed when it leaves the world after having been inside.
	CheckWorldBounds bool
	OutOfBoundsKill  bool

	Body *Body // nil until physics is enabled

	wasInWorld bool
}

// Bounds returns the sprite's box in world coordinates.
func (s *Sprite) Bounds() core.RectF {
	return core.NewRectF(s.X, s.Y, s.W, s.H)
}

// Reset revives the sprite at (x, y) with zero velocity.
func (s *Sprite) Reset(x, y float64) {
	s.X = x
	s.Y = y
	s.Alive = true
	s.Exists = true
	s.wasInWorld = false
	if s.Body != nil {
		s.Body.VelocityX = 0
		s.Body.VelocityY = 0
	}
}

// Kill removes the sprite from simulation until the next Reset.
func (s *Sprite) Kill() {
	s.Alive = false
	s.Exists = false
}
