package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Engine is the host a run is built on. *engine.World implements it.
type Engine interface {
	LoadImage(name, data string) error
	AddSprite(x, y float64, key string) (*engine.Sprite, error)
	EnablePhysics(s *engine.Sprite) error
	CreatePool(capacity int, key string) (*engine.Group, error)
	Overlap(s *engine.Sprite, g *engine.Group, onOverlap func(a, b *engine.Sprite)) error
	ScheduleRepeating(interval time.Duration, fn func()) engine.TimerHandle
	Cancel(h engine.TimerHandle)
	TweenAngle(s *engine.Sprite, angle float64, d time.Duration)
	BindKey(action core.Action, fn func()) error
	AddLabel(x, y float64, text string, style engine.TextStyle) (*engine.Label, error)
	Dispatch(in core.InputFrame)
	Advance(dt time.Duration)
	Bounds() core.RectF
}

// EngineFactory creates a fresh engine for a world of the given size.
type EngineFactory func(width, height float64) Engine

// NewWorldEngine is the default EngineFactory.
func NewWorldEngine(width, height float64) Engine {
	return engine.NewWorld(width, height)
}
