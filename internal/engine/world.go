package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Engine errors.
var (
	ErrBadImage      = errors.New("malformed image payload")
	ErrUnknownImage  = errors.New("image not loaded")
	ErrNilSprite     = errors.New("sprite is nil")
	ErrNilGroup      = errors.New("group is nil")
	ErrNoPhysics     = errors.New("sprite has no physics body")
	ErrInvalidAction = errors.New("cannot bind action")
	ErrPoolCapacity  = errors.New("pool capacity must be positive")
)

// World owns every object of one run: loaded images, sprites, pools,
// labels, timers, tweens and key bindings.
type World struct {
	bounds   core.RectF
	images   map[string]Image
	sprites  []*Sprite
	groups   []*Group
	labels   []*Label
	timers   timers
	tweens   []*angleTween
	bindings map[core.Action][]func()
	elapsed  time.Duration
}

// NewWorld creates an empty world of the given size.
func NewWorld(width, height float64) *World {
	return &World{
		bounds:   core.NewRectF(0, 0, width, height),
		images:   make(map[string]Image),
		bindings: make(map[core.Action][]func()),
	}
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.RectF {
	return w.bounds
}

// Elapsed returns the simulated time since the world was created.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// LoadImage registers a base64 PNG data URI under name.
func (w *World) LoadImage(name, data string) error {
	img, err := decodePNGDataURI(name, data)
	if err != nil {
		return err
	}
	w.images[name] = img
	return nil
}

// Image returns a loaded image by key.
func (w *World) Image(key string) (Image, bool) {
	img, ok := w.images[key]
	return img, ok
}

func (w *World) newSprite(x, y float64, key string) (*Sprite, error) {
	img, ok := w.images[key]
	if !ok {
		return nil, fmt.Errorf("engine: sprite %q: %w", key, ErrUnknownImage)
	}
	return &Sprite{
		Key: key,
		X:   x,
		Y:   y,
		W:   float64(img.Width),
		H:   float64(img.Height),
	}, nil
}

// AddSprite creates a live sprite using a loaded image.
func (w *World) AddSprite(x, y float64, key string) (*Sprite, error) {
	s, err := w.newSprite(x, y, key)
	if err != nil {
		return nil, err
	}
	s.Alive = true
	s.Exists = true
	s.InWorld = w.bounds.Intersects(s.Bounds())
	s.wasInWorld = s.InWorld
	w.sprites = append(w.sprites, s)
	return s, nil
}

// EnablePhysics attaches an arcade physics body to s.
func (w *World) EnablePhysics(s *Sprite) error {
	if s == nil {
		return fmt.Errorf("engine: enable physics: %w", ErrNilSprite)
	}
	if s.Body == nil {
		s.Body = &Body{}
	}
	return nil
}

// CreatePool allocates capacity dead sprites with physics bodies.
func (w *World) CreatePool(capacity int, key string) (*Group, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("engine: pool %q: %w", key, ErrPoolCapacity)
	}
	g := &Group{key: key, children: make([]*Sprite, 0, capacity)}
	for i := 0; i < capacity; i++ {
		s, err := w.newSprite(0, 0, key)
		if err != nil {
			return nil, err
		}
		s.Body = &Body{}
		g.children = append(g.children, s)
	}
	w.groups = append(w.groups, g)
	return g, nil
}

// Overlap calls onOverlap(s, child) for every existing child of g whose box
// intersects s. The sprite must have a physics body.
func (w *World) Overlap(s *Sprite, g *Group, onOverlap func(a, b *Sprite)) error {
	if s == nil {
		return fmt.Errorf("engine: overlap: %w", ErrNilSprite)
	}
	if g == nil {
		return fmt.Errorf("engine: overlap: %w", ErrNilGroup)
	}
	if s.Body == nil {
		return fmt.Errorf("engine: overlap %q: %w", s.Key, ErrNoPhysics)
	}
	if !s.Exists {
		return nil
	}
	bounds := s.Bounds()
	for _, c := range g.children {
		if c.Exists && bounds.Intersects(c.Bounds()) {
			onOverlap(s, c)
		}
	}
	return nil
}

// ScheduleRepeating runs fn every interval of simulated time.
func (w *World) ScheduleRepeating(interval time.Duration, fn func()) TimerHandle {
	return w.timers.schedule(interval, fn)
}

// Cancel stops a repeating timer. Cancelling twice is a no-op.
func (w *World) Cancel(h TimerHandle) {
	w.timers.cancel(h)
}

// TimerActive reports whether h is still scheduled.
func (w *World) TimerActive(h TimerHandle) bool {
	return w.timers.active(h)
}

// TweenAngle rotates s to angle over d, replacing any running tween on s.
func (w *World) TweenAngle(s *Sprite, angle float64, d time.Duration) {
	if s == nil {
		return
	}
	kept := w.tweens[:0]
	for _, tw := range w.tweens {
		if tw.sprite != s {
			kept = append(kept, tw)
		}
	}
	w.tweens = append(kept, &angleTween{sprite: s, from: s.Angle, to: angle, duration: d})
}

// BindKey registers fn to run whenever action is dispatched.
func (w *World) BindKey(action core.Action, fn func()) error {
	if action == core.ActionNone || fn == nil {
		return fmt.Errorf("engine: bind %s: %w", action, ErrInvalidAction)
	}
	w.bindings[action] = append(w.bindings[action], fn)
	return nil
}

// Dispatch runs the handlers bound to each action present in the frame.
func (w *World) Dispatch(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionJump, core.ActionPause, core.ActionRestart, core.ActionBack, core.ActionQuit} {
		if !in.Has(a) {
			continue
		}
		for _, fn := range w.bindings[a] {
			fn()
		}
	}
}

// AddLabel places a text label in the world.
func (w *World) AddLabel(x, y float64, text string, style TextStyle) (*Label, error) {
	l := &Label{X: x, Y: y, Text: text, Style: style}
	w.labels = append(w.labels, l)
	return l, nil
}

// Labels returns every label in creation order.
func (w *World) Labels() []*Label {
	return w.labels
}

// Advance moves the simulation forward by dt: timers fire, tweens progress,
// bodies integrate gravity and velocity, then world bounds are checked.
func (w *World) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	w.elapsed += dt

	w.timers.advance(dt)
	w.stepTweens(dt)

	secs := dt.Seconds()
	for _, s := range w.sprites {
		w.integrate(s, secs)
	}
	for _, g := range w.groups {
		for _, s := range g.children {
			w.integrate(s, secs)
		}
	}
}

func (w *World) stepTweens(dt time.Duration) {
	kept := w.tweens[:0]
	for _, tw := range w.tweens {
		if !tw.step(dt) {
			kept = append(kept, tw)
		}
	}
	w.tweens = kept
}

func (w *World) integrate(s *Sprite, secs float64) {
	if !s.Exists {
		return
	}
	if b := s.Body; b != nil {
		b.VelocityY += b.GravityY * secs
		s.X += b.VelocityX * secs
		s.Y += b.VelocityY * secs
	}

	s.InWorld = w.bounds.Intersects(s.Bounds())
	if s.InWorld {
		s.wasInWorld = true
		return
	}
	if s.CheckWorldBounds && s.wasInWorld {
		s.wasInWorld = false
		if s.OutOfBoundsKill {
			s.Kill()
		}
	}
}
