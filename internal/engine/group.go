package engine

// Group is a fixed-capacity pool of sprites sharing one image.
// Sprites are created dead and recycled with GetFirstDead + Reset.
type Group struct {
	key      string
	children []*Sprite
}

// GetFirstDead returns the first sprite that is not alive, or nil when the
// pool is exhausted.
func (g *Group) GetFirstDead() *Sprite {
	for _, s := range g.children {
		if !s.Alive {
			return s
		}
	}
	return nil
}

// ForEachAlive calls fn for every alive sprite in pool order.
func (g *Group) ForEachAlive(fn func(s *Sprite)) {
	for _, s := range g.children {
		if s.Alive {
			fn(s)
		}
	}
}

// CountAlive returns the number of alive sprites.
func (g *Group) CountAlive() int {
	n := 0
	for _, s := range g.children {
		if s.Alive {
			n++
		}
	}
	return n
}

// Len returns the pool capacity.
func (g *Group) Len() int {
	return len(g.children)
}

// Children returns the pooled sprites. The slice must not be modified.
func (g *Group) Children() []*Sprite {
	return g.children
}

// Key returns the image key shared by the pool.
func (g *Group) Key() string {
	return g.key
}
