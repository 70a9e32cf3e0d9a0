package engine

import "time"

// angleTween rotates a sprite linearly toward a target angle.
type angleTween struct {
	sprite   *Sprite
	from, to float64
	duration time.Duration
	elapsed  time.Duration
}

func (tw *angleTween) step(dt time.Duration) (done bool) {
	tw.elapsed += dt
	if tw.duration <= 0 || tw.elapsed >= tw.duration {
		tw.sprite.Angle = tw.to
		return true
	}
	p := float64(tw.elapsed) / float64(tw.duration)
	tw.sprite.Angle = tw.from + (tw.to-tw.from)*p
	return false
}
