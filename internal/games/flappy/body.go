package flappy

// Jump gives the bird an upward impulse and tilts it nose-up.
// It does nothing when the bird is missing or dead.
func (r *Run) Jump() {
	if r.bird == nil || !r.bird.Alive || r.bird.Body == nil {
		return
	}
	r.bird.Body.VelocityY = r.cfg.Bird.JumpImpulse
	r.eng.TweenAngle(r.bird, -r.cfg.Bird.MaxAngle, r.cfg.JumpTween())
	r.sound.Play(SoundJump)
}
