package flappy

// SoundEvent names a game moment that may play a sound.
type SoundEvent string

const (
	SoundJump SoundEvent = "jump"
	SoundHit  SoundEvent = "hit"
)

// SoundHook receives sound events. The game never waits on it.
type SoundHook interface {
	Play(event SoundEvent)
}

// NopSound discards every event.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(SoundEvent) {}
