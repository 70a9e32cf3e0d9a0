package flappy

import (
	"errors"
	"fmt"
)

// ErrMalformedAsset reports an embedded sprite that is not a PNG data URI.
var ErrMalformedAsset = errors.New("malformed PNG data URI")

// Components that can fail while a run is created.
const (
	ComponentSprite   = "sprite"
	ComponentPhysics  = "physics"
	ComponentGroup    = "group"
	ComponentKeyboard = "keyboard"
	ComponentLabel    = "label"
)

// AssetError is returned when a sprite payload cannot be loaded.
type AssetError struct {
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("flappy: asset %q: %v", e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// SetupError is returned when a required engine object cannot be created.
type SetupError struct {
	Component string
	Err       error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("flappy: create %s: %v", e.Component, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
