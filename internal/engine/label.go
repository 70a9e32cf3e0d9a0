package engine

import "github.com/vovakirdan/tui-flappy/internal/core"

// TextStyle describes how a label is drawn.
type TextStyle struct {
	FontSize int
	Color    core.Color
}

// Label is a piece of text placed in world coordinates.
type Label struct {
	X, Y  float64
	Text  string
	Style TextStyle
}
