package engine

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"
)

const pngDataURIPrefix = "data:image/png;base64,"

// Image is a decoded image header registered under a key.
type Image struct {
	Name   string
	Width  int
	Height int
}

// decodePNGDataURI parses a base64 PNG data URI and returns its dimensions.
func decodePNGDataURI(name, data string) (Image, error) {
	payload, ok := strings.CutPrefix(data, pngDataURIPrefix)
	if !ok {
		return Image{}, fmt.Errorf("engine: image %q: %w: missing %q prefix", name, ErrBadImage, pngDataURIPrefix)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("engine: image %q: %w: %v", name, ErrBadImage, err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Image{}, fmt.Errorf("engine: image %q: %w: %v", name, ErrBadImage, err)
	}
	return Image{Name: name, Width: cfg.Width, Height: cfg.Height}, nil
}
