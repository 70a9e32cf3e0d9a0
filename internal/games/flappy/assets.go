package flappy

import "regexp"

// Image keys.
const (
	BirdKey = "bird"
	PipeKey = "pipe"
)

var pngDataURI = regexp.MustCompile(`^data:image/png;base64,[A-Za-z0-9+/]+={0,2}$`)

// Assets holds the sprite payloads loaded on every preload.
type Assets struct {
	Bird string
	Pipe string
}

// DefaultAssets returns the built-in 50x50 sprites.
func DefaultAssets() Assets {
	return Assets{
		Bird: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAADIAAAAyCAIAAACRXR/mAAAAPUlEQVR42u3OQQkAAAgEsMtj/ypG8W8NhcECLNN1ULS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLR+tRbBYBPu6M3OBwAAAABJRU5ErkJggg==",
		Pipe: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAADIAAAAyCAIAAACRXR/mAAAAPElEQVR42u3OAQkAAAgDsCeynAGtZg2FwQIsPXVQtLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tH61FgzCbkQCjsT4AAAAAElFTkSuQmCC",
	}
}

// preload validates both payloads and registers them with the engine.
func preload(eng Engine, assets Assets) error {
	for _, a := range []struct{ name, data string }{
		{BirdKey, assets.Bird},
		{PipeKey, assets.Pipe},
	} {
		if !pngDataURI.MatchString(a.data) {
			return &AssetError{Name: a.name, Err: ErrMalformedAsset}
		}
		if err := eng.LoadImage(a.name, a.data); err != nil {
			return &AssetError{Name: a.name, Err: err}
		}
	}
	return nil
}
