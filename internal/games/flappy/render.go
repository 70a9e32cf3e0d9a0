package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Visual characters for rendering
const (
	PipeChar     = '█'
	BirdChar     = '●'
	BirdUpChar   = '▲'
	BirdFlatChar = '▶'
	BirdDownChar = '▼'
	DeadBirdChar = 'x'
)

// viewport maps world pixels to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, world core.RectF) viewport {
	return viewport{
		sx: float64(dst.Width()) / world.W,
		sy: float64(dst.Height()) / world.H,
	}
}

// cells converts a world box to screen cells, keeping at least one cell
// in each direction so small sprites stay visible.
func (v viewport) cells(b core.RectF) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Floor(b.Right() * v.sx))
	y1 := int(math.Floor(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.drawCenteredMessage(dst, "CANNOT START", g.err.Error())
		return
	}
	if g.run == nil {
		return
	}

	vp := newViewport(dst, g.eng.Bounds())

	if pipes := g.run.Pipes(); pipes != nil {
		for _, p := range pipes.Children() {
			if p.Exists {
				dst.FillRect(vp.cells(p.Bounds()), PipeChar, core.ColorGreen)
			}
		}
	}

	if b := g.run.Bird(); b != nil && b.Exists {
		g.drawBird(dst, vp, b)
	}

	if l := g.run.Label(); l != nil {
		dst.DrawTextColored(int(l.X*vp.sx), int(l.Y*vp.sy), l.Text, l.Style.Color)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	} else if st := g.State(); st.GameOver {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf(" GAME OVER - %d ", st.Score))
	}
}

func (g *Game) drawBird(dst *core.Screen, vp viewport, b *engine.Sprite) {
	r := vp.cells(b.Bounds())
	dst.FillRect(r, BirdChar, core.ColorBrightYellow)

	head := BirdFlatChar
	switch {
	case !b.Alive:
		head = DeadBirdChar
	case b.Angle < -5:
		head = BirdUpChar
	case b.Angle > 10:
		head = BirdDownChar
	}
	dst.SetColored(r.Right()-1, r.Y+r.H/2, head, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
