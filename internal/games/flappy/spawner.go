package flappy

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var tagLike = regexp.MustCompile(`<[^>]*>`)

// AddOnePipe revives the first dead pipe at (x, y), moving left.
// When the pool is exhausted the pipe is skipped.
func (r *Run) AddOnePipe(x, y float64) {
	if r.pipes == nil {
		return
	}
	p := r.pipes.GetFirstDead()
	if p == nil {
		r.log.Debug("pipe pool exhausted", "capacity", r.pipes.Len(), "x", x, "y", y)
		return
	}
	p.Reset(x, y)
	if p.Body != nil {
		p.Body.VelocityX = r.cfg.Pipes.Velocity
	}
	p.CheckWorldBounds = true
	p.OutOfBoundsKill = true
}

// AddRowOfPipes spawns a column of pipes at the right edge leaving two
// adjacent empty rows as the gap, then counts the row in the score.
func (r *Run) AddRowOfPipes() {
	if r.label == nil {
		return
	}

	pc := r.cfg.Pipes
	hole := pc.GapMin + r.rng.Intn(pc.GapMax-pc.GapMin+1)
	// Both gap rows must lie inside the column.
	hole = max(0, min(hole, pc.RowCount-2))
	x := float64(r.cfg.World.Width)
	for i := 0; i < pc.RowCount; i++ {
		if i == hole || i == hole+1 {
			continue
		}
		r.AddOnePipe(x, float64(i)*pc.RowSpacing+pc.RowOffset)
	}

	r.score = float64(coerceScore(r.score) + 1)
	r.label.Text = sanitizeLabel(strconv.Itoa(coerceScore(r.score)))
}

// coerceScore maps non-finite scores to 0.
func coerceScore(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}

// sanitizeLabel strips tag-like substrings and markup characters.
func sanitizeLabel(s string) string {
	s = tagLike.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '&', '"', '\'':
			return -1
		}
		return r
	}, s)
}
