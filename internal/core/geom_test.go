package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(25, 25, 50, 50),
			expected: true,
		},
		{
			name:     "separate horizontally",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(60, 0, 50, 50),
			expected: false,
		},
		{
			name:     "separate vertically",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(0, 60, 50, 50),
			expected: false,
		},
		{
			name:     "touching edge",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(50, 0, 50, 50),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewRectF(0, 0, 400, 490),
			b:        NewRectF(100, 245, 50, 50),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (25, 25)", r.Right(), r.Bottom())
	}

	f := NewRectF(100, 245, 50, 50)
	if f.Right() != 150 || f.Bottom() != 295 {
		t.Errorf("edges = (%f, %f), expected (150, 295)", f.Right(), f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, -20, 20, 5.5},
		{-25, -20, 20, -20},
		{21, -20, 20, 20},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
