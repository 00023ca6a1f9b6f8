package city

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBresenhamLineHorizontal(t *testing.T) {
	points := BresenhamLine(0, 0, 600, 0)
	require.Len(t, points, 601)
	for i, pt := range points {
		assert.Equal(t, i, pt.X)
		assert.Equal(t, 0, pt.Y)
	}
}

func TestBresenhamLineProperties(t *testing.T) {
	cases := []struct{ x0, y0, x1, y1 int }{
		{0, 0, 10, 3},    // shallow positive
		{0, 0, 3, 10},    // steep positive
		{0, 0, -10, 3},   // shallow, -x
		{0, 0, -3, -10},  // steep, -x -y
		{5, 7, 5, -20},   // vertical
		{-4, 2, 30, 2},   // horizontal
		{0, 0, 17, 17},   // diagonal
		{12, -9, -25, 4}, // arbitrary
	}

	for _, c := range cases {
		points := BresenhamLine(c.x0, c.y0, c.x1, c.y1)
		dx := abs(c.x1 - c.x0)
		dy := abs(c.y1 - c.y0)

		require.Len(t, points, max(dx, dy)+1, "line (%d,%d)->(%d,%d)", c.x0, c.y0, c.x1, c.y1)
		assert.Equal(t, Point{c.x0, c.y0}, points[0])
		assert.Equal(t, Point{c.x1, c.y1}, points[len(points)-1])

		for i := 1; i < len(points); i++ {
			assert.LessOrEqual(t, abs(points[i].X-points[i-1].X), 1)
			assert.LessOrEqual(t, abs(points[i].Y-points[i-1].Y), 1)
		}
	}
}

func TestBresenhamLineSymmetry(t *testing.T) {
	forward := BresenhamLine(-7, 3, 22, -11)
	backward := BresenhamLine(22, -11, -7, 3)

	toSet := func(pts []Point) map[Point]bool {
		set := make(map[Point]bool, len(pts))
		for _, p := range pts {
			set[p] = true
		}
		return set
	}
	assert.Equal(t, toSet(forward), toSet(backward))
}

func TestBresenhamLineDegenerate(t *testing.T) {
	points := BresenhamLine(42, 17, 42, 17)
	require.Len(t, points, 1)
	assert.Equal(t, Point{42, 17}, points[0])
}

func TestMidpointCirclePointCounts(t *testing.T) {
	// Regression oracles matching the reference point counts.
	assert.Len(t, MidpointCircle(400, 300, 80), 464)
	assert.Len(t, MidpointCircle(400, 300, 50), 296)
	assert.Len(t, MidpointCircle(400, 300, 30), 176)
}

func TestMidpointCircleOnPerimeter(t *testing.T) {
	for _, r := range []int{5, 30, 50, 80} {
		for _, pt := range MidpointCircle(0, 0, r) {
			dist := math.Round(math.Hypot(float64(pt.X), float64(pt.Y)))
			assert.InDelta(t, float64(r), dist, 1, "radius %d point (%d,%d)", r, pt.X, pt.Y)
		}
	}
}

func TestMidpointCircleSymmetry(t *testing.T) {
	points := MidpointCircle(0, 0, 40)
	set := make(map[Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	for _, p := range points {
		for _, m := range []Point{
			{-p.X, p.Y}, {p.X, -p.Y}, {-p.X, -p.Y},
			{p.Y, p.X}, {-p.Y, p.X}, {p.Y, -p.X}, {-p.Y, -p.X},
		} {
			assert.True(t, set[m], "missing mirror %v of %v", m, p)
		}
	}
}

func TestMidpointCircleZeroRadius(t *testing.T) {
	points := MidpointCircle(10, 20, 0)
	require.Len(t, points, 8)
	for _, p := range points {
		assert.Equal(t, Point{10, 20}, p)
	}
}
