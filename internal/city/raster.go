package city

// Point is an integer pixel coordinate. All city elements start out as
// collections of Points before being converted to vertices.
type Point struct {
	X, Y int
}

// BresenhamLine returns the ordered, gap-free pixel points from (x0,y0) to
// (x1,y1) inclusive, using integer arithmetic only. Works in all eight
// octants. Identical endpoints yield a single point.
func BresenhamLine(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	points := make([]Point, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := x0, y0

	for {
		points = append(points, Point{X: x, Y: y})
		if x == x1 && y == y1 {
			return points
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// MidpointCircle returns the perimeter points of a circle at (cx,cy) with
// the given radius, computed for one octant and mirrored eight ways.
// Radius zero degenerates to the center point repeated for each octant.
func MidpointCircle(cx, cy, radius int) []Point {
	x := 0
	y := radius
	d := 1 - radius

	points := make([]Point, 0, 8*(radius+1))
	mirror := func(x, y int) {
		points = append(points,
			Point{cx + x, cy + y},
			Point{cx - x, cy + y},
			Point{cx + x, cy - y},
			Point{cx - x, cy - y},
			Point{cx + y, cy + x},
			Point{cx - y, cy + x},
			Point{cx + y, cy - x},
			Point{cx - y, cy - x},
		)
	}

	mirror(x, y)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		mirror(x, y)
	}
	return points
}
