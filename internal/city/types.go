package city

import "math"

// Road is one rasterized segment plus its width in pixels. Roads are
// recreated wholesale on every generation, never mutated in place.
type Road struct {
	Points []Point
	Width  int
}

// Circle is an explicit center+radius value stored beside every rasterized
// park/fountain boundary so downstream consumers never re-derive it by
// averaging boundary points.
type Circle struct {
	X, Y float64
	R    float64
}

// Contains reports whether (px,py) lies inside or on the circle.
func (c Circle) Contains(px, py float64) bool {
	dx := px - c.X
	dy := py - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// DistanceTo returns the center-to-center distance to (px,py).
func (c Circle) DistanceTo(px, py float64) float64 {
	return math.Hypot(px-c.X, py-c.Y)
}

// Park is a circular green area: the rasterized boundary for 2D point
// rendering plus the exact circle it was generated from.
type Park struct {
	Points []Point
	Circle Circle
}

// Fountain is shaped like a Park but is a distinguished singleton at the
// canvas center. An empty Points slice means no fountain.
type Fountain = Park

// BuildingKind classifies a building by height, which drives both the
// sampled height range and the facade texture.
type BuildingKind int

const (
	LowRise BuildingKind = iota
	MidRise
	HighRise
)

func (k BuildingKind) String() string {
	switch k {
	case LowRise:
		return "Low-Rise"
	case MidRise:
		return "Mid-Rise"
	case HighRise:
		return "High-Rise"
	}
	return "Unknown"
}

// Building is a 3D-extruded rectangle. Immutable once placed.
type Building struct {
	X, Y   float64 // footprint center, canvas pixels
	Width  float64
	Depth  float64
	Height float64
	Kind   BuildingKind
}

// CityData is the aggregate snapshot of one generated city. Exactly one is
// live at a time; Generate clears and rebuilds it entirely.
type CityData struct {
	Roads     []Road
	Parks     []Park
	Fountain  Fountain
	Buildings []Building
	Generated bool
}

func (d *CityData) Clear() {
	d.Roads = nil
	d.Parks = nil
	d.Fountain = Fountain{}
	d.Buildings = nil
	d.Generated = false
}

// HasFountain reports whether a fountain was generated.
func (d *CityData) HasFountain() bool {
	return len(d.Fountain.Points) > 0
}

// ObstacleCircles returns the park and fountain circles, the obstacle set
// that roads and buildings must avoid.
func (d *CityData) ObstacleCircles() []Circle {
	circles := make([]Circle, 0, len(d.Parks)+1)
	for _, p := range d.Parks {
		circles = append(circles, p.Circle)
	}
	if d.HasFountain() {
		circles = append(circles, d.Fountain.Circle)
	}
	return circles
}
