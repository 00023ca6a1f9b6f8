package city

import (
	"fmt"
	"math"
)

const roadMargin = 50

// RoadGenerator produces road networks covering the canvas. Canvas
// dimensions are fixed at construction.
type RoadGenerator struct {
	width  int
	height int
}

func NewRoadGenerator(width, height int) *RoadGenerator {
	return &RoadGenerator{width: width, height: height}
}

// Generate produces the road set for the configured pattern. Every segment
// is rasterized with BresenhamLine at the configured width.
func (g *RoadGenerator) Generate(cfg Config, rng *Rand) []Road {
	fmt.Printf("generating roads (%s pattern)\n", cfg.RoadPattern)
	switch cfg.RoadPattern {
	case RoadRadial:
		return g.radialRoads(cfg)
	case RoadRandom:
		return g.randomRoads(cfg, rng)
	default:
		return g.gridRoads(cfg)
	}
}

// GenerateAvoiding generates roads and strips every point that falls inside
// a park or fountain circle.
func (g *RoadGenerator) GenerateAvoiding(cfg Config, parks []Park, fountain Fountain, rng *Rand) []Road {
	roads := g.Generate(cfg, rng)

	circles := make([]Circle, 0, len(parks)+1)
	for _, p := range parks {
		circles = append(circles, p.Circle)
	}
	if len(fountain.Points) > 0 {
		circles = append(circles, fountain.Circle)
	}
	return FilterRoads(roads, circles)
}

// FilterRoads removes road points lying inside any of the given circles,
// preserving the surviving points in path order. Roads left with no points
// are dropped entirely.
func FilterRoads(roads []Road, circles []Circle) []Road {
	if len(circles) == 0 {
		return roads
	}

	filtered := make([]Road, 0, len(roads))
	removed := 0
	for _, road := range roads {
		kept := make([]Point, 0, len(road.Points))
		for _, pt := range road.Points {
			inside := false
			for _, c := range circles {
				if c.Contains(float64(pt.X), float64(pt.Y)) {
					inside = true
					removed++
					break
				}
			}
			if !inside {
				kept = append(kept, pt)
			}
		}
		if len(kept) > 0 {
			filtered = append(filtered, Road{Points: kept, Width: road.Width})
		}
	}
	if removed > 0 {
		fmt.Printf("  removed %d road points inside parks/fountain (%d -> %d segments)\n",
			removed, len(roads), len(filtered))
	}
	return filtered
}

// gridRoads partitions the canvas minus a margin into layoutSize cells and
// emits full-span horizontal and vertical roads along each cell edge.
func (g *RoadGenerator) gridRoads(cfg Config) []Road {
	spacing := (g.width - 2*roadMargin) / cfg.LayoutSize

	roads := make([]Road, 0, 2*(cfg.LayoutSize+1))
	for i := 0; i <= cfg.LayoutSize; i++ {
		y := roadMargin + i*spacing
		roads = append(roads, newRoad(roadMargin, y, g.width-roadMargin, y, cfg.RoadWidth))
	}
	for i := 0; i <= cfg.LayoutSize; i++ {
		x := roadMargin + i*spacing
		roads = append(roads, newRoad(x, roadMargin, x, g.height-roadMargin, cfg.RoadWidth))
	}
	return roads
}

// radialRoads emits layoutSize spokes from the canvas center plus
// layoutSize/2 concentric rings. Rings are re-segmented into chords sampled
// every 8th boundary point, a dashed approximation of a circular route.
func (g *RoadGenerator) radialRoads(cfg Config) []Road {
	centerX := g.width / 2
	centerY := g.height / 2
	maxRadius := min(g.width, g.height)/2 - roadMargin

	roads := make([]Road, 0, cfg.LayoutSize)
	for i := 0; i < cfg.LayoutSize; i++ {
		angle := 2 * math.Pi * float64(i) / float64(cfg.LayoutSize)
		endX := centerX + int(float64(maxRadius)*math.Cos(angle))
		endY := centerY + int(float64(maxRadius)*math.Sin(angle))
		endX = clamp(endX, roadMargin, g.width-roadMargin)
		endY = clamp(endY, roadMargin, g.height-roadMargin)
		roads = append(roads, newRoad(centerX, centerY, endX, endY, cfg.RoadWidth))
	}

	numRings := cfg.LayoutSize / 2
	for ring := 1; ring <= numRings; ring++ {
		radius := maxRadius * ring / numRings

		circle := MidpointCircle(centerX, centerY, radius)
		valid := circle[:0:0]
		for _, pt := range circle {
			if pt.X >= roadMargin && pt.X <= g.width-roadMargin &&
				pt.Y >= roadMargin && pt.Y <= g.height-roadMargin {
				valid = append(valid, pt)
			}
		}

		// The final chord wraps from the tail of the filtered list back to
		// its head, closing the ring.
		for i := 0; i < len(valid); i += 8 {
			next := (i + 8) % len(valid)
			roads = append(roads, newRoad(valid[i].X, valid[i].Y, valid[next].X, valid[next].Y, cfg.RoadWidth))
		}
	}
	return roads
}

// randomRoads draws chords between a random node set: 2*layoutSize interior
// points plus four corner anchors. Chord draws that pick the same node
// twice are skipped, so the result may hold fewer than 3*layoutSize roads.
func (g *RoadGenerator) randomRoads(cfg Config, rng *Rand) []Road {
	nodes := make([]Point, 0, 2*cfg.LayoutSize+4)
	for i := 0; i < 2*cfg.LayoutSize; i++ {
		nodes = append(nodes, g.randomPoint(rng, roadMargin))
	}
	nodes = append(nodes,
		Point{100, 100},
		Point{g.width - 100, 100},
		Point{100, g.height - 100},
		Point{g.width - 100, g.height - 100},
	)

	numRoads := 3 * cfg.LayoutSize
	roads := make([]Road, 0, numRoads)
	for i := 0; i < numRoads; i++ {
		a := rng.Intn(len(nodes))
		b := rng.Intn(len(nodes))
		if a == b {
			continue
		}
		roads = append(roads, newRoad(nodes[a].X, nodes[a].Y, nodes[b].X, nodes[b].Y, cfg.RoadWidth))
	}
	return roads
}

func (g *RoadGenerator) randomPoint(rng *Rand, margin int) Point {
	return Point{
		X: rng.Range(margin, g.width-margin),
		Y: rng.Range(margin, g.height-margin),
	}
}

func newRoad(x0, y0, x1, y1, width int) Road {
	return Road{Points: BresenhamLine(x0, y0, x1, y1), Width: width}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
