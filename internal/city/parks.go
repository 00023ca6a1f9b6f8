package city

import "fmt"

// Park spacing rules: centers at least 2.5 radii apart, and clear of the
// fountain by both radii plus a 30 px gap.
const (
	parkSpacingFactor = 2.5
	parkFountainGap   = 30.0
)

// placeParks places up to cfg.NumParks circular parks by rejection
// sampling. The attempt budget is shared across all slots, so a crowded
// canvas terminates with fewer parks rather than looping.
func (g *Generator) placeParks(cfg Config, rng *Rand) []Park {
	if cfg.NumParks == 0 {
		return nil
	}
	fmt.Printf("placing %d parks\n", cfg.NumParks)

	parks := make([]Park, 0, cfg.NumParks)
	margin := cfg.ParkRadius + 50
	maxAttempts := cfg.NumParks * 100

	for attempts := 0; len(parks) < cfg.NumParks && attempts < maxAttempts; attempts++ {
		x := rng.Range(margin, g.width-margin)
		y := rng.Range(margin, g.height-margin)

		if !g.validParkPosition(cfg, parks, x, y) {
			continue
		}

		parks = append(parks, Park{
			Points: MidpointCircle(x, y, cfg.ParkRadius),
			Circle: Circle{X: float64(x), Y: float64(y), R: float64(cfg.ParkRadius)},
		})
	}

	if len(parks) < cfg.NumParks {
		fmt.Printf("  placed only %d of %d parks (attempt budget exhausted)\n", len(parks), cfg.NumParks)
	}
	return parks
}

func (g *Generator) validParkPosition(cfg Config, parks []Park, x, y int) bool {
	minSpacing := float64(cfg.ParkRadius) * parkSpacingFactor
	for _, existing := range parks {
		if existing.Circle.DistanceTo(float64(x), float64(y)) < minSpacing {
			return false
		}
	}

	// The fountain's canvas-center spot is reserved even though the
	// fountain itself is placed after the parks.
	if cfg.FountainRadius > 0 {
		center := Circle{X: float64(g.width) / 2, Y: float64(g.height) / 2}
		minClear := float64(cfg.ParkRadius+cfg.FountainRadius) + parkFountainGap
		if center.DistanceTo(float64(x), float64(y)) < minClear {
			return false
		}
	}
	return true
}

// placeFountain places the fountain at the exact canvas center. No retry is
// needed: the spot is unconditionally reserved. A non-positive radius
// disables the fountain.
func (g *Generator) placeFountain(cfg Config) Fountain {
	if cfg.FountainRadius <= 0 {
		return Fountain{}
	}
	cx := g.width / 2
	cy := g.height / 2
	return Fountain{
		Points: MidpointCircle(cx, cy, cfg.FountainRadius),
		Circle: Circle{X: float64(cx), Y: float64(cy), R: float64(cfg.FountainRadius)},
	}
}
