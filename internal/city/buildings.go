package city

import "fmt"

// Clearance buffers for building placement, in pixels.
const (
	buildingScreenMargin = 60.0 // padded box must stay this far from canvas edges
	buildingBuffer       = 25.0 // minimum gap between buildings
	buildingParkBuffer   = 35.0 // minimum gap to park/fountain circles
	buildingRoadBuffer   = 5.0  // gap to road points, on top of half the road width
	buildingPlaceMargin  = 80   // candidate centers are drawn inside this margin
)

// Sampled height ranges per building kind.
const (
	lowRiseMin  = 10.0
	lowRiseMax  = 30.0
	midRiseMin  = 40.0
	midRiseMax  = 100.0
	highRiseMin = 120.0
	highRiseMax = 250.0
)

// placeBuildings places up to cfg.NumBuildings non-overlapping footprints
// against the already-placed roads, parks, and fountain in g.data. The
// attempt budget is shared across all slots.
func (g *Generator) placeBuildings(cfg Config, rng *Rand) []Building {
	if cfg.NumBuildings == 0 {
		return nil
	}
	fmt.Printf("placing %d buildings\n", cfg.NumBuildings)

	buildings := make([]Building, 0, cfg.NumBuildings)
	maxAttempts := cfg.NumBuildings * 50

	for attempts := 0; len(buildings) < cfg.NumBuildings && attempts < maxAttempts; attempts++ {
		x := float64(rng.Range(buildingPlaceMargin, g.width-buildingPlaceMargin))
		y := float64(rng.Range(buildingPlaceMargin, g.height-buildingPlaceMargin))

		var width, depth float64
		if cfg.UseStandardSize {
			width = cfg.StandardWidth
			depth = cfg.StandardDepth
		} else {
			width = rng.RangeF(20, 60)
			depth = rng.RangeF(20, 60)
		}

		if !g.validBuildingPosition(buildings, x, y, width, depth) {
			continue
		}

		kind, height := sampleSkyline(cfg.Skyline, rng)
		buildings = append(buildings, Building{
			X: x, Y: y,
			Width: width, Depth: depth,
			Height: height,
			Kind:   kind,
		})
	}

	if len(buildings) < cfg.NumBuildings {
		fmt.Printf("  placed only %d of %d buildings (attempt budget exhausted)\n",
			len(buildings), cfg.NumBuildings)
	}
	return buildings
}

// sampleSkyline draws a building kind and height under the configured
// policy. The draw is independent per building; there is no city-wide
// ratio target.
func sampleSkyline(policy Skyline, rng *Rand) (BuildingKind, float64) {
	switch policy {
	case SkylineLowRise:
		return LowRise, rng.RangeF(lowRiseMin, lowRiseMax)
	case SkylineMidRise:
		return MidRise, rng.RangeF(midRiseMin, midRiseMax)
	case SkylineSkyscraper:
		// Skewed toward towers: 2 of 3 outcomes are high-rise, never low.
		if rng.Intn(3) <= 1 {
			return HighRise, rng.RangeF(highRiseMin, highRiseMax)
		}
		return MidRise, rng.RangeF(midRiseMin, midRiseMax)
	default: // SkylineMixed
		switch rng.Intn(3) {
		case 0:
			return LowRise, rng.RangeF(lowRiseMin, lowRiseMax)
		case 1:
			return MidRise, rng.RangeF(midRiseMin, midRiseMax)
		default:
			return HighRise, rng.RangeF(highRiseMin, highRiseMax)
		}
	}
}

// validBuildingPosition checks a candidate footprint against the canvas
// margin, existing buildings, parks, the fountain, and road points.
func (g *Generator) validBuildingPosition(placed []Building, x, y, width, depth float64) bool {
	left := x - width/2
	right := x + width/2
	top := y - depth/2
	bottom := y + depth/2

	if left < buildingScreenMargin || right > float64(g.width)-buildingScreenMargin ||
		top < buildingScreenMargin || bottom > float64(g.height)-buildingScreenMargin {
		return false
	}

	for _, b := range placed {
		bLeft := b.X - b.Width/2
		bRight := b.X + b.Width/2
		bTop := b.Y - b.Depth/2
		bBottom := b.Y + b.Depth/2
		if !(right+buildingBuffer < bLeft || left-buildingBuffer > bRight ||
			bottom+buildingBuffer < bTop || top-buildingBuffer > bBottom) {
			return false
		}
	}

	for _, park := range g.data.Parks {
		if !clearOfCircle(park, left, right, top, bottom) {
			return false
		}
	}
	if g.data.HasFountain() {
		if !clearOfCircle(g.data.Fountain, left, right, top, bottom) {
			return false
		}
	}

	for _, road := range g.data.Roads {
		halfRoad := float64(road.Width) / 2
		pad := buildingRoadBuffer + halfRoad
		for _, pt := range road.Points {
			px := float64(pt.X)
			py := float64(pt.Y)
			if px >= left-pad && px <= right+pad && py >= top-pad && py <= bottom+pad {
				return false
			}
		}
	}
	return true
}

// clearOfCircle runs the two-stage park/fountain test: the closest point on
// the padded box against the buffered radius, then a raw containment check
// over every boundary point. Both checks are required — the second is
// deliberately stricter than plain defense-in-depth and must be kept.
func clearOfCircle(p Park, left, right, top, bottom float64) bool {
	c := p.Circle

	closestX := maxF(left-buildingParkBuffer, minF(c.X, right+buildingParkBuffer))
	closestY := maxF(top-buildingParkBuffer, minF(c.Y, bottom+buildingParkBuffer))
	dx := closestX - c.X
	dy := closestY - c.Y
	buffered := c.R + buildingParkBuffer
	if dx*dx+dy*dy < buffered*buffered {
		return false
	}

	for _, pt := range p.Points {
		px := float64(pt.X)
		py := float64(pt.Y)
		if px >= left-buildingParkBuffer && px <= right+buildingParkBuffer &&
			py >= top-buildingParkBuffer && py <= bottom+buildingParkBuffer {
			return false
		}
	}
	return true
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
