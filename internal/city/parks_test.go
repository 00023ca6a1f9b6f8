package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParkSpacingInvariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumParks = 5
	cfg.ParkRadius = 30

	for seed := uint64(1); seed <= 10; seed++ {
		g := NewGenerator(testWidth, testHeight)
		rng := NewRand(seed)
		parks := g.placeParks(cfg, rng)

		minSpacing := float64(cfg.ParkRadius) * parkSpacingFactor
		for i := range parks {
			for j := i + 1; j < len(parks); j++ {
				d := parks[i].Circle.DistanceTo(parks[j].Circle.X, parks[j].Circle.Y)
				assert.GreaterOrEqual(t, d, minSpacing, "seed %d parks %d,%d", seed, i, j)
			}
		}
	}
}

func TestParkFountainClearance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumParks = 6
	cfg.ParkRadius = 25
	cfg.FountainRadius = 40

	g := NewGenerator(testWidth, testHeight)
	parks := g.placeParks(cfg, NewRand(7))

	minClear := float64(cfg.ParkRadius+cfg.FountainRadius) + parkFountainGap
	for _, p := range parks {
		d := p.Circle.DistanceTo(testWidth/2, testHeight/2)
		assert.GreaterOrEqual(t, d, minClear)
	}
}

func TestParkShortfallIsGraceful(t *testing.T) {
	// Radius 100 parks need 250 px spacing; ten can't fit on 800x600. The
	// shared attempt budget must terminate with a short result, no error.
	cfg := DefaultConfig()
	cfg.NumParks = 10
	cfg.ParkRadius = 100

	g := NewGenerator(testWidth, testHeight)
	parks := g.placeParks(cfg, NewRand(3))

	assert.Less(t, len(parks), 10)
	assert.NotEmpty(t, parks)
}

func TestParkBoundaryMatchesCircle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumParks = 2
	cfg.ParkRadius = 35

	g := NewGenerator(testWidth, testHeight)
	parks := g.placeParks(cfg, NewRand(11))
	require.NotEmpty(t, parks)

	for _, p := range parks {
		assert.Len(t, p.Points, len(MidpointCircle(0, 0, cfg.ParkRadius)))
		assert.Equal(t, float64(cfg.ParkRadius), p.Circle.R)
	}
}

func TestFountainPlacement(t *testing.T) {
	g := NewGenerator(testWidth, testHeight)

	cfg := DefaultConfig()
	cfg.FountainRadius = 25
	fountain := g.placeFountain(cfg)
	require.NotEmpty(t, fountain.Points)
	assert.Equal(t, Circle{X: testWidth / 2, Y: testHeight / 2, R: 25}, fountain.Circle)

	cfg.FountainRadius = 0
	assert.Empty(t, g.placeFountain(cfg).Points)
}

func TestNoParksRequested(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumParks = 0

	g := NewGenerator(testWidth, testHeight)
	assert.Empty(t, g.placeParks(cfg, NewRand(1)))
}
