package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoadPattern = RoadRandom
	cfg.NumBuildings = 25

	a := NewGenerator(testWidth, testHeight)
	b := NewGenerator(testWidth, testHeight)
	a.Generate(cfg, 12345)
	b.Generate(cfg, 12345)

	assert.Equal(t, a.Data(), b.Data())
}

func TestGenerateVariesAcrossSeeds(t *testing.T) {
	cfg := DefaultConfig()

	a := NewGenerator(testWidth, testHeight)
	b := NewGenerator(testWidth, testHeight)
	a.Generate(cfg, 1)
	b.Generate(cfg, 2)

	assert.NotEqual(t, a.Data().Buildings, b.Data().Buildings)
}

func TestGenerateRebuildsFromScratch(t *testing.T) {
	g := NewGenerator(testWidth, testHeight)

	cfg := DefaultConfig()
	g.Generate(cfg, 9)
	require.True(t, g.HasCity())
	firstBuildings := len(g.Data().Buildings)
	require.NotZero(t, firstBuildings)

	cfg.NumBuildings = 5
	g.Generate(cfg, 9)
	assert.True(t, g.HasCity())
	assert.LessOrEqual(t, len(g.Data().Buildings), 5)
}

func TestRoadsAvoidParksAndFountain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumParks = 5

	g := NewGenerator(testWidth, testHeight)
	g.Generate(cfg, 77)
	data := g.Data()
	require.NotEmpty(t, data.Roads)
	circles := data.ObstacleCircles()
	require.NotEmpty(t, circles)

	for _, road := range data.Roads {
		for _, pt := range road.Points {
			for _, c := range circles {
				assert.False(t, c.Contains(float64(pt.X), float64(pt.Y)),
					"road point (%d,%d) inside circle at (%.0f,%.0f)", pt.X, pt.Y, c.X, c.Y)
			}
		}
	}
}

func TestClearResetsState(t *testing.T) {
	g := NewGenerator(testWidth, testHeight)
	g.Generate(DefaultConfig(), 4)
	require.True(t, g.HasCity())

	g.Clear()
	assert.False(t, g.HasCity())
	assert.Empty(t, g.Data().Roads)
	assert.Empty(t, g.Data().Parks)
	assert.Empty(t, g.Data().Buildings)
	assert.False(t, g.Data().HasFountain())
}

func TestGenerationOrderParksBeforeRoadsBeforeBuildings(t *testing.T) {
	// The fountain disables itself at radius 0 and roads then keep their
	// center points, demonstrating the filter ran against the real obstacle
	// set rather than a stale one.
	cfg := DefaultConfig()
	cfg.NumParks = 0
	cfg.FountainRadius = 0
	cfg.RoadPattern = RoadRadial

	g := NewGenerator(testWidth, testHeight)
	g.Generate(cfg, 6)
	data := g.Data()

	center := Point{testWidth / 2, testHeight / 2}
	found := false
	for _, road := range data.Roads {
		for _, pt := range road.Points {
			if pt == center {
				found = true
			}
		}
	}
	assert.True(t, found, "with no obstacles the radial hub point must survive")
}
