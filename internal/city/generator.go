package city

import "fmt"

// Generator owns the live CityData and sequences one generation pass:
// parks and fountain first, then roads filtered against them, then
// buildings against everything. A pass runs to completion synchronously;
// no partial state is ever visible.
type Generator struct {
	width  int
	height int
	roads  *RoadGenerator
	data   CityData
}

// NewGenerator creates a generator for a fixed canvas size. Dimensions
// never change after construction.
func NewGenerator(width, height int) *Generator {
	return &Generator{
		width:  width,
		height: height,
		roads:  NewRoadGenerator(width, height),
	}
}

// Generate clears the previous city and rebuilds it from the given config
// snapshot. All randomness flows from one PRNG seeded here, so the same
// config and seed reproduce the same city.
func (g *Generator) Generate(cfg Config, seed uint64) {
	fmt.Println("generating city...")
	g.data.Clear()

	rng := NewRand(seed)
	g.data.Parks = g.placeParks(cfg, rng)
	g.data.Fountain = g.placeFountain(cfg)
	g.data.Roads = g.roads.GenerateAvoiding(cfg, g.data.Parks, g.data.Fountain, rng)
	g.data.Buildings = g.placeBuildings(cfg, rng)
	g.data.Generated = true

	fmt.Printf("city generation complete: %d roads, %d parks, %d buildings\n",
		len(g.data.Roads), len(g.data.Parks), len(g.data.Buildings))
}

// Clear discards the current city.
func (g *Generator) Clear() {
	g.data.Clear()
}

// Data returns the live city snapshot. The renderer reads it by reference;
// Generate must not run while a frame is being drawn from it (automatic in
// the single-threaded loop).
func (g *Generator) Data() *CityData {
	return &g.data
}

// HasCity reports whether a generated city is available.
func (g *Generator) HasCity() bool {
	return g.data.Generated
}
