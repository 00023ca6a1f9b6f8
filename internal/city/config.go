package city

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RoadPattern selects the road network layout strategy.
type RoadPattern int

const (
	RoadGrid RoadPattern = iota
	RoadRadial
	RoadRandom
)

func (p RoadPattern) String() string {
	switch p {
	case RoadGrid:
		return "Grid"
	case RoadRadial:
		return "Radial"
	case RoadRandom:
		return "Random"
	}
	return "Unknown"
}

// Skyline selects the building height distribution policy.
type Skyline int

const (
	SkylineLowRise Skyline = iota
	SkylineMidRise
	SkylineSkyscraper
	SkylineMixed
)

func (s Skyline) String() string {
	switch s {
	case SkylineLowRise:
		return "Low-Rise"
	case SkylineMidRise:
		return "Mid-Rise"
	case SkylineSkyscraper:
		return "Skyscraper"
	case SkylineMixed:
		return "Mixed"
	}
	return "Unknown"
}

// TextureTheme selects the building facade style used in 3D view.
type TextureTheme int

const (
	ThemeModern TextureTheme = iota
	ThemeClassic
	ThemeIndustrial
	ThemeFuturistic
)

func (t TextureTheme) String() string {
	switch t {
	case ThemeModern:
		return "Modern"
	case ThemeClassic:
		return "Classic"
	case ThemeIndustrial:
		return "Industrial"
	case ThemeFuturistic:
		return "Futuristic"
	}
	return "Unknown"
}

// Config is the parameter vector controlling one generation pass. The input
// layer mutates it between generations; the generator only reads a snapshot
// at the start of a pass.
type Config struct {
	NumBuildings int `toml:"num_buildings"` // 1-100
	LayoutSize   int `toml:"layout_size"`   // grid granularity, 5-20

	RoadPattern RoadPattern `toml:"road_pattern"`
	RoadWidth   int         `toml:"road_width"` // pixels, 2-20

	Skyline Skyline `toml:"skyline"`

	TextureTheme TextureTheme `toml:"texture_theme"`

	ParkRadius     int `toml:"park_radius"` // pixels, 10-100
	NumParks       int `toml:"num_parks"`   // 0-10
	FountainRadius int `toml:"fountain_radius"` // 0 disables, else 25 or 40

	UseStandardSize bool    `toml:"use_standard_size"`
	StandardWidth   float64 `toml:"standard_width"`
	StandardDepth   float64 `toml:"standard_depth"`

	View3D bool `toml:"view_3d"`
}

// DefaultConfig returns a medium-sized city: 20 buildings on a 10x10 grid,
// grid roads, mixed skyline, 3 parks plus a fountain, 2D view.
func DefaultConfig() Config {
	cfg := Config{
		NumBuildings:    20,
		LayoutSize:      10,
		RoadPattern:     RoadGrid,
		RoadWidth:       14,
		Skyline:         SkylineMixed,
		TextureTheme:    ThemeModern,
		ParkRadius:      40,
		NumParks:        3,
		FountainRadius:  25,
		UseStandardSize: true,
	}
	cfg.UpdateStandardBuildingSize(800, 50)
	return cfg
}

// UpdateStandardBuildingSize derives the standard footprint from the layout
// grid: ~40% of one grid cell, leaving room for roads and spacing.
func (c *Config) UpdateStandardBuildingSize(screenWidth, margin int) {
	cell := float64(screenWidth-2*margin) / float64(c.LayoutSize)
	c.StandardWidth = cell * 0.40
	c.StandardDepth = cell * 0.40
}

// LoadConfigFile reads a TOML config, applying file values over defaults.
// Loaded values are forced into the same ranges the input layer enforces,
// so a hand-edited file can never feed the generator degenerate parameters.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.clampRanges()
	return cfg, nil
}

func (c *Config) clampRanges() {
	c.NumBuildings = clamp(c.NumBuildings, 1, 100)
	c.LayoutSize = clamp(c.LayoutSize, 5, 20)
	c.RoadWidth = clamp(c.RoadWidth, 2, 20)
	c.ParkRadius = clamp(c.ParkRadius, 10, 100)
	c.NumParks = clamp(c.NumParks, 0, 10)
	if c.FountainRadius < 0 {
		c.FountainRadius = 0
	}
	if c.RoadPattern < RoadGrid || c.RoadPattern > RoadRandom {
		c.RoadPattern = RoadGrid
	}
	if c.Skyline < SkylineLowRise || c.Skyline > SkylineMixed {
		c.Skyline = SkylineMixed
	}
	if c.TextureTheme < ThemeModern || c.TextureTheme > ThemeFuturistic {
		c.TextureTheme = ThemeModern
	}
	if c.StandardWidth <= 0 || c.StandardDepth <= 0 {
		c.UpdateStandardBuildingSize(800, 50)
	}
}

// Print dumps the current configuration to stdout.
func (c Config) Print() {
	fmt.Println("---- city configuration ----")
	fmt.Printf("  buildings:      %d\n", c.NumBuildings)
	fmt.Printf("  layout size:    %dx%d\n", c.LayoutSize, c.LayoutSize)
	fmt.Printf("  road pattern:   %s\n", c.RoadPattern)
	fmt.Printf("  road width:     %d px\n", c.RoadWidth)
	fmt.Printf("  skyline:        %s\n", c.Skyline)
	fmt.Printf("  texture theme:  %s\n", c.TextureTheme)
	fmt.Printf("  parks:          %d (radius %d)\n", c.NumParks, c.ParkRadius)
	fmt.Printf("  fountain:       radius %d\n", c.FountainRadius)
	if c.UseStandardSize {
		fmt.Printf("  building size:  standard (%dx%d px)\n", int(c.StandardWidth), int(c.StandardDepth))
	} else {
		fmt.Println("  building size:  random")
	}
	if c.View3D {
		fmt.Println("  view mode:      3D")
	} else {
		fmt.Println("  view mode:      2D")
	}
	fmt.Println("----------------------------")
}
