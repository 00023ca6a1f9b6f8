package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"citydesigner/internal/city"
)

// Input maps keyboard edges onto config changes. Every parameter key clamps
// to its documented range and announces the new value on stdout.
type Input struct {
	cfg  *city.Config
	prev map[glfw.Key]bool

	generate   bool
	viewToggle bool
}

func NewInput(cfg *city.Config) *Input {
	return &Input{cfg: cfg, prev: make(map[glfw.Key]bool)}
}

// JustPressed reports a key transition from released to pressed this frame.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	was := in.prev[key]
	in.prev[key] = down
	return down && !was
}

// Process handles one frame of key edges.
func (in *Input) Process(window *glfw.Window) {
	cfg := in.cfg

	if in.JustPressed(window, glfw.KeyEscape) {
		window.SetShouldClose(true)
	}

	if in.JustPressed(window, glfw.Key1) {
		cfg.NumBuildings = clampInt(cfg.NumBuildings-5, 1, 100)
		fmt.Printf("Buildings: %d\n", cfg.NumBuildings)
		PlaySound(SoundTick)
	}
	if in.JustPressed(window, glfw.Key2) {
		cfg.NumBuildings = clampInt(cfg.NumBuildings+5, 1, 100)
		fmt.Printf("Buildings: %d\n", cfg.NumBuildings)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.Key3) {
		cfg.LayoutSize = clampInt(cfg.LayoutSize-1, 5, 20)
		cfg.UpdateStandardBuildingSize(WindowWidth, 50)
		fmt.Printf("Layout size: %d\n", cfg.LayoutSize)
		PlaySound(SoundTick)
	}
	if in.JustPressed(window, glfw.Key4) {
		cfg.LayoutSize = clampInt(cfg.LayoutSize+1, 5, 20)
		cfg.UpdateStandardBuildingSize(WindowWidth, 50)
		fmt.Printf("Layout size: %d\n", cfg.LayoutSize)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.Key5) {
		cfg.RoadWidth = clampInt(cfg.RoadWidth-2, 2, 20)
		fmt.Printf("Road width: %d\n", cfg.RoadWidth)
		PlaySound(SoundTick)
	}
	if in.JustPressed(window, glfw.Key6) {
		cfg.RoadWidth = clampInt(cfg.RoadWidth+2, 2, 20)
		fmt.Printf("Road width: %d\n", cfg.RoadWidth)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.Key7) {
		cfg.ParkRadius = clampInt(cfg.ParkRadius-5, 10, 100)
		fmt.Printf("Park radius: %d\n", cfg.ParkRadius)
		PlaySound(SoundTick)
	}
	if in.JustPressed(window, glfw.Key8) {
		cfg.ParkRadius = clampInt(cfg.ParkRadius+5, 10, 100)
		fmt.Printf("Park radius: %d\n", cfg.ParkRadius)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.Key9) {
		cfg.NumParks = clampInt(cfg.NumParks-1, 0, 10)
		fmt.Printf("Parks: %d\n", cfg.NumParks)
		PlaySound(SoundTick)
	}
	if in.JustPressed(window, glfw.Key0) {
		cfg.NumParks = clampInt(cfg.NumParks+1, 0, 10)
		fmt.Printf("Parks: %d\n", cfg.NumParks)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.KeyB) {
		cfg.UseStandardSize = !cfg.UseStandardSize
		if cfg.UseStandardSize {
			fmt.Println("Building size: standard")
		} else {
			fmt.Println("Building size: random")
		}
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.KeyR) {
		cfg.RoadPattern = (cfg.RoadPattern + 1) % 3
		fmt.Printf("Road pattern: %s\n", cfg.RoadPattern)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.KeyL) {
		cfg.Skyline = (cfg.Skyline + 1) % 4
		fmt.Printf("Skyline: %s\n", cfg.Skyline)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.KeyT) {
		cfg.TextureTheme = (cfg.TextureTheme + 1) % 4
		fmt.Printf("Texture theme: %s\n", cfg.TextureTheme)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.KeyF) {
		if cfg.FountainRadius == 25 {
			cfg.FountainRadius = 40
		} else {
			cfg.FountainRadius = 25
		}
		fmt.Printf("Fountain radius: %d\n", cfg.FountainRadius)
		PlaySound(SoundTick)
	}

	if in.JustPressed(window, glfw.KeyV) {
		cfg.View3D = !cfg.View3D
		if cfg.View3D {
			fmt.Println("View: 3D")
		} else {
			fmt.Println("View: 2D")
		}
		in.viewToggle = true
		PlaySound(SoundToggle)
	}

	if in.JustPressed(window, glfw.KeyG) {
		in.generate = true
	}

	if in.JustPressed(window, glfw.KeyP) {
		cfg.Print()
	}

	if in.JustPressed(window, glfw.KeyH) {
		DisplayControls()
	}
}

// GenerationRequested reports and clears the pending generate request.
func (in *Input) GenerationRequested() bool {
	req := in.generate
	in.generate = false
	return req
}

// ViewToggled reports and clears a 2D/3D switch this frame.
func (in *Input) ViewToggled() bool {
	t := in.viewToggle
	in.viewToggle = false
	return t
}

func DisplayControls() {
	fmt.Println("Controls:")
	fmt.Println("  G      generate city")
	fmt.Println("  V      toggle 2D/3D view")
	fmt.Println("  1/2    buildings -5/+5")
	fmt.Println("  3/4    layout size -1/+1")
	fmt.Println("  5/6    road width -2/+2")
	fmt.Println("  7/8    park radius -5/+5")
	fmt.Println("  9/0    parks -1/+1")
	fmt.Println("  B      standard/random building size")
	fmt.Println("  R      cycle road pattern")
	fmt.Println("  L      cycle skyline")
	fmt.Println("  T      cycle texture theme")
	fmt.Println("  F      fountain radius 25/40")
	fmt.Println("  P      print configuration")
	fmt.Println("  H      this help")
	fmt.Println("  WASD   move camera (3D), shift to sprint")
	fmt.Println("  ESC    quit")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
