package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"citydesigner/internal/city"
)

const configFile = "citydesigner.toml"

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Run starts the city designer and blocks until the window closes.
func Run() error {
	cfg := loadConfig()
	seed, seeded := seedFromEnv()
	if !seeded {
		seed = uint64(time.Now().UnixNano())
	}

	fmt.Println("City Designer")
	fmt.Println("=============")
	DisplayControls()
	cfg.Print()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl init: %w", err)
	}
	fmt.Println("OpenGL", gl.GoStr(gl.GetString(gl.VERSION)))

	if err := InitAudio(); err != nil {
		fmt.Println("Audio disabled:", err)
	}

	textures := NewTextureManager("assets")
	defer textures.Cleanup()

	renderer, err := NewRenderer(textures)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	generator := city.NewGenerator(WindowWidth, WindowHeight)
	camera := NewCamera(mgl32.Vec3{0, 2, 6}, -90, 0)
	input := NewInput(&cfg)

	generator.Generate(cfg, seed)
	renderer.UpdateCity(generator.Data(), cfg, cfg.View3D)

	// Mouse look state for the 3D view.
	var lastX, lastY float32
	firstMouse := true
	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if !cfg.View3D {
			return
		}
		x, y := float32(xpos), float32(ypos)
		if firstMouse {
			lastX, lastY = x, y
			firstMouse = false
		}
		camera.ProcessMouseMovement(x-lastX, y-lastY)
		lastX, lastY = x, y
	})
	applyCursorMode(window, cfg.View3D)

	projection3D := mgl32.Perspective(mgl32.DegToRad(FieldOfView),
		float32(WindowWidth)/float32(WindowHeight), NearPlane, FarPlane)
	projection2D := mgl32.Ortho(-1, 1, -1, 1, -1, 10)
	identity := mgl32.Ident4()

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		input.Process(window)

		if input.GenerationRequested() {
			if seeded {
				seed++
			} else {
				seed = uint64(time.Now().UnixNano())
			}
			generator.Generate(cfg, seed)
			renderer.UpdateCity(generator.Data(), cfg, cfg.View3D)
			PlaySound(SoundGenerate)
		}

		if input.ViewToggled() {
			applyCursorMode(window, cfg.View3D)
			firstMouse = true
			camera.Reset()
			renderer.UpdateCity(generator.Data(), cfg, cfg.View3D)
		}

		if cfg.View3D {
			camera.ProcessKeyboard(window, dt)
			renderer.Render(camera.ViewMatrix(), projection3D, true)
		} else {
			renderer.Render(identity, projection2D, false)
		}

		window.SwapBuffers()
	}

	return nil
}

func loadConfig() city.Config {
	if _, err := os.Stat(configFile); err != nil {
		return city.DefaultConfig()
	}
	cfg, err := city.LoadConfigFile(configFile)
	if err != nil {
		fmt.Println("Config ignored:", err)
		return city.DefaultConfig()
	}
	fmt.Println("Loaded", configFile)
	return cfg
}

// seedFromEnv reads CITY_SEED for reproducible generation runs.
func seedFromEnv() (uint64, bool) {
	v := os.Getenv("CITY_SEED")
	if v == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		fmt.Println("Bad CITY_SEED:", err)
		return 0, false
	}
	fmt.Println("Using seed", seed)
	return seed, true
}

func applyCursorMode(window *glfw.Window, view3D bool) {
	if view3D {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
