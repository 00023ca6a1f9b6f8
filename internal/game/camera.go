package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	cameraSpeed       = 5.0
	cameraSprintBoost = 2.0
	mouseSensitivity  = 0.15
	pitchLimit        = 89.0
)

// Camera is a first-person fly camera for the 3D view.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32

	homePos   mgl32.Vec3
	homeYaw   float32
	homePitch float32
}

func NewCamera(pos mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:  pos,
		Up:        mgl32.Vec3{0, 1, 0},
		Yaw:       yaw,
		Pitch:     pitch,
		homePos:   pos,
		homeYaw:   yaw,
		homePitch: pitch,
	}
	c.updateFront()
	return c
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera with WASD, sprinting while shift is held.
func (c *Camera) ProcessKeyboard(window *glfw.Window, dt float32) {
	speed := cameraSpeed * dt
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		speed *= cameraSprintBoost
	}
	right := c.Front.Cross(c.Up).Normalize()

	if window.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(c.Front.Mul(speed))
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(c.Front.Mul(speed))
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(right.Mul(speed))
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(right.Mul(speed))
	}
}

// ProcessMouseMovement turns the camera by a mouse delta in screen pixels.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * mouseSensitivity
	c.Pitch -= dy * mouseSensitivity
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	c.updateFront()
}

// Reset returns the camera to its spawn pose. Used when re-entering 3D view.
func (c *Camera) Reset() {
	c.Position = c.homePos
	c.Yaw = c.homeYaw
	c.Pitch = c.homePitch
	c.updateFront()
}

func (c *Camera) updateFront() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}
