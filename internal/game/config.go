package game

// Window and canvas dimensions (pixels). The canvas matches the window and
// is injected into every generator component at construction; it never
// changes afterward.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "City Designer"
)

// 3D projection parameters.
const (
	FieldOfView = 45.0
	NearPlane   = 0.1
	FarPlane    = 100.0
)
