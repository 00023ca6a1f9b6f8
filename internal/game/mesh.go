package game

import (
	"github.com/chewxy/math32"

	"citydesigner/internal/city"
)

// Vertex layout is vec3 position + vec2 UV, 5 floats per vertex.
const floatsPerVertex = 5

const discSegments = 32

// Points further than this outside the canvas are dropped from meshes.
const clipMargin = 50

// ndcX/ndcY map canvas pixels to normalized device coordinates. The same
// mapping seeds the 3D ground plane: x stays, the pixel y axis becomes -z so
// "up" on the 2D map is away from the default camera.
func ndcX(px float32) float32 { return px/(WindowWidth/2) - 1 }
func ndcY(py float32) float32 { return 1 - py/(WindowHeight/2) }

func clipped(x, y float32) bool {
	return x < -clipMargin || x > WindowWidth+clipMargin ||
		y < -clipMargin || y > WindowHeight+clipMargin
}

// heightToWorld converts a pixel height to 3D world units on the same scale
// as the ground plane.
func heightToWorld(h float32) float32 { return h * 2 / WindowHeight }

// pointCloud flattens rasterized points into point-sprite vertices at a fixed
// depth. Used by the 2D view for roads and park boundaries.
func pointCloud(points []city.Point, z float32) []float32 {
	verts := make([]float32, 0, len(points)*floatsPerVertex)
	for _, p := range points {
		px, py := float32(p.X), float32(p.Y)
		if clipped(px, py) {
			continue
		}
		verts = append(verts, ndcX(px), ndcY(py), z, 0, 0)
	}
	return verts
}

// roadQuads builds textured strips along a road for the 3D view. Obstacle
// filtering can cut a road into disjoint runs of points; each contiguous run
// becomes its own quad so the gap over a park or fountain stays open.
func roadQuads(road city.Road) []float32 {
	pts := road.Points
	var verts []float32
	start := 0
	for i := 1; i <= len(pts); i++ {
		if i < len(pts) && adjacentPoints(pts[i-1], pts[i]) {
			continue
		}
		verts = append(verts, roadRunQuad(pts[start:i], road.Width)...)
		start = i
	}
	return verts
}

func adjacentPoints(a, b city.Point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// roadRunQuad emits one quad for a contiguous run of rasterized points. Runs
// are substrings of a straight Bresenham line, so the two endpoints define
// the whole strip.
func roadRunQuad(run []city.Point, width int) []float32 {
	if len(run) < 2 {
		return nil
	}
	a := run[0]
	b := run[len(run)-1]

	ax, az := ndcX(float32(a.X)), -ndcY(float32(a.Y))
	bx, bz := ndcX(float32(b.X)), -ndcY(float32(b.Y))

	dx, dz := bx-ax, bz-az
	length := math32.Hypot(dx, dz)
	if length == 0 {
		return nil
	}
	// Perpendicular offset of half the road width, in world units.
	half := heightToWorld(float32(width)) / 2
	ox := -dz / length * half
	oz := dx / length * half

	const y = 0.005
	texRepeat := length * 5

	return quadVerts(
		[3]float32{ax - ox, y, az - oz},
		[3]float32{ax + ox, y, az + oz},
		[3]float32{bx + ox, y, bz + oz},
		[3]float32{bx - ox, y, bz - oz},
		texRepeat, 1,
	)
}

// discTriangles builds a filled disc as a triangle fan unrolled into
// triangles. In 2D the disc lives in NDC; in 3D it lies flat on the ground.
func discTriangles(c city.Circle, height float32, mode3D bool) []float32 {
	cx := ndcX(float32(c.X))
	cy := ndcY(float32(c.Y))
	// Radius on the height axis; the slight horizontal stretch from the
	// aspect ratio is accepted.
	r := float32(c.R) * 2 / WindowHeight

	verts := make([]float32, 0, discSegments*3*floatsPerVertex)
	for i := 0; i < discSegments; i++ {
		a0 := float32(i) / discSegments * 2 * math32.Pi
		a1 := float32(i+1) / discSegments * 2 * math32.Pi
		x0, y0 := cx+r*math32.Cos(a0), cy+r*math32.Sin(a0)
		x1, y1 := cx+r*math32.Cos(a1), cy+r*math32.Sin(a1)

		if mode3D {
			verts = append(verts,
				cx, height, -cy, 0.5, 0.5,
				x0, height, -y0, 0.5+0.5*math32.Cos(a0), 0.5+0.5*math32.Sin(a0),
				x1, height, -y1, 0.5+0.5*math32.Cos(a1), 0.5+0.5*math32.Sin(a1),
			)
		} else {
			verts = append(verts,
				cx, cy, height, 0.5, 0.5,
				x0, y0, height, 0.5+0.5*math32.Cos(a0), 0.5+0.5*math32.Sin(a0),
				x1, y1, height, 0.5+0.5*math32.Cos(a1), 0.5+0.5*math32.Sin(a1),
			)
		}
	}
	return verts
}

// buildingBox extrudes a building footprint into a six-face box. The 2D view
// keeps the screen axes and pushes height along z (which the flat projection
// ignores, leaving the roof quad); the 3D view lays the footprint on the
// ground plane and extrudes along y.
func buildingBox(b city.Building, mode3D bool) []float32 {
	x0 := ndcX(float32(b.X - b.Width/2))
	x1 := ndcX(float32(b.X + b.Width/2))
	y0 := ndcY(float32(b.Y - b.Depth/2))
	y1 := ndcY(float32(b.Y + b.Depth/2))
	h := heightToWorld(float32(b.Height))

	if !mode3D {
		return quadVerts(
			[3]float32{x0, y0, h},
			[3]float32{x1, y0, h},
			[3]float32{x1, y1, h},
			[3]float32{x0, y1, h},
			1, 1,
		)
	}

	z0, z1 := -y0, -y1
	verts := make([]float32, 0, 6*6*floatsPerVertex)
	// Roof.
	verts = append(verts, quadVerts(
		[3]float32{x0, h, z0}, [3]float32{x1, h, z0},
		[3]float32{x1, h, z1}, [3]float32{x0, h, z1}, 1, 1)...)
	// Floor.
	verts = append(verts, quadVerts(
		[3]float32{x0, 0, z0}, [3]float32{x0, 0, z1},
		[3]float32{x1, 0, z1}, [3]float32{x1, 0, z0}, 1, 1)...)
	// Walls, UV v spans the full height so the texture stretches with it.
	verts = append(verts, quadVerts(
		[3]float32{x0, 0, z0}, [3]float32{x1, 0, z0},
		[3]float32{x1, h, z0}, [3]float32{x0, h, z0}, 1, 1)...)
	verts = append(verts, quadVerts(
		[3]float32{x1, 0, z1}, [3]float32{x0, 0, z1},
		[3]float32{x0, h, z1}, [3]float32{x1, h, z1}, 1, 1)...)
	verts = append(verts, quadVerts(
		[3]float32{x0, 0, z1}, [3]float32{x0, 0, z0},
		[3]float32{x0, h, z0}, [3]float32{x0, h, z1}, 1, 1)...)
	verts = append(verts, quadVerts(
		[3]float32{x1, 0, z0}, [3]float32{x1, 0, z1},
		[3]float32{x1, h, z1}, [3]float32{x1, h, z0}, 1, 1)...)
	return verts
}

// groundPlane covers the whole generation canvas in the 3D view.
func groundPlane() []float32 {
	const y = 0
	return quadVerts(
		[3]float32{-1, y, 1},
		[3]float32{1, y, 1},
		[3]float32{1, y, -1},
		[3]float32{-1, y, -1},
		8, 8,
	)
}

// quadVerts unrolls a quad into two triangles with UVs scaled by the repeat
// factors. Corners are given counter-clockwise.
func quadVerts(a, b, c, d [3]float32, uRepeat, vRepeat float32) []float32 {
	return []float32{
		a[0], a[1], a[2], 0, 0,
		b[0], b[1], b[2], uRepeat, 0,
		c[0], c[1], c[2], uRepeat, vRepeat,

		a[0], a[1], a[2], 0, 0,
		c[0], c[1], c[2], uRepeat, vRepeat,
		d[0], d[1], d[2], 0, vRepeat,
	}
}
