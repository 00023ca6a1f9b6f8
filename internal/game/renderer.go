package game

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"citydesigner/internal/city"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// 2D map colors.
var (
	colorRoad     = mgl32.Vec3{1.0, 0.8, 0.2}
	colorPark     = mgl32.Vec3{0.2, 0.8, 0.3}
	colorFountain = mgl32.Vec3{0.3, 0.7, 1.0}

	buildingColors = map[city.BuildingKind]mgl32.Vec3{
		city.LowRise:  {0.7, 0.4, 0.3},
		city.MidRise:  {0.5, 0.5, 0.5},
		city.HighRise: {0.6, 0.7, 0.8},
	}
)

// drawBatch is one VAO worth of geometry sharing a material.
type drawBatch struct {
	vao       uint32
	vbo       uint32
	count     int32
	mode      uint32
	texture   uint32 // 0 draws with the flat color instead
	color     mgl32.Vec3
	pointSize float32
}

// Renderer owns the city shader and the per-material geometry batches. The
// batches are rebuilt whenever the city or the view mode changes.
type Renderer struct {
	program uint32

	uView       int32
	uProjection int32
	uIs2D       int32
	uUseTexture int32
	uColor      int32
	uTex        int32

	textures *TextureManager
	batches  []drawBatch
}

func NewRenderer(textures *TextureManager) (*Renderer, error) {
	program, err := linkProgram(cityVertSrc, cityFragSrc)
	if err != nil {
		return nil, err
	}

	r := &Renderer{program: program, textures: textures}
	r.uView = gl.GetUniformLocation(program, gl.Str("view\x00"))
	r.uProjection = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	r.uIs2D = gl.GetUniformLocation(program, gl.Str("is2D\x00"))
	r.uUseTexture = gl.GetUniformLocation(program, gl.Str("useTexture\x00"))
	r.uColor = gl.GetUniformLocation(program, gl.Str("color\x00"))
	r.uTex = gl.GetUniformLocation(program, gl.Str("cityTex\x00"))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.1, 0.15, 0.2, 1.0)
	return r, nil
}

// UpdateCity rebuilds the geometry batches from the generated city. The 2D
// view draws rasterized points and flat roof quads; the 3D view draws
// textured ground geometry and extruded buildings.
func (r *Renderer) UpdateCity(data *city.CityData, cfg city.Config, view3D bool) {
	r.clearBatches()
	if !data.Generated {
		return
	}
	if view3D {
		r.build3DBatches(data, cfg)
	} else {
		r.build2DBatches(data)
	}
}

func (r *Renderer) build2DBatches(data *city.CityData) {
	var roadPts []float32
	for _, road := range data.Roads {
		roadPts = append(roadPts, pointCloud(road.Points, 0.005)...)
	}
	r.addBatch(roadPts, gl.POINTS, 0, colorRoad, 3)

	var parkFill, parkEdge []float32
	for _, park := range data.Parks {
		parkFill = append(parkFill, discTriangles(park.Circle, 0.006, false)...)
		parkEdge = append(parkEdge, pointCloud(park.Points, 0.006)...)
	}
	r.addBatch(parkFill, gl.TRIANGLES, 0, colorPark, 1)
	r.addBatch(parkEdge, gl.POINTS, 0, colorPark, 2)

	if data.HasFountain() {
		r.addBatch(discTriangles(data.Fountain.Circle, 0.008, false),
			gl.TRIANGLES, 0, colorFountain, 2)
	}

	for _, b := range data.Buildings {
		r.addBatch(buildingBox(b, false), gl.TRIANGLES, 0, buildingColors[b.Kind], 1)
	}
}

func (r *Renderer) build3DBatches(data *city.CityData, cfg city.Config) {
	r.addBatch(groundPlane(), gl.TRIANGLES, r.textures.Texture(TexConcrete), mgl32.Vec3{}, 1)

	var roadVerts []float32
	for _, road := range data.Roads {
		roadVerts = append(roadVerts, roadQuads(road)...)
	}
	r.addBatch(roadVerts, gl.TRIANGLES, r.textures.Texture(TexAsphalt), mgl32.Vec3{}, 1)

	var parkVerts []float32
	for _, park := range data.Parks {
		parkVerts = append(parkVerts, discTriangles(park.Circle, 0.006, true)...)
	}
	r.addBatch(parkVerts, gl.TRIANGLES, r.textures.Texture(TexGrass), mgl32.Vec3{}, 1)

	if data.HasFountain() {
		r.addBatch(discTriangles(data.Fountain.Circle, 0.008, true),
			gl.TRIANGLES, r.textures.Texture(TexWater), mgl32.Vec3{}, 1)
	}

	for _, b := range data.Buildings {
		tex := r.textures.BuildingTexture(cfg.TextureTheme, b.Kind)
		r.addBatch(buildingBox(b, true), gl.TRIANGLES, tex, mgl32.Vec3{}, 1)
	}
}

func (r *Renderer) addBatch(verts []float32, mode, texture uint32, color mgl32.Vec3, pointSize float32) {
	if len(verts) == 0 {
		return
	}
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, uintptr(3*4))
	gl.BindVertexArray(0)

	r.batches = append(r.batches, drawBatch{
		vao:       vao,
		vbo:       vbo,
		count:     int32(len(verts) / floatsPerVertex),
		mode:      mode,
		texture:   texture,
		color:     color,
		pointSize: pointSize,
	})
}

// Render draws the current batches with the given matrices.
func (r *Renderer) Render(view, projection mgl32.Mat4, view3D bool) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProjection, 1, false, &projection[0])
	if view3D {
		gl.Uniform1i(r.uIs2D, 0)
	} else {
		gl.Uniform1i(r.uIs2D, 1)
	}

	for _, b := range r.batches {
		if b.texture != 0 {
			gl.Uniform1i(r.uUseTexture, 1)
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, b.texture)
			gl.Uniform1i(r.uTex, 0)
		} else {
			gl.Uniform1i(r.uUseTexture, 0)
			gl.Uniform3f(r.uColor, b.color[0], b.color[1], b.color[2])
		}
		if b.mode == gl.POINTS {
			gl.PointSize(b.pointSize)
		}
		gl.BindVertexArray(b.vao)
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) clearBatches() {
	for _, b := range r.batches {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
	}
	r.batches = r.batches[:0]
}

func (r *Renderer) Destroy() {
	r.clearBatches()
	gl.DeleteProgram(r.program)
}
