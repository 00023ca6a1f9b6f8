package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citydesigner/internal/city"
)

func TestNDCMapping(t *testing.T) {
	assert.InDelta(t, -1.0, ndcX(0), 1e-6)
	assert.InDelta(t, 1.0, ndcX(WindowWidth), 1e-6)
	assert.InDelta(t, 0.0, ndcX(WindowWidth/2), 1e-6)

	// Pixel y grows downward, NDC y grows upward.
	assert.InDelta(t, 1.0, ndcY(0), 1e-6)
	assert.InDelta(t, -1.0, ndcY(WindowHeight), 1e-6)
}

func TestPointCloudClipsFarOffscreenPoints(t *testing.T) {
	points := []city.Point{
		{X: 100, Y: 100},
		{X: -40, Y: 100},            // inside the clip margin, kept
		{X: -200, Y: 100},           // far off the left edge, dropped
		{X: 100, Y: WindowHeight + 200}, // far below, dropped
	}
	verts := pointCloud(points, 0.005)
	assert.Len(t, verts, 2*floatsPerVertex)
}

func TestPointCloudVertexLayout(t *testing.T) {
	verts := pointCloud([]city.Point{{X: WindowWidth / 2, Y: WindowHeight / 2}}, 0.008)
	require.Len(t, verts, floatsPerVertex)
	assert.InDelta(t, 0.0, verts[0], 1e-6)
	assert.InDelta(t, 0.0, verts[1], 1e-6)
	assert.InDelta(t, 0.008, verts[2], 1e-6)
}

func TestQuadVertsUnrollsTwoTriangles(t *testing.T) {
	verts := quadVerts(
		[3]float32{0, 0, 0}, [3]float32{1, 0, 0},
		[3]float32{1, 1, 0}, [3]float32{0, 1, 0},
		4, 2,
	)
	require.Len(t, verts, 6*floatsPerVertex)
	// Corner c carries the full UV repeat.
	assert.Equal(t, float32(4), verts[floatsPerVertex*2+3])
	assert.Equal(t, float32(2), verts[floatsPerVertex*2+4])
	// Both triangles share corner a at UV origin.
	assert.Equal(t, verts[0:3], verts[floatsPerVertex*3:floatsPerVertex*3+3])
}

func TestBuildingBox2DIsSingleQuad(t *testing.T) {
	b := city.Building{X: 400, Y: 300, Width: 40, Depth: 40, Height: 80, Kind: city.MidRise}
	verts := buildingBox(b, false)
	assert.Len(t, verts, 6*floatsPerVertex)
}

func TestBuildingBox3DHasSixFaces(t *testing.T) {
	b := city.Building{X: 400, Y: 300, Width: 40, Depth: 40, Height: 80, Kind: city.MidRise}
	verts := buildingBox(b, true)
	require.Len(t, verts, 6*6*floatsPerVertex)

	// Extrusion along y: every vertex sits on the ground or at roof height.
	h := heightToWorld(80)
	for i := 0; i < len(verts); i += floatsPerVertex {
		y := verts[i+1]
		assert.True(t, y == 0 || y == h, "vertex y %f not on ground or roof", y)
	}
}

func TestBuildingBoxIsCenteredOnFootprint(t *testing.T) {
	b := city.Building{X: WindowWidth / 2, Y: WindowHeight / 2, Width: 100, Depth: 100}
	verts := buildingBox(b, false)
	var sumX, sumY float32
	// Corner a appears twice in the unrolled quad; the symmetric corner c
	// does too, so the mean still lands on the center.
	for i := 0; i < len(verts); i += floatsPerVertex {
		sumX += verts[i]
		sumY += verts[i+1]
	}
	n := float32(len(verts) / floatsPerVertex)
	assert.InDelta(t, 0.0, sumX/n, 1e-5)
	assert.InDelta(t, 0.0, sumY/n, 1e-5)
}

func TestRoadQuadsDegenerate(t *testing.T) {
	assert.Nil(t, roadQuads(city.Road{Width: 10}))
	assert.Nil(t, roadQuads(city.Road{Points: []city.Point{{X: 1, Y: 1}}, Width: 10}))
}

func TestRoadQuadsLieOnGround(t *testing.T) {
	road := city.Road{
		Points: city.BresenhamLine(100, 300, 700, 300),
		Width:  14,
	}
	verts := roadQuads(road)
	require.Len(t, verts, 6*floatsPerVertex)
	for i := 0; i < len(verts); i += floatsPerVertex {
		assert.InDelta(t, 0.005, verts[i+1], 1e-6)
	}
}

func TestRoadQuadsKeepFilteredGapsOpen(t *testing.T) {
	// Filter a straight road through a central circle: the two surviving
	// runs must become two separate quads, not one bridging the obstacle.
	roads := []city.Road{{Points: city.BresenhamLine(100, 300, 700, 300), Width: 14}}
	obstacle := city.Circle{X: 400, Y: 300, R: 50}
	filtered := city.FilterRoads(roads, []city.Circle{obstacle})
	require.Len(t, filtered, 1)

	verts := roadQuads(filtered[0])
	require.Len(t, verts, 2*6*floatsPerVertex)

	// No vertex may land over the removed span (pixels 350..450, which is
	// |x| < ndcX(451) in NDC).
	limit := ndcX(451)
	for i := 0; i < len(verts); i += floatsPerVertex {
		x := verts[i]
		assert.GreaterOrEqual(t, float64(math32.Abs(x)), float64(limit)-1e-5,
			"vertex x=%f bridges the filtered gap", x)
	}
}

func TestDiscTrianglesSegmentCount(t *testing.T) {
	c := city.Circle{X: 400, Y: 300, R: 40}
	assert.Len(t, discTriangles(c, 0.006, false), discSegments*3*floatsPerVertex)
	assert.Len(t, discTriangles(c, 0.006, true), discSegments*3*floatsPerVertex)
}

func TestDiscTrianglesRadius(t *testing.T) {
	c := city.Circle{X: WindowWidth / 2, Y: WindowHeight / 2, R: 60}
	verts := discTriangles(c, 0.0, false)
	want := float32(60) * 2 / WindowHeight
	// Rim vertex of the first triangle sits one radius from the center.
	x, y := verts[floatsPerVertex], verts[floatsPerVertex+1]
	assert.InDelta(t, float64(want), float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)
}
