package game

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"

	"citydesigner/internal/city"
)

const texSize = 256

// TextureKind names the surface materials the renderer draws with.
type TextureKind int

const (
	TexBrick TextureKind = iota
	TexConcrete
	TexGlass
	TexAsphalt
	TexGrass
	TexWater
	texKindCount
)

var texFileNames = map[TextureKind]string{
	TexBrick:    "brick.jpg",
	TexConcrete: "concrete.jpg",
	TexGlass:    "glass.jpg",
	TexAsphalt:  "road.jpg",
	TexGrass:    "grass.jpg",
	TexWater:    "fountains.jpg",
}

// TextureManager owns one GL texture per material. Textures load from the
// assets directory when present; otherwise a procedural fallback is
// synthesized so the app never depends on files being shipped.
type TextureManager struct {
	ids [texKindCount]uint32
}

func NewTextureManager(assetDir string) *TextureManager {
	tm := &TextureManager{}
	for kind, name := range texFileNames {
		img, err := loadImageFile(filepath.Join(assetDir, name))
		if err != nil {
			fmt.Printf("texture %s unavailable, using procedural fallback\n", name)
			img = proceduralTexture(kind)
		}
		tm.ids[kind] = uploadTexture(img)
	}
	return tm
}

// Texture returns the GL texture id for a material.
func (tm *TextureManager) Texture(kind TextureKind) uint32 { return tm.ids[kind] }

// BuildingTexture picks the wall texture for a building under the active
// texture theme.
func (tm *TextureManager) BuildingTexture(theme city.TextureTheme, kind city.BuildingKind) uint32 {
	return tm.ids[buildingMaterial(theme, kind)]
}

func buildingMaterial(theme city.TextureTheme, kind city.BuildingKind) TextureKind {
	switch theme {
	case city.ThemeClassic:
		if kind == city.HighRise {
			return TexConcrete
		}
		return TexBrick
	case city.ThemeIndustrial:
		return TexConcrete
	case city.ThemeFuturistic:
		return TexGlass
	default: // Modern
		switch kind {
		case city.LowRise:
			return TexBrick
		case city.MidRise:
			return TexConcrete
		default:
			return TexGlass
		}
	}
}

func (tm *TextureManager) Cleanup() {
	gl.DeleteTextures(int32(len(tm.ids)), &tm.ids[0])
}

func loadImageFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func uploadTexture(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return id
}

// proceduralTexture synthesizes a material when the asset file is missing.
// The generator is seeded per material so the fallback is stable across runs.
func proceduralTexture(kind TextureKind) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	rng := city.NewRand(uint64(kind) + 1)

	switch kind {
	case TexBrick:
		for y := 0; y < texSize; y++ {
			row := y / 16
			for x := 0; x < texSize; x++ {
				// Mortar lines, with alternating rows offset half a brick.
				off := 0
				if row%2 == 1 {
					off = 16
				}
				mortar := y%16 < 2 || (x+off)%32 < 2
				if mortar {
					setPixel(img, x, y, 180, 175, 170)
				} else {
					n := rng.Intn(20)
					setPixel(img, x, y, 150+n, 70+n/2, 55+n/2)
				}
			}
		}
	case TexConcrete:
		for y := 0; y < texSize; y++ {
			for x := 0; x < texSize; x++ {
				n := rng.Intn(25)
				setPixel(img, x, y, 120+n, 120+n, 122+n)
			}
		}
	case TexGlass:
		for y := 0; y < texSize; y++ {
			for x := 0; x < texSize; x++ {
				// Window grid with sky-tinted panes.
				if x%32 < 3 || y%32 < 3 {
					setPixel(img, x, y, 60, 65, 70)
				} else {
					n := rng.Intn(15)
					setPixel(img, x, y, 110+n, 150+n, 190+n)
				}
			}
		}
	case TexAsphalt:
		for y := 0; y < texSize; y++ {
			for x := 0; x < texSize; x++ {
				// Dashed centerline along the middle.
				if y >= texSize/2-3 && y < texSize/2+3 && (x/24)%2 == 0 {
					setPixel(img, x, y, 210, 190, 80)
					continue
				}
				n := rng.Intn(18)
				setPixel(img, x, y, 55+n, 55+n, 58+n)
			}
		}
	case TexGrass:
		for y := 0; y < texSize; y++ {
			for x := 0; x < texSize; x++ {
				n := rng.Intn(30)
				setPixel(img, x, y, 40+n/2, 110+n, 40+n/2)
			}
		}
	case TexWater:
		for y := 0; y < texSize; y++ {
			for x := 0; x < texSize; x++ {
				// Faint horizontal ripple bands.
				band := 0
				if (y/6)%3 == 0 {
					band = 20
				}
				n := rng.Intn(12)
				setPixel(img, x, y, 40+n, 110+n+band/2, 190+n+band)
			}
		}
	}
	return img
}

func setPixel(img *image.RGBA, x, y, r, g, b int) {
	i := img.PixOffset(x, y)
	img.Pix[i] = uint8(r)
	img.Pix[i+1] = uint8(g)
	img.Pix[i+2] = uint8(b)
	img.Pix[i+3] = 255
}
