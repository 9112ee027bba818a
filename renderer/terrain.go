// Package renderer draws the terrain surfaces and hunt entities with raylib.
package renderer

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harpoon/terrain"
)

// TerrainRenderer draws the two terrain surfaces as textures stretched over
// the world square. Entities are drawn between DrawLower and DrawUpper so
// land covers anything under it.
type TerrainRenderer struct {
	lower, upper rl.Texture2D
	res          int
	size         float32
	initialized  bool
}

// NewTerrainRenderer creates a renderer and uploads f's surfaces. Must be
// called after the raylib window is created.
func NewTerrainRenderer(f *terrain.Field) *TerrainRenderer {
	r := &TerrainRenderer{}
	r.Load(f)
	return r
}

// Load replaces the textures with f's surfaces, reusing them when the
// resolution is unchanged.
func (r *TerrainRenderer) Load(f *terrain.Field) {
	if f == nil {
		return
	}
	lower, upper := f.Lower(), f.Upper()
	if lower == nil || upper == nil {
		return
	}

	if r.initialized && r.res != f.Resolution() {
		r.Unload()
	}
	if !r.initialized {
		r.res = f.Resolution()

		img := rl.GenImageColor(r.res, r.res, rl.Blank)
		r.lower = rl.LoadTextureFromImage(img)
		r.upper = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)

		// Cells are drawn as hard squares.
		rl.SetTextureFilter(r.lower, rl.FilterPoint)
		rl.SetTextureFilter(r.upper, rl.FilterPoint)
		r.initialized = true
	}

	rl.UpdateTexture(r.lower, pixels(lower))
	rl.UpdateTexture(r.upper, pixels(upper))
	r.size = float32(f.Size())
}

// pixels repacks an RGBA image as the row-major slice raylib expects.
func pixels(img *image.RGBA) []color.RGBA {
	b := img.Bounds()
	out := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, img.RGBAAt(x, y))
		}
	}
	return out
}

// DrawLower draws the full terrain. Call inside BeginMode2D.
func (r *TerrainRenderer) DrawLower() {
	r.draw(r.lower)
}

// DrawUpper draws the land mask over entities. Call inside BeginMode2D.
func (r *TerrainRenderer) DrawUpper() {
	r.draw(r.upper)
}

func (r *TerrainRenderer) draw(tex rl.Texture2D) {
	if !r.initialized {
		return
	}
	half := r.size / 2
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(r.res), Height: float32(r.res)}
	dst := rl.Rectangle{X: -half, Y: -half, Width: r.size, Height: r.size}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (r *TerrainRenderer) Unload() {
	if !r.initialized {
		return
	}
	rl.UnloadTexture(r.lower)
	rl.UnloadTexture(r.upper)
	r.initialized = false
}
