package ui

import (
	"fmt"

	"sprite-snake/assets"
	"sprite-snake/game"
	"sprite-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 14

// Renderer draws a surface with raylib. It owns the sprite textures.
type Renderer struct {
	textures map[game.Sprite]rl.Texture2D
}

// NewRenderer loads the three sprite textures. It must run after the window
// exists, since textures live on the GPU context.
func NewRenderer(assetDir string) (*Renderer, error) {
	if err := assets.Check(assetDir); err != nil {
		return nil, err
	}

	r := &Renderer{textures: make(map[game.Sprite]rl.Texture2D, 3)}
	for sprite, path := range assets.Paths(assetDir) {
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			r.Unload()
			return nil, fmt.Errorf("failed to load %s texture from %s", sprite, path)
		}
		r.textures[sprite] = tex
	}
	return r, nil
}

// Unload releases every texture.
func (r *Renderer) Unload() {
	for sprite, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, sprite)
	}
}

// Draw renders one frame.
func (r *Renderer) Draw(s *game.Surface) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	s.Render(r)
	rl.EndDrawing()
}

func (r *Renderer) DrawSprite(sprite game.Sprite, pos types.Point) {
	tex, ok := r.textures[sprite]
	if !ok {
		rl.DrawRectangle(int32(pos.X), int32(pos.Y), types.DotSize, types.DotSize, rl.White)
		return
	}
	rl.DrawTexture(tex, int32(pos.X), int32(pos.Y), rl.White)
}

func (r *Renderer) DrawText(text string, x, y int) {
	rl.DrawText(text, int32(x), int32(y), fontSize, rl.White)
}

func (r *Renderer) MeasureText(text string) int {
	return int(rl.MeasureText(text, fontSize))
}
