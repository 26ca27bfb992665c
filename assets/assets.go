// Package assets resolves and decodes the three sprites the board is drawn
// with.
package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"sprite-snake/game"

	"github.com/disintegration/imaging"
)

// File names inside the asset directory.
const (
	BodyFile = "dot.png"
	FoodFile = "apple.png"
	HeadFile = "head.png"
)

// Paths maps every sprite to its file under dir.
func Paths(dir string) map[game.Sprite]string {
	return map[game.Sprite]string{
		game.SpriteBody: filepath.Join(dir, BodyFile),
		game.SpriteFood: filepath.Join(dir, FoodFile),
		game.SpriteHead: filepath.Join(dir, HeadFile),
	}
}

// Check verifies that every sprite file exists before anything is drawn.
func Check(dir string) error {
	for sprite, path := range Paths(dir) {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("missing %s sprite: %w", sprite, err)
		}
	}
	return nil
}

// LoadImages decodes the sprites and scales any that are not size x size.
func LoadImages(dir string, size int) (map[game.Sprite]image.Image, error) {
	images := make(map[game.Sprite]image.Image, 3)
	for sprite, path := range Paths(dir) {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s sprite: %w", sprite, err)
		}
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			img = imaging.Resize(img, size, size, imaging.Lanczos)
		}
		images[sprite] = img
	}
	return images, nil
}
