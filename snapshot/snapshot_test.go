package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"sprite-snake/assets"
	"sprite-snake/game"
	"sprite-snake/game/types"
)

func solid(size int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestDrawSprite(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	c := NewCanvas(350, 350, map[game.Sprite]image.Image{
		game.SpriteFood: solid(10, red),
	})

	c.DrawSprite(game.SpriteFood, types.Point{X: 20, Y: 30})
	img := c.Image()

	if !sameColor(img.At(25, 35), red) {
		t.Errorf("expected red inside the sprite, got %v", img.At(25, 35))
	}
	if !sameColor(img.At(15, 35), color.Black) {
		t.Errorf("expected black background, got %v", img.At(15, 35))
	}
}

func TestDrawSpriteFallback(t *testing.T) {
	c := NewCanvas(350, 350, nil)
	c.DrawSprite(game.SpriteHead, types.Point{X: 100, Y: 100})

	if !sameColor(c.Image().At(105, 105), color.White) {
		t.Errorf("expected a white square for a missing sprite, got %v", c.Image().At(105, 105))
	}
}

func TestMeasureText(t *testing.T) {
	c := NewCanvas(350, 350, nil)
	short, long := c.MeasureText("Over"), c.MeasureText(game.GameOverText)
	if short <= 0 || long <= short {
		t.Errorf("unexpected widths: %q=%d %q=%d", "Over", short, game.GameOverText, long)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("snapshot is not a PNG: %v", err)
	}
	return img
}

// captureAtWall plays a seeded game right into the wall and captures the
// board from the game over hook, as main does.
func captureAtWall(t *testing.T, sprites map[game.Sprite]image.Image) image.Image {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shots", "final.png")
	var captureErr error
	captured := false
	s := game.NewSurface(game.Options{
		Seed: 3,
		OnOver: func(s *game.Surface) {
			captured = true
			captureErr = Capture(s, sprites, path)
		},
	})
	for i := 0; i < 40 && !s.Over(); i++ {
		s.Tick()
	}
	if !s.Over() {
		t.Fatal("expected the snake to reach the right wall")
	}
	if !captured {
		t.Fatal("game over hook did not run")
	}
	if captureErr != nil {
		t.Fatalf("capture failed: %v", captureErr)
	}

	img := decodePNG(t, path)
	if b := img.Bounds(); b.Dx() != 350 || b.Dy() != 350 {
		t.Fatalf("expected 350x350, got %dx%d", b.Dx(), b.Dy())
	}
	return img
}

func TestCaptureDrawsFinalBoard(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	img := captureAtWall(t, map[game.Sprite]image.Image{
		game.SpriteBody: solid(10, green),
		game.SpriteHead: solid(10, color.RGBA{R: 255, G: 255, A: 255}),
		game.SpriteFood: solid(10, color.RGBA{R: 255, A: 255}),
	})

	// The head is off the board at (350,50); the joint behind it is the
	// last column of row 5
	if !sameColor(img.At(345, 55), green) {
		t.Errorf("expected the body sprite at (340,50), got %v", img.At(345, 55))
	}
	if !sameColor(img.At(5, 345), color.Black) {
		t.Errorf("expected black background in the corner, got %v", img.At(5, 345))
	}
}

func TestCaptureWithoutSprites(t *testing.T) {
	img := captureAtWall(t, nil)
	if !sameColor(img.At(345, 55), color.White) {
		t.Errorf("expected a white square for the body joint, got %v", img.At(345, 55))
	}
}

func TestCaptureWithBundledSprites(t *testing.T) {
	sprites, err := assets.LoadImages(filepath.Join("..", "resources"), types.DotSize)
	if err != nil {
		t.Fatalf("failed to load sprites: %v", err)
	}
	img := captureAtWall(t, sprites)

	want := sprites[game.SpriteBody].At(5, 5)
	if !sameColor(img.At(345, 55), want) {
		t.Errorf("expected the bundled body sprite colour %v, got %v", want, img.At(345, 55))
	}
	if sameColor(img.At(345, 55), color.White) {
		t.Error("body joint drawn with the fallback square")
	}
}
