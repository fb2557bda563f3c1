// Package assets loads the game's images and its fire sound.
//
// Everything is read once at startup from an fs.FS, normally os.DirFS of the
// asset directory. A missing file is an error; callers treat it as fatal.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/plus3/skyraid/internal/game"
)

// Manifest names the asset files.
type Manifest struct {
	Airplane   string
	Background string
	Projectile string
	FireSound  string
}

// DefaultManifest returns the file names the game ships with.
func DefaultManifest() Manifest {
	return Manifest{
		Airplane:   "Airplane.png",
		Background: "RepeatingBackground.png",
		Projectile: "Bullet.png",
		FireSound:  "bullet_sound.wav",
	}
}

// Pack holds the decoded images and the raw bytes of the fire sound.
type Pack struct {
	Airplane   image.Image
	Background image.Image
	Projectile image.Image
	FireSound  []byte
}

// Load reads and decodes every file named by the manifest.
func Load(fsys fs.FS, m Manifest) (*Pack, error) {
	var (
		p   Pack
		err error
	)

	if p.Airplane, err = loadImage(fsys, m.Airplane); err != nil {
		return nil, err
	}
	if p.Background, err = loadImage(fsys, m.Background); err != nil {
		return nil, err
	}
	if p.Projectile, err = loadImage(fsys, m.Projectile); err != nil {
		return nil, err
	}
	if p.FireSound, err = fs.ReadFile(fsys, m.FireSound); err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", m.FireSound, err)
	}

	return &p, nil
}

func loadImage(fsys fs.FS, name string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// Image returns the image drawn for a sprite kind.
func (p *Pack) Image(kind game.SpriteKind) image.Image {
	switch kind {
	case game.SpriteBackground:
		return p.Background
	case game.SpriteAirplane:
		return p.Airplane
	case game.SpriteProjectile:
		return p.Projectile
	default:
		return nil
	}
}

// Sizes returns the sprite sizes, which are the image dimensions.
func (p *Pack) Sizes() game.Sizes {
	return game.Sizes{
		Airplane:   sizeOf(p.Airplane),
		Background: sizeOf(p.Background),
		Projectile: sizeOf(p.Projectile),
	}
}

func sizeOf(img image.Image) game.Vec2 {
	b := img.Bounds()
	return game.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
}
