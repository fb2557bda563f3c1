// Package window runs the game in a desktop window through ebiten.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/plus3/skyraid/internal/debugui"
	"github.com/plus3/skyraid/internal/game"
)

// Images supplies the picture for each sprite kind.
type Images interface {
	Image(kind game.SpriteKind) image.Image
}

// Option configures a Frontend.
type Option func(*Frontend)

// WithOverlay draws the debug overlay on top of the game and routes input to
// it while one of its widgets has keyboard focus.
func WithOverlay(o *debugui.Overlay) Option {
	return func(f *Frontend) {
		f.overlay = o
	}
}

// WithFadeIn fades the scene in from black over the given number of seconds.
// Zero disables the fade.
func WithFadeIn(seconds float32) Option {
	return func(f *Frontend) {
		if seconds <= 0 {
			f.fade = nil
			f.alpha = 1
			return
		}
		f.fade = gween.New(0, 1, seconds, ease.OutQuad)
		f.alpha = 0
	}
}

// Frontend implements ebiten.Game on top of a game.Game.
type Frontend struct {
	game   *game.Game
	bounds game.Bounds
	images map[game.SpriteKind]*ebiten.Image

	overlay *debugui.Overlay
	fade    *gween.Tween
	alpha   float32

	pressed  []ebiten.Key
	released []ebiten.Key
	focused  bool
}

// New uploads the sprite images and prepares the window frontend.
func New(g *game.Game, images Images, opts ...Option) *Frontend {
	f := &Frontend{
		game:    g,
		bounds:  g.Config().Bounds,
		images:  make(map[game.SpriteKind]*ebiten.Image),
		alpha:   1,
		focused: true,
	}

	for _, kind := range []game.SpriteKind{game.SpriteBackground, game.SpriteAirplane, game.SpriteProjectile} {
		if img := images.Image(kind); img != nil {
			f.images[kind] = ebiten.NewImageFromImage(img)
		}
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (f *Frontend) Run(title string) error {
	ebiten.SetWindowSize(int(f.bounds.Width), int(f.bounds.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(f.game.Config().TPS)

	if err := ebiten.RunGame(f); err != nil {
		return err
	}
	return nil
}

func (f *Frontend) Update() error {
	// Releases that happen while unfocused are never reported.
	focused := ebiten.IsFocused()
	if f.focused && !focused {
		f.game.Halt()
	}
	f.focused = focused

	f.released = inpututil.AppendJustReleasedKeys(f.released[:0])
	f.pressed = inpututil.AppendJustPressedKeys(f.pressed[:0])

	if quitRequested(f.pressed) {
		return ebiten.Termination
	}

	if f.overlay == nil || !f.overlay.WantsKeyboard() {
		for _, e := range Events(f.released, f.pressed) {
			f.game.Push(e)
		}
	}

	f.game.Tick()

	if f.fade != nil {
		alpha, done := f.fade.Update(1 / float32(f.game.Config().TPS))
		f.alpha = alpha
		if done {
			f.fade = nil
			f.alpha = 1
		}
	}

	if f.overlay != nil {
		f.overlay.Update()
	}
	return nil
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	for _, d := range f.game.DisplayList() {
		img, ok := f.images[d.Kind]
		if !ok {
			continue
		}

		origin := f.bounds.ScreenOrigin(d.Body)
		if !d.Tiled {
			f.drawAt(screen, img, origin.X, origin.Y)
			continue
		}
		for _, x := range TileOffsets(origin.X, d.Body.Size.X, f.bounds.Width) {
			f.drawAt(screen, img, x, origin.Y)
		}
	}

	if f.overlay != nil {
		f.overlay.Draw(screen)
	}
}

func (f *Frontend) drawAt(screen, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(f.alpha)
	screen.DrawImage(img, op)
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := int(f.bounds.Width), int(f.bounds.Height)
	if f.overlay != nil {
		f.overlay.Layout(w, h)
	}
	return w, h
}

// TileOffsets returns the left edges at which an image of the given width
// must be drawn, starting from left, to cover [0, span).
func TileOffsets(left, width, span float64) []float64 {
	if width <= 0 {
		return []float64{left}
	}

	for left > 0 {
		left -= width
	}

	var out []float64
	for x := left; x < span; x += width {
		if x+width > 0 {
			out = append(out, x)
		}
	}
	return out
}
