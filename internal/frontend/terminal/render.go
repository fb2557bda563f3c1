package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/skyraid/internal/game"
)

var (
	styleSky        = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleStar       = styleSky.Foreground(tcell.ColorGray)
	styleAirplane   = styleSky.Foreground(tcell.ColorWhite)
	styleProjectile = styleSky.Foreground(tcell.ColorYellow)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
)

var glyphs = map[game.SpriteKind]struct {
	r     rune
	style tcell.Style
}{
	game.SpriteAirplane:   {'█', styleAirplane},
	game.SpriteProjectile: {'=', styleProjectile},
}

// Rect is a half-open range of terminal cells.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// CellRect scales a body from world space onto a cols x rows grid, clipped
// to the grid.
func CellRect(bounds game.Bounds, body game.Body, cols, rows int) Rect {
	origin := bounds.ScreenOrigin(body)
	col := func(x float64) float64 { return x * float64(cols) / bounds.Width }
	row := func(y float64) float64 { return y * float64(rows) / bounds.Height }

	r := Rect{
		X0: int(math.Floor(col(origin.X))),
		Y0: int(math.Floor(row(origin.Y))),
		X1: int(math.Ceil(col(origin.X + body.Size.X))),
		Y1: int(math.Ceil(row(origin.Y + body.Size.Y))),
	}

	r.X0, r.X1 = max(r.X0, 0), min(r.X1, cols)
	r.Y0, r.Y1 = max(r.Y0, 0), min(r.Y1, rows)
	return r
}

// starAt lays a fixed star pattern over the background image, addressed in
// image-relative cells so that it scrolls with the background.
func starAt(col, row int) bool {
	h := uint32(col)*73856093 ^ uint32(row)*19349663
	return h%37 == 0
}

func render(screen tcell.Screen, g *game.Game) {
	cols, rows := screen.Size()
	bounds := g.Config().Bounds
	screen.Clear()

	for _, d := range g.DisplayList() {
		rect := CellRect(bounds, d.Body, cols, rows)

		if d.Kind == game.SpriteBackground {
			shift := int(math.Floor(d.Body.Left() * float64(cols) / bounds.Width))
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					if starAt(x-shift, y) {
						screen.SetContent(x, y, '.', nil, styleStar)
					} else {
						screen.SetContent(x, y, ' ', nil, styleSky)
					}
				}
			}
			continue
		}

		glyph, ok := glyphs[d.Kind]
		if !ok || rect.Empty() {
			continue
		}
		for y := rect.Y0; y < rect.Y1; y++ {
			for x := rect.X0; x < rect.X1; x++ {
				screen.SetContent(x, y, glyph.r, nil, glyph.style)
			}
		}
	}

	stats := g.Stats()
	status := fmt.Sprintf(" skyraid  %-5s  projectiles %d  fired %d  esc quits ",
		stats.Direction, stats.Projectiles, stats.Fired)
	drawText(screen, 0, rows-1, status, styleStatus)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
