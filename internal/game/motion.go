package game

import (
	"fmt"
	"math"

	"github.com/plus3/skyraid/internal/input"
)

// MoveAirplane steps the airplane by speed in direction. A step that would
// push any edge past the bounds is rejected outright, so the airplane may
// stop short of an edge by up to one step but never crosses it.
func MoveAirplane(body Body, speed float64, dir input.Direction, b Bounds) Vec2 {
	next := body
	switch dir {
	case input.DirectionUp:
		next.Pos.Y += speed
		if next.Top() > b.Height {
			return body.Pos
		}
	case input.DirectionDown:
		next.Pos.Y -= speed
		if next.Bottom() < 0 {
			return body.Pos
		}
	case input.DirectionLeft:
		next.Pos.X -= speed
		if next.Left() < 0 {
			return body.Pos
		}
	case input.DirectionRight:
		next.Pos.X += speed
		if next.Right() > b.Width {
			return body.Pos
		}
	}
	return next.Pos
}

// ScrollMode selects how the background returns after drifting right.
type ScrollMode uint8

const (
	// ScrollLegacy jumps back to Width - w/2 once 2x >= Width + w/2. It is
	// not seamless for arbitrary speeds and image widths.
	ScrollLegacy ScrollMode = iota
	// ScrollModulo wraps x into [start, start+w) so a tiled image loops
	// without a visible jump.
	ScrollModulo
)

func (m ScrollMode) String() string {
	switch m {
	case ScrollLegacy:
		return "legacy"
	case ScrollModulo:
		return "modulo"
	default:
		return "unknown"
	}
}

// ParseScrollMode parses the names returned by ScrollMode.String.
func ParseScrollMode(s string) (ScrollMode, error) {
	switch s {
	case "legacy":
		return ScrollLegacy, nil
	case "modulo":
		return ScrollModulo, nil
	default:
		return 0, fmt.Errorf("game: unknown scroll mode %q", s)
	}
}

// ScrollBackground advances the background by speed and applies the reset
// rule for mode.
func ScrollBackground(body Body, bg Background, speed float64, b Bounds) Vec2 {
	pos := body.Pos
	pos.X += speed

	switch bg.Mode {
	case ScrollModulo:
		if body.Size.X <= 0 {
			return pos
		}
		offset := math.Mod(pos.X-bg.Start.X, body.Size.X)
		if offset < 0 {
			offset += body.Size.X
		}
		pos.X = bg.Start.X + offset
	default:
		if 2*pos.X >= b.Width+body.Size.X/2 {
			pos.X = b.Width - body.Size.X/2
		}
	}
	return pos
}

// ProjectileSpawn places a new projectile one projectile width ahead of the
// spawner, vertically aligned with it.
func ProjectileSpawn(spawner Vec2, size Vec2) Vec2 {
	return Vec2{X: spawner.X + size.X, Y: spawner.Y}
}

// AdvanceProjectile moves a projectile right by speed and reports whether it
// is now entirely past the right edge.
func AdvanceProjectile(body Body, speed float64, b Bounds) (Vec2, bool) {
	body.Pos.X += speed
	return body.Pos, body.Left() > b.Width
}
