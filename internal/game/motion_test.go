package game_test

import (
	"testing"

	"github.com/plus3/skyraid/internal/game"
	"github.com/plus3/skyraid/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var field = game.Bounds{Width: 600, Height: 600}

func TestMoveAirplane(t *testing.T) {
	size := game.Vec2{X: 50, Y: 40}

	tests := []struct {
		name string
		pos  game.Vec2
		dir  input.Direction
		want game.Vec2
	}{
		{"none", game.Vec2{X: 300, Y: 300}, input.DirectionNone, game.Vec2{X: 300, Y: 300}},
		{"up", game.Vec2{X: 300, Y: 300}, input.DirectionUp, game.Vec2{X: 300, Y: 303}},
		{"down", game.Vec2{X: 300, Y: 300}, input.DirectionDown, game.Vec2{X: 300, Y: 297}},
		{"left", game.Vec2{X: 300, Y: 300}, input.DirectionLeft, game.Vec2{X: 297, Y: 300}},
		{"right", game.Vec2{X: 300, Y: 300}, input.DirectionRight, game.Vec2{X: 303, Y: 300}},
		{"up to the edge exactly", game.Vec2{X: 300, Y: 577}, input.DirectionUp, game.Vec2{X: 300, Y: 580}},
		{"up rejected", game.Vec2{X: 300, Y: 578}, input.DirectionUp, game.Vec2{X: 300, Y: 578}},
		{"down rejected", game.Vec2{X: 300, Y: 22}, input.DirectionDown, game.Vec2{X: 300, Y: 22}},
		{"left rejected", game.Vec2{X: 27, Y: 300}, input.DirectionLeft, game.Vec2{X: 27, Y: 300}},
		{"right rejected", game.Vec2{X: 573, Y: 300}, input.DirectionRight, game.Vec2{X: 573, Y: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := game.MoveAirplane(game.Body{Pos: tt.pos, Size: size}, 3, tt.dir, field)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScrollBackgroundLegacy(t *testing.T) {
	bg := game.Background{Start: game.Vec2{X: 300, Y: 300}, Mode: game.ScrollLegacy}
	body := game.Body{Pos: game.Vec2{X: 596, Y: 300}, Size: game.Vec2{X: 1200, Y: 600}}

	pos := game.ScrollBackground(body, bg, 2, field)
	assert.Equal(t, 598.0, pos.X, "below threshold")

	body.Pos = pos
	pos = game.ScrollBackground(body, bg, 2, field)
	assert.Equal(t, 0.0, pos.X, "reset to width - w/2")
	assert.Equal(t, 300.0, pos.Y)
}

func TestScrollBackgroundModulo(t *testing.T) {
	bg := game.Background{Start: game.Vec2{X: 300, Y: 300}, Mode: game.ScrollModulo}
	body := game.Body{Pos: game.Vec2{X: 300, Y: 300}, Size: game.Vec2{X: 100, Y: 600}}

	for range 60 {
		body.Pos = game.ScrollBackground(body, bg, 2, field)
		assert.GreaterOrEqual(t, body.Pos.X, 300.0)
		assert.Less(t, body.Pos.X, 400.0)
	}
	assert.Equal(t, 320.0, body.Pos.X)
}

func TestParseScrollMode(t *testing.T) {
	for _, mode := range []game.ScrollMode{game.ScrollLegacy, game.ScrollModulo} {
		parsed, err := game.ParseScrollMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := game.ParseScrollMode("seamless")
	assert.Error(t, err)
}

func TestProjectileSpawnAndAdvance(t *testing.T) {
	size := game.Vec2{X: 20, Y: 10}

	spawn := game.ProjectileSpawn(game.Vec2{X: 300, Y: 300}, size)
	assert.Equal(t, game.Vec2{X: 320, Y: 300}, spawn)

	pos, off := game.AdvanceProjectile(game.Body{Pos: game.Vec2{X: 585, Y: 300}, Size: size}, 25, field)
	assert.Equal(t, 610.0, pos.X)
	assert.False(t, off, "left edge exactly on the boundary is still on screen")

	_, off = game.AdvanceProjectile(game.Body{Pos: game.Vec2{X: 586, Y: 300}, Size: size}, 25, field)
	assert.True(t, off)
}

func TestScreenOrigin(t *testing.T) {
	body := game.Body{Pos: game.Vec2{X: 300, Y: 500}, Size: game.Vec2{X: 50, Y: 40}}
	assert.Equal(t, game.Vec2{X: 275, Y: 80}, field.ScreenOrigin(body))
}
