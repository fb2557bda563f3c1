package game

// Vec2 is a position or a size in world units.
type Vec2 struct {
	X, Y float64
}

// Bounds is the playfield size. World coordinates are y-up: (0, 0) is the
// bottom-left corner and (Width, Height) the top-right one.
type Bounds struct {
	Width, Height float64
}

// Body is the position of an entity's center together with its size.
type Body struct {
	Pos  Vec2
	Size Vec2
}

func (b Body) Left() float64   { return b.Pos.X - b.Size.X/2 }
func (b Body) Right() float64  { return b.Pos.X + b.Size.X/2 }
func (b Body) Top() float64    { return b.Pos.Y + b.Size.Y/2 }
func (b Body) Bottom() float64 { return b.Pos.Y - b.Size.Y/2 }

// ScreenOrigin converts a body to the top-left corner of its image in y-down
// screen space, which is what rendering libraries expect.
func (b Bounds) ScreenOrigin(body Body) Vec2 {
	return Vec2{
		X: body.Left(),
		Y: b.Height - body.Top(),
	}
}
