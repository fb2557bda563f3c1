package game

// Airplane marks the player entity.
type Airplane struct{}

// Projectile marks a live projectile.
type Projectile struct{}

// Background marks the scrolling backdrop. Start is where it was spawned,
// which the modulo scroll wraps around.
type Background struct {
	Start Vec2
	Mode  ScrollMode
}

// Mover is a fixed per-tick step length.
type Mover struct {
	Speed float64
}

// SpriteKind names the image an entity is drawn with.
type SpriteKind uint8

const (
	SpriteBackground SpriteKind = iota
	SpriteAirplane
	SpriteProjectile
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteBackground:
		return "background"
	case SpriteAirplane:
		return "airplane"
	case SpriteProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Layer is a display list. Lower layers are drawn first.
type Layer uint8

const (
	LayerScene Layer = iota
	LayerProjectiles
)

// Sprite makes an entity drawable.
type Sprite struct {
	Kind  SpriteKind
	Layer Layer
}

// Session counts what happened since setup.
type Session struct {
	Fired   uint64
	Removed uint64
}
