package ecs

// UpdateFrame is passed to every system during one scheduler pass.
type UpdateFrame struct {
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}
