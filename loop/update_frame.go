package loop

import "github.com/plus3/coinfall/ecs"

// UpdateFrame is passed to every system of a frame. Structural changes and
// side effects go through Commands and apply after the last system.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *ecs.Commands
	Storage   *ecs.Storage
}

func newUpdateFrame(dt float64, storage *ecs.Storage, commands *ecs.Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
	}
}
