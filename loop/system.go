package loop

// System is one step of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}

// named lets a system report a name for its statistics.
type named interface {
	Name() string
}
