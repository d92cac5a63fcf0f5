package hooks

import "errors"

// ErrNoRenderContext is returned when a hook is called outside a component
// render. This is a programming mistake (hook called outside a component
// body, or on a context kept past its render) and is never recovered
// silently.
var ErrNoRenderContext = errors.New("reactor: hook called outside component render")

// ErrSlotType is returned when a state slot holds a different type than
// the hook call expects. The usual cause is a hook-ordering violation:
// the component called its hooks in a different order than on the render
// that created the slots.
var ErrSlotType = errors.New("reactor: state slot type mismatch (hook order changed between renders?)")

// hookFault wraps a framework error raised inside a component body so the
// render driver can tell it apart from a component's own panic.
type hookFault struct {
	err error
}

func (f hookFault) Error() string {
	return f.err.Error()
}

func (f hookFault) Unwrap() error {
	return f.err
}
