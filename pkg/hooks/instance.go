package hooks

// Instance owns the state for one mounted component. It is created once
// per mount point and persists across re-renders until the mount point is
// torn down.
type Instance struct {
	// slots is append-only for the lifetime of the instance. Slots are
	// indexed by hook call order, not by name.
	slots []*slot

	// cursor is the next slot index; reset to zero at the start of every
	// render by the render driver.
	cursor int

	// schedule, when set, is invoked synchronously by state setters to
	// request a re-render. It stays nil during server-side single-shot
	// rendering.
	schedule func()
}

// slot is one typed state cell.
type slot struct {
	value any
}

// NewInstance creates an empty component instance.
func NewInstance() *Instance {
	return &Instance{}
}

// SetSchedule registers the re-render callback invoked by state setters.
// The client runtime wires this after the initial mount; servers leave it
// unset so setters are inert.
func (in *Instance) SetSchedule(fn func()) {
	in.schedule = fn
}

// SlotCount returns the number of state slots created so far.
func (in *Instance) SlotCount() int {
	return len(in.slots)
}

// Cursor returns the current hook index.
func (in *Instance) Cursor() int {
	return in.cursor
}
