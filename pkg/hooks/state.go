package hooks

import "fmt"

// UseState reads the state slot at the current hook index, creating it
// with initial on the first render, and returns the slot's current value
// together with a setter bound to that slot.
//
// The setter overwrites the slot in place and synchronously invokes the
// instance's schedule callback if one is registered. There is no batching
// and no dirty check: every setter call schedules independently, even
// when the value is unchanged.
func UseState[T any](ctx *Ctx, initial T) (T, func(T)) {
	return useState[T](ctx, func() any { return initial })
}

// UseStateFunc is UseState with a lazy initializer. init runs only when
// the slot is first created, so expensive initial state is not recomputed
// on every render.
func UseStateFunc[T any](ctx *Ctx, init func() T) (T, func(T)) {
	return useState[T](ctx, func() any { return init() })
}

func useState[T any](ctx *Ctx, init func() any) (T, func(T)) {
	inst := ctx.instance()

	idx := inst.cursor
	if idx >= len(inst.slots) {
		inst.slots = append(inst.slots, &slot{value: init()})
	}
	inst.cursor++

	cell := inst.slots[idx]

	var value T
	if cell.value != nil {
		v, ok := cell.value.(T)
		if !ok {
			panic(hookFault{err: fmt.Errorf("%w: slot %d holds %T", ErrSlotType, idx, cell.value)})
		}
		value = v
	}

	set := func(v T) {
		cell.value = v
		if inst.schedule != nil {
			inst.schedule()
		}
	}

	return value, set
}
