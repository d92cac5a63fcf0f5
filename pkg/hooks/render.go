package hooks

import (
	"github.com/reactor-ui/reactor/pkg/vdom"
)

// Props is the arbitrary property mapping passed to a component.
type Props map[string]any

// Component is a component function. It receives the active render
// context (the only legal access to hooks) and its props, and returns the
// root of the rendered subtree.
type Component func(ctx *Ctx, props Props) *vdom.VNode

// Ctx is the render context for one RenderComponent call. It is valid
// only for the duration of that call; hooks invoked on an expired or
// otherwise inactive context fail with ErrNoRenderContext.
type Ctx struct {
	inst   *Instance
	active bool
}

// RenderComponent drives a single render: it resets the instance's hook
// cursor, hands the component a fresh context, and captures the returned
// node. The context is invalidated before returning even if the component
// panics.
//
// Hook misuse (no active context, slot type mismatch) surfaces as an
// error; any other panic from the component body propagates unchanged.
func RenderComponent(fn Component, props Props, inst *Instance) (node *vdom.VNode, err error) {
	ctx := &Ctx{inst: inst, active: true}
	inst.cursor = 0

	defer func() {
		ctx.active = false
		if r := recover(); r != nil {
			fault, ok := r.(hookFault)
			if !ok {
				panic(r)
			}
			node = nil
			err = fault.err
		}
	}()

	node = fn(ctx, props)
	return node, nil
}

// instance returns the active instance or panics with a context fault.
func (c *Ctx) instance() *Instance {
	if c == nil || !c.active || c.inst == nil {
		panic(hookFault{err: ErrNoRenderContext})
	}
	return c.inst
}
