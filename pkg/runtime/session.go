package runtime

import (
	"log/slog"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/hooks"
	"github.com/reactor-ui/reactor/pkg/vdom"
)

// Session owns one mount point: the root host element, the component
// function and the props captured at bootstrap, the component instance,
// and the last committed tree. The four mutate together on every
// re-render and stay consistent as a unit.
//
// The bootstrap props are reused verbatim on every setter-triggered
// re-render; they are never re-derived from state.
type Session struct {
	rt        *Runtime
	root      dom.Element
	component hooks.Component
	props     hooks.Props
	inst      *hooks.Instance
	tree      *vdom.VNode
	logger    *slog.Logger
}

// NewSession creates a session rendering into root within doc.
func NewSession(doc dom.Document, root dom.Element, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		rt:     New(doc),
		root:   root,
		logger: logger.With("component", "runtime"),
	}
}

// Mount performs the initial render and paint: render with a fresh
// instance, mount the tree under the root, then wire the instance's
// schedule callback to Rerender so state setters drive updates.
func (s *Session) Mount(component hooks.Component, props hooks.Props) error {
	inst := hooks.NewInstance()

	tree, err := hooks.RenderComponent(component, props, inst)
	if err != nil {
		return err
	}

	s.component = component
	s.props = props
	s.inst = inst
	s.tree = tree

	s.rt.Mount(s.root, tree)

	// Setters call this synchronously, once per setter invocation; there
	// is no batching or coalescing.
	inst.SetSchedule(func() {
		if err := s.Rerender(); err != nil {
			s.logger.Error("rerender failed", "error", err)
		}
	})

	return nil
}

// Rerender renders the component with the bootstrap props, patches the
// host against the previous tree, and commits the new tree.
func (s *Session) Rerender() error {
	next, err := hooks.RenderComponent(s.component, s.props, s.inst)
	if err != nil {
		return err
	}

	s.rt.Patch(s.root, s.tree, next, 0)
	s.tree = next
	return nil
}

// Tree returns the last committed tree.
func (s *Session) Tree() *vdom.VNode {
	return s.tree
}

// Instance returns the session's component instance.
func (s *Session) Instance() *hooks.Instance {
	return s.inst
}

// Runtime returns the underlying mount/patch runtime.
func (s *Session) Runtime() *Runtime {
	return s.rt
}
