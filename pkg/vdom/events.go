package vdom

import (
	"strings"

	"github.com/reactor-ui/reactor/pkg/dom"
)

// eventPrefix marks attribute keys that hold event bindings. This prefix
// is the one piece of wire format the node model exposes: the mounter and
// patcher bind listeners for matching keys, and the string renderer always
// skips them.
const eventPrefix = "on_"

// IsEventProp reports whether the attribute key is an event binding.
func IsEventProp(key string) bool {
	return len(key) > len(eventPrefix) && strings.HasPrefix(key, eventPrefix)
}

// EventName derives the host event name from an event attribute key
// ("on_click" -> "click"). The key must satisfy IsEventProp.
func EventName(key string) string {
	return key[len(eventPrefix):]
}

// On binds a handler for an arbitrary event name.
func On(event string, h func(dom.Event)) Attr {
	return Attr{Key: eventPrefix + event, Value: Handler(h)}
}

// OnClick binds a click handler.
func OnClick(h func(dom.Event)) Attr {
	return On("click", h)
}

// OnDblClick binds a double-click handler.
func OnDblClick(h func(dom.Event)) Attr {
	return On("dblclick", h)
}

// OnInput binds an input handler. The event carries the current value.
func OnInput(h func(dom.Event)) Attr {
	return On("input", h)
}

// OnChange binds a change handler.
func OnChange(h func(dom.Event)) Attr {
	return On("change", h)
}

// OnSubmit binds a submit handler.
func OnSubmit(h func(dom.Event)) Attr {
	return On("submit", h)
}

// OnKeyDown binds a keydown handler.
func OnKeyDown(h func(dom.Event)) Attr {
	return On("keydown", h)
}

// OnKeyUp binds a keyup handler.
func OnKeyUp(h func(dom.Event)) Attr {
	return On("keyup", h)
}

// OnFocus binds a focus handler.
func OnFocus(h func(dom.Event)) Attr {
	return On("focus", h)
}

// OnBlur binds a blur handler.
func OnBlur(h func(dom.Event)) Attr {
	return On("blur", h)
}
