// Package runtime is the client-side half of the framework: it mounts
// virtual node trees into a host document, patches the host in place when
// a new tree arrives, and drives re-renders through a Session.
//
// Everything here assumes a single logical thread of execution (host UI
// events). The patcher also assumes the old tree was previously mounted
// by this runtime so host references are consistent; patching a tree that
// was never mounted is undefined behavior, not a handled error.
package runtime

import (
	"strconv"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/vdom"
)

// Runtime mounts and patches node trees against one host document.
//
// It keeps a side map of attached listeners per host element per event
// name, so handler updates detach the previous listener before attaching
// the new one instead of accumulating duplicates across re-renders.
type Runtime struct {
	doc       dom.Document
	listeners map[dom.Element]map[string]dom.ListenerID
}

// New creates a runtime rendering into doc.
func New(doc dom.Document) *Runtime {
	return &Runtime{
		doc:       doc,
		listeners: make(map[dom.Element]map[string]dom.ListenerID),
	}
}

// Mount creates host nodes for the whole subtree and appends them to
// parent. After Mount returns, every element node in the subtree has a
// valid host reference. Bare text children are not tracked.
func (r *Runtime) Mount(parent dom.Element, node *vdom.VNode) {
	if node == nil {
		return
	}

	if node.IsText() {
		parent.AppendChild(r.doc.CreateTextNode(node.Text))
		return
	}

	el := r.doc.CreateElement(node.Tag)
	node.Host = el

	for key, value := range node.Props.All() {
		r.applyProp(el, key, value)
	}

	for _, child := range node.Children {
		r.Mount(el, child)
	}

	parent.AppendChild(el)
}

// applyProp applies one attribute to a freshly created element.
func (r *Runtime) applyProp(el dom.Element, key string, value vdom.PropValue) {
	if vdom.IsEventProp(key) {
		if h, ok := value.(vdom.Handler); ok {
			r.bind(el, vdom.EventName(key), h)
		}
		return
	}

	if key == "class" {
		el.SetClassName(propText(value))
		return
	}

	switch v := value.(type) {
	case vdom.Style:
		for prop, val := range v {
			el.SetStyle(prop, val)
		}
	case vdom.BoolValue:
		if v {
			el.SetAttribute(key, "")
		}
	case vdom.Handler:
		// Callable under a non-event key; nothing to apply.
	default:
		el.SetAttribute(key, propText(value))
	}
}

// propText stringifies a non-handler attribute value.
func propText(value vdom.PropValue) string {
	switch v := value.(type) {
	case vdom.StringValue:
		return string(v)
	case vdom.BoolValue:
		return strconv.FormatBool(bool(v))
	case vdom.IntValue:
		return strconv.Itoa(int(v))
	case vdom.FloatValue:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	default:
		return ""
	}
}

// bind attaches a listener, detaching any listener this runtime attached
// earlier for the same element and event.
func (r *Runtime) bind(el dom.Element, event string, h vdom.Handler) {
	byEvent := r.listeners[el]
	if byEvent == nil {
		byEvent = make(map[string]dom.ListenerID)
		r.listeners[el] = byEvent
	}
	if id, ok := byEvent[event]; ok {
		el.RemoveEventListener(event, id)
	}
	byEvent[event] = el.AddEventListener(event, dom.EventListener(h))
}

// unbind detaches the listener this runtime attached for event, if any.
func (r *Runtime) unbind(el dom.Element, event string) {
	byEvent := r.listeners[el]
	if id, ok := byEvent[event]; ok {
		el.RemoveEventListener(event, id)
		delete(byEvent, event)
	}
}

// forgetTree drops listener bookkeeping for every element in the subtree.
// Called when a subtree leaves the host for good.
func (r *Runtime) forgetTree(node *vdom.VNode) {
	if node == nil || node.IsText() {
		return
	}
	if node.Host != nil {
		delete(r.listeners, node.Host)
	}
	for _, child := range node.Children {
		r.forgetTree(child)
	}
}
