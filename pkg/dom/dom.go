// Package dom defines the host-document abstraction the client runtime
// renders into. The concrete host can be an in-memory document (tests,
// server-side mirrors) or a recording document that forwards mutations
// to a real browser.
package dom

// Node is anything that can live in a host tree.
type Node interface {
	// Remove detaches the node from its parent. Removing a node that has
	// no parent is a no-op.
	Remove()
}

// Text is a host text node.
type Text interface {
	Node

	Data() string
	SetData(data string)
}

// ListenerID identifies a single attached event listener on an element,
// so the runtime can detach exactly the listener it attached earlier.
type ListenerID uint32

// EventListener is invoked when an event is dispatched on an element.
type EventListener func(Event)

// Element is a host element node.
type Element interface {
	Node

	TagName() string

	SetAttribute(name, value string)
	RemoveAttribute(name string)

	SetClassName(class string)

	SetStyle(prop, value string)
	RemoveStyle(prop string)

	AddEventListener(event string, l EventListener) ListenerID
	RemoveEventListener(event string, id ListenerID)

	// AppendChild appends node as the last child.
	AppendChild(n Node)
	// InsertBefore inserts node before ref. A nil ref appends.
	InsertBefore(n Node, ref Node)

	// ChildNodes returns a snapshot of the current children in order.
	ChildNodes() []Node
	ChildCount() int
}

// Document creates host nodes.
type Document interface {
	CreateElement(tag string) Element
	CreateTextNode(data string) Text
}

// Event is the value passed to event listeners. Target is the element the
// listener was attached to. Value and Checked carry input state for form
// events and are zero otherwise.
type Event struct {
	Type    string
	Target  Element
	Value   string
	Checked bool
}
