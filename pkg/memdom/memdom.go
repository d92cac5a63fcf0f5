// Package memdom is an in-memory implementation of the pkg/dom host
// abstraction. It backs the runtime's tests and serves as the server-side
// mirror document for live sessions.
package memdom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reactor-ui/reactor/pkg/dom"
)

// Document creates in-memory nodes.
type Document struct{}

// NewDocument returns a new in-memory document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{tag: tag}
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(data string) dom.Text {
	return &TextNode{data: data}
}

// childNode is the parent bookkeeping shared by element and text nodes.
type childNode interface {
	dom.Node
	setParent(p *Element)
}

type listenerEntry struct {
	id dom.ListenerID
	fn dom.EventListener
}

// Element is an in-memory element node.
type Element struct {
	tag       string
	parent    *Element
	children  []dom.Node
	attrs     map[string]string
	class     string
	hasClass  bool
	styles    map[string]string
	listeners map[string][]listenerEntry
	nextID    dom.ListenerID
}

// TagName implements dom.Element.
func (e *Element) TagName() string { return e.tag }

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttribute implements dom.Element.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// SetClassName implements dom.Element.
func (e *Element) SetClassName(class string) {
	e.class = class
	e.hasClass = class != ""
}

// SetStyle implements dom.Element.
func (e *Element) SetStyle(prop, value string) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[prop] = value
}

// RemoveStyle implements dom.Element.
func (e *Element) RemoveStyle(prop string) {
	delete(e.styles, prop)
}

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(event string, l dom.EventListener) dom.ListenerID {
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.nextID++
	e.listeners[event] = append(e.listeners[event], listenerEntry{id: e.nextID, fn: l})
	return e.nextID
}

// RemoveEventListener implements dom.Element.
func (e *Element) RemoveEventListener(event string, id dom.ListenerID) {
	entries := e.listeners[event]
	for i, entry := range entries {
		if entry.id == id {
			e.listeners[event] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// AppendChild implements dom.Element.
func (e *Element) AppendChild(n dom.Node) {
	child := asChild(n)
	child.Remove()
	child.setParent(e)
	e.children = append(e.children, n)
}

// InsertBefore implements dom.Element. A nil ref appends.
func (e *Element) InsertBefore(n dom.Node, ref dom.Node) {
	if ref == nil {
		e.AppendChild(n)
		return
	}

	child := asChild(n)
	child.Remove()

	for i, existing := range e.children {
		if existing == ref {
			child.setParent(e)
			e.children = append(e.children[:i:i], append([]dom.Node{n}, e.children[i:]...)...)
			return
		}
	}
	// Ref not found: fall back to append, mirroring browser tolerance.
	child.setParent(e)
	e.children = append(e.children, n)
}

// ChildNodes implements dom.Element.
func (e *Element) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount implements dom.Element.
func (e *Element) ChildCount() int { return len(e.children) }

// Remove implements dom.Node.
func (e *Element) Remove() {
	detach(e)
}

func (e *Element) setParent(p *Element) { e.parent = p }

// Dispatch fires listeners registered for ev.Type, in attach order.
// Target defaults to the element itself.
func (e *Element) Dispatch(ev dom.Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	// Snapshot: a listener may attach or detach listeners while firing.
	entries := append([]listenerEntry(nil), e.listeners[ev.Type]...)
	for _, entry := range entries {
		entry.fn(ev)
	}
}

// Attr returns the value of a plain attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Class returns the current class name.
func (e *Element) Class() string { return e.class }

// StyleOf returns the value of one inline-style property.
func (e *Element) StyleOf(prop string) (string, bool) {
	v, ok := e.styles[prop]
	return v, ok
}

// ListenerCount returns how many listeners are attached for event.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// OuterHTML renders the subtree for debugging and assertions. Attribute
// and style keys are sorted for determinism; this is not the production
// renderer and performs no escaping.
func (e *Element) OuterHTML() string {
	var buf strings.Builder
	e.writeHTML(&buf)
	return buf.String()
}

func (e *Element) writeHTML(buf *strings.Builder) {
	buf.WriteString("<")
	buf.WriteString(e.tag)

	if e.hasClass {
		fmt.Fprintf(buf, ` class=%q`, e.class)
	}
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(buf, ` %s=%q`, name, e.attrs[name])
	}
	if len(e.styles) > 0 {
		props := make([]string, 0, len(e.styles))
		for prop := range e.styles {
			props = append(props, prop)
		}
		sort.Strings(props)
		parts := make([]string, len(props))
		for i, prop := range props {
			parts[i] = prop + ": " + e.styles[prop]
		}
		fmt.Fprintf(buf, ` style=%q`, strings.Join(parts, "; "))
	}
	buf.WriteString(">")

	for _, child := range e.children {
		switch c := child.(type) {
		case *Element:
			c.writeHTML(buf)
		case *TextNode:
			buf.WriteString(c.data)
		}
	}

	buf.WriteString("</")
	buf.WriteString(e.tag)
	buf.WriteString(">")
}

// TextNode is an in-memory text node.
type TextNode struct {
	parent *Element
	data   string
}

// Data implements dom.Text.
func (t *TextNode) Data() string { return t.data }

// SetData implements dom.Text.
func (t *TextNode) SetData(data string) { t.data = data }

// Remove implements dom.Node.
func (t *TextNode) Remove() {
	detach(t)
}

func (t *TextNode) setParent(p *Element) { t.parent = p }

func asChild(n dom.Node) childNode {
	child, ok := n.(childNode)
	if !ok {
		panic(fmt.Sprintf("memdom: foreign node %T", n))
	}
	return child
}

// detach removes n from its parent's child list, if any.
func detach(n childNode) {
	var parent *Element
	switch c := n.(type) {
	case *Element:
		parent = c.parent
	case *TextNode:
		parent = c.parent
	}
	if parent == nil {
		return
	}
	for i, child := range parent.children {
		if child == dom.Node(n) {
			parent.children = append(parent.children[:i:i], parent.children[i+1:]...)
			break
		}
	}
	n.setParent(nil)
}
