// Package remotedom is a recording implementation of the dom interfaces.
//
// Nodes mirror the structure of the real browser document but hold no
// rendering state of their own. Every mutation is recorded as a protocol
// op; a live session drains the recorded ops after each render pass and
// ships them to the thin client, which replays them against the real DOM.
//
// Node IDs are assigned sequentially by the document, so server and
// client agree on identity without a handshake per node.
package remotedom

import (
	"sync"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/protocol"
)

// Document creates recording nodes and accumulates the ops they emit.
// A document belongs to a single session goroutine; it is not safe for
// concurrent use.
type Document struct {
	nextID   protocol.NodeID
	ops      []protocol.Op
	registry map[protocol.NodeID]dom.Node
}

// NewDocument creates an empty recording document.
func NewDocument() *Document {
	return &Document{registry: make(map[protocol.NodeID]dom.Node)}
}

func (d *Document) record(op protocol.Op) {
	d.ops = append(d.ops, op)
}

func (d *Document) allocate(n dom.Node) protocol.NodeID {
	d.nextID++
	d.registry[d.nextID] = n
	return d.nextID
}

// CreateElement creates an element mirror and records its creation.
func (d *Document) CreateElement(tag string) dom.Element {
	el := &Element{doc: d, tag: tag}
	el.id = d.allocate(el)
	d.record(protocol.Op{Code: protocol.OpCreateElement, Node: el.id, Tag: tag})
	return el
}

// CreateTextNode creates a text mirror and records its creation.
func (d *Document) CreateTextNode(data string) dom.Text {
	t := &TextNode{doc: d, data: data}
	t.id = d.allocate(t)
	d.record(protocol.Op{Code: protocol.OpCreateText, Node: t.id, Value: data})
	return t
}

// Drain returns the ops recorded since the last call and resets the
// buffer. An empty slice means nothing changed.
func (d *Document) Drain() []protocol.Op {
	ops := d.ops
	d.ops = nil
	return ops
}

// Pending returns the number of recorded ops not yet drained.
func (d *Document) Pending() int {
	return len(d.ops)
}

// Lookup resolves a node ID reported by the client. The second return is
// false for IDs the document never issued or whose nodes were released.
func (d *Document) Lookup(id protocol.NodeID) (dom.Node, bool) {
	n, ok := d.registry[id]
	return n, ok
}

// release drops a node and its subtree from the registry. Called on
// removal so client-supplied IDs cannot resurrect detached nodes.
func (d *Document) release(n dom.Node) {
	switch v := n.(type) {
	case *Element:
		delete(d.registry, v.id)
		for _, c := range v.children {
			d.release(c)
		}
	case *TextNode:
		delete(d.registry, v.id)
	}
}

// Element is the server-side mirror of a browser element.
type Element struct {
	doc      *Document
	id       protocol.NodeID
	tag      string
	parent   *Element
	children []dom.Node

	mu        sync.Mutex
	listeners map[string]map[dom.ListenerID]dom.EventListener
	nextLID   dom.ListenerID
}

// ID returns the node's wire ID.
func (e *Element) ID() protocol.NodeID { return e.id }

// TagName returns the element's tag.
func (e *Element) TagName() string { return e.tag }

// SetAttribute records an attribute write.
func (e *Element) SetAttribute(name, value string) {
	e.doc.record(protocol.Op{Code: protocol.OpSetAttribute, Node: e.id, Key: name, Value: value})
}

// RemoveAttribute records an attribute removal.
func (e *Element) RemoveAttribute(name string) {
	e.doc.record(protocol.Op{Code: protocol.OpRemoveAttribute, Node: e.id, Key: name})
}

// SetClassName records a full class replacement.
func (e *Element) SetClassName(class string) {
	e.doc.record(protocol.Op{Code: protocol.OpSetClass, Node: e.id, Value: class})
}

// SetStyle records a single style property write.
func (e *Element) SetStyle(prop, value string) {
	e.doc.record(protocol.Op{Code: protocol.OpSetStyle, Node: e.id, Key: prop, Value: value})
}

// RemoveStyle records a single style property removal.
func (e *Element) RemoveStyle(prop string) {
	e.doc.record(protocol.Op{Code: protocol.OpRemoveStyle, Node: e.id, Key: prop})
}

// AddEventListener registers the listener locally and tells the client to
// start forwarding this event type for this node.
func (e *Element) AddEventListener(event string, l dom.EventListener) dom.ListenerID {
	e.mu.Lock()
	if e.listeners == nil {
		e.listeners = make(map[string]map[dom.ListenerID]dom.EventListener)
	}
	if e.listeners[event] == nil {
		e.listeners[event] = make(map[dom.ListenerID]dom.EventListener)
	}
	e.nextLID++
	id := e.nextLID
	e.listeners[event][id] = l
	e.mu.Unlock()

	e.doc.record(protocol.Op{Code: protocol.OpAddListener, Node: e.id, Key: event, Listener: uint32(id)})
	return id
}

// RemoveEventListener drops the registration and tells the client to stop
// forwarding it. Unknown IDs are ignored.
func (e *Element) RemoveEventListener(event string, id dom.ListenerID) {
	e.mu.Lock()
	if m := e.listeners[event]; m != nil {
		delete(m, id)
	}
	e.mu.Unlock()

	e.doc.record(protocol.Op{Code: protocol.OpRemoveListener, Node: e.id, Key: event, Listener: uint32(id)})
}

// Deliver invokes the listeners registered for ev.Type. The client names
// a specific listener ID; delivery targets just that registration so a
// detached-and-reattached handler never fires twice.
func (e *Element) Deliver(id dom.ListenerID, ev dom.Event) bool {
	ev.Target = e

	e.mu.Lock()
	l := e.listeners[ev.Type][id]
	e.mu.Unlock()

	if l == nil {
		return false
	}
	l(ev)
	return true
}

func nodeID(n dom.Node) protocol.NodeID {
	switch v := n.(type) {
	case *Element:
		return v.id
	case *TextNode:
		return v.id
	}
	return 0
}

func detach(n dom.Node) {
	switch v := n.(type) {
	case *Element:
		v.detach()
	case *TextNode:
		v.detach()
	}
}

// AppendChild appends n as the last child, reparenting it if needed.
func (e *Element) AppendChild(n dom.Node) {
	detach(n)
	e.adopt(n)
	e.children = append(e.children, n)
	e.doc.record(protocol.Op{Code: protocol.OpAppendChild, Node: e.id, Ref: nodeID(n)})
}

// InsertBefore inserts n before ref. A nil or unknown ref appends.
func (e *Element) InsertBefore(n dom.Node, ref dom.Node) {
	if ref == nil {
		e.AppendChild(n)
		return
	}
	idx := -1
	for i, c := range e.children {
		if c == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.AppendChild(n)
		return
	}

	detach(n)
	e.adopt(n)

	// Recompute: detaching n may have shifted ref's index.
	idx = -1
	for i, c := range e.children {
		if c == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.children = append(e.children, n)
		e.doc.record(protocol.Op{Code: protocol.OpAppendChild, Node: e.id, Ref: nodeID(n)})
		return
	}

	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = n
	e.doc.record(protocol.Op{
		Code:   protocol.OpInsertBefore,
		Node:   e.id,
		Ref:    nodeID(n),
		Before: nodeID(ref),
	})
}

func (e *Element) adopt(n dom.Node) {
	switch v := n.(type) {
	case *Element:
		v.parent = e
	case *TextNode:
		v.parent = e
	}
}

// ChildNodes returns a snapshot of the children in order.
func (e *Element) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// detach unlinks the element from its parent without recording an op.
func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	for i, c := range p.children {
		if c == dom.Node(e) {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Remove detaches the element and records the removal. The client drops
// the whole subtree; the registry releases it so stale IDs stop resolving.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	e.detach()
	e.doc.release(e)
	e.doc.record(protocol.Op{Code: protocol.OpRemoveNode, Node: e.id})
}

// TextNode is the server-side mirror of a browser text node.
type TextNode struct {
	doc    *Document
	id     protocol.NodeID
	parent *Element
	data   string
}

// ID returns the node's wire ID.
func (t *TextNode) ID() protocol.NodeID { return t.id }

// Data returns the current text content.
func (t *TextNode) Data() string { return t.data }

// SetData updates the text content and records the write.
func (t *TextNode) SetData(data string) {
	t.data = data
	t.doc.record(protocol.Op{Code: protocol.OpSetText, Node: t.id, Value: data})
}

func (t *TextNode) detach() {
	if t.parent == nil {
		return
	}
	p := t.parent
	for i, c := range p.children {
		if c == dom.Node(t) {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	t.parent = nil
}

// Remove detaches the text node and records the removal.
func (t *TextNode) Remove() {
	if t.parent == nil {
		return
	}
	t.detach()
	t.doc.release(t)
	t.doc.record(protocol.Op{Code: protocol.OpRemoveNode, Node: t.id})
}
