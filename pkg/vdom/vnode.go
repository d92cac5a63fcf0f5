package vdom

import (
	"maps"

	"github.com/reactor-ui/reactor/pkg/dom"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// Element nodes carry Tag, Props, Children and an optional Key. Text nodes
// carry only Text. Host is filled in client-side by the runtime once the
// node is attached to a real element; bare text nodes are never tracked.
type VNode struct {
	Kind     VKind       // Node type
	Tag      string      // Element tag name (e.g., "div")
	Props    *Props      // Ordered attributes and event handlers
	Children []*VNode    // Child nodes
	Key      string      // Reconciliation key, "" if unkeyed
	Text     string      // For KindText
	Host     dom.Element // Attached host element (client-side only)
}

// IsText returns true for text nodes.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// PropValue is the closed set of attribute value categories. The renderer,
// mounter and patcher switch exhaustively over these variants.
type PropValue interface {
	isPropValue()
}

// StringValue is a plain text attribute value.
type StringValue string

// BoolValue is a flag attribute: true renders as a bare attribute name,
// false is omitted entirely.
type BoolValue bool

// IntValue is an integer attribute value.
type IntValue int

// FloatValue is a floating-point attribute value.
type FloatValue float64

// Style is an inline-style mapping, applied property by property.
type Style map[string]string

// Handler is an event callback bound under an "on_<event>" key. It is
// never emitted to markup.
type Handler func(dom.Event)

func (StringValue) isPropValue() {}
func (BoolValue) isPropValue()   {}
func (IntValue) isPropValue()    {}
func (FloatValue) isPropValue()  {}
func (Style) isPropValue()       {}
func (Handler) isPropValue()     {}

// PropEqual reports whether two attribute values are interchangeable for
// patching purposes. Handlers are never equal: function values carry no
// usable identity, so the patcher always re-binds them.
func PropEqual(a, b PropValue) bool {
	switch av := a.(type) {
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av == bv
	case FloatValue:
		bv, ok := b.(FloatValue)
		return ok && av == bv
	case Style:
		bv, ok := b.(Style)
		return ok && maps.Equal(av, bv)
	case Handler:
		return false
	case nil:
		return b == nil
	}
	return false
}
