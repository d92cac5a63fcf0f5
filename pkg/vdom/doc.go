// Package vdom provides the virtual node tree that components render to.
//
// A VNode describes one element or text node: tag, ordered attributes
// (including event bindings under the "on_<event>" key convention), child
// nodes, and an optional reconciliation key for keyed sibling lists.
// Trees are immutable by convention once produced; the only mutable slot
// is Host, which the client runtime fills in after attaching a real node.
package vdom
