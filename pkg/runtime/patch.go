package runtime

import (
	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/vdom"
)

// Patch reconciles the host children of parent at the given slot: old is
// the previously committed node for that slot, new the freshly rendered
// one. Comparison is same-level only; the patcher never looks above or
// skips levels. index is old's position among parent's host children and
// is only consulted for bare text nodes, which carry no host reference.
func (r *Runtime) Patch(parent dom.Element, old, new *vdom.VNode, index int) {
	// Added.
	if old == nil && new != nil {
		r.Mount(parent, new)
		return
	}

	// Removed.
	if old != nil && new == nil {
		r.removeNode(parent, old, index)
		return
	}

	// Both absent.
	if old == nil && new == nil {
		return
	}

	// Both text: update data in place on strict inequality.
	if old.IsText() && new.IsText() {
		if old.Text != new.Text {
			kids := parent.ChildNodes()
			if index < len(kids) {
				if t, ok := kids[index].(dom.Text); ok {
					t.SetData(new.Text)
				}
			}
		}
		return
	}

	// Text vs element: full replace, never convert a host in place.
	if old.IsText() != new.IsText() {
		r.removeNode(parent, old, index)
		r.Mount(parent, new)
		return
	}

	// Different tags: full subtree replace. No cross-tag host reuse even
	// when attributes and children look similar.
	if old.Tag != new.Tag {
		r.removeNode(parent, old, index)
		r.Mount(parent, new)
		return
	}

	// Same tag: reuse the host element.
	new.Host = old.Host
	el := old.Host

	r.patchProps(el, old.Props, new.Props)

	// Strategy choice samples only the first new child; sibling lists are
	// assumed uniformly keyed or uniformly unkeyed. Mixed lists are
	// unspecified (see DESIGN.md).
	if firstChildKeyed(new.Children) {
		r.patchChildrenByKey(el, old.Children, new.Children)
	} else {
		r.patchChildrenByIndex(el, old.Children, new.Children)
	}
}

// firstChildKeyed reports whether the first child is a keyed element.
func firstChildKeyed(children []*vdom.VNode) bool {
	if len(children) == 0 {
		return false
	}
	first := children[0]
	return first != nil && !first.IsText() && first.Key != ""
}

// childKey returns the reconciliation key of an element child, "" for
// text nodes and unkeyed elements.
func childKey(node *vdom.VNode) string {
	if node == nil || node.IsText() {
		return ""
	}
	return node.Key
}

// patchProps reconciles the attribute sets of a reused host element.
func (r *Runtime) patchProps(el dom.Element, oldProps, newProps *vdom.Props) {
	// Attributes gone from the new set.
	for key, oldVal := range oldProps.All() {
		if newProps.Has(key) {
			continue
		}
		if vdom.IsEventProp(key) {
			r.unbind(el, vdom.EventName(key))
			continue
		}
		if key == "class" {
			el.SetClassName("")
			continue
		}
		if style, ok := oldVal.(vdom.Style); ok {
			for prop := range style {
				el.RemoveStyle(prop)
			}
			continue
		}
		el.RemoveAttribute(key)
	}

	// Added or changed attributes.
	for key, newVal := range newProps.All() {
		oldVal, had := oldProps.Get(key)
		if had && vdom.PropEqual(oldVal, newVal) {
			continue
		}

		if vdom.IsEventProp(key) {
			if h, ok := newVal.(vdom.Handler); ok {
				r.bind(el, vdom.EventName(key), h)
			}
			continue
		}

		if key == "class" {
			el.SetClassName(propText(newVal))
			continue
		}

		if style, ok := newVal.(vdom.Style); ok {
			oldStyle, _ := oldVal.(vdom.Style)
			for prop := range oldStyle {
				if _, kept := style[prop]; !kept {
					el.RemoveStyle(prop)
				}
			}
			for prop, val := range style {
				if oldStyle[prop] != val {
					el.SetStyle(prop, val)
				}
			}
			continue
		}

		switch v := newVal.(type) {
		case vdom.BoolValue:
			if v {
				el.SetAttribute(key, "")
			} else {
				el.RemoveAttribute(key)
			}
		case vdom.Handler:
			// Callable under a non-event key; nothing to set.
		default:
			el.SetAttribute(key, propText(newVal))
		}
	}
}

// patchChildrenByIndex reconciles sibling lists positionally.
func (r *Runtime) patchChildrenByIndex(parent dom.Element, oldChildren, newChildren []*vdom.VNode) {
	common := min(len(oldChildren), len(newChildren))

	for i := 0; i < common; i++ {
		r.Patch(parent, oldChildren[i], newChildren[i], i)
	}

	// Extras in old are removed only after the common-index patches, so
	// positional lookups above saw a stable child list. By then every
	// extra sits at host position len(newChildren): removing at that
	// fixed index walks the extras front to back without re-querying.
	for i := len(newChildren); i < len(oldChildren); i++ {
		r.removeNode(parent, oldChildren[i], len(newChildren))
	}

	for i := len(oldChildren); i < len(newChildren); i++ {
		r.Mount(parent, newChildren[i])
	}
}

// patchChildrenByKey reconciles sibling lists by reconciliation key:
// one pass over the new order, reusing and moving matched hosts, then a
// sweep removing old keys no new child consumed. Single pass, no
// longest-common-subsequence minimization; a pure rotation may move more
// nodes than a minimal diff would.
func (r *Runtime) patchChildrenByKey(parent dom.Element, oldChildren, newChildren []*vdom.VNode) {
	type slot struct {
		index int
		node  *vdom.VNode
	}

	oldKeyed := make(map[string]slot)
	for i, child := range oldChildren {
		if key := childKey(child); key != "" {
			oldKeyed[key] = slot{index: i, node: child}
		}
	}

	used := make(map[string]bool)

	for newIdx, newChild := range newChildren {
		key := childKey(newChild)
		if key == "" {
			// Unkeyed straggler in a keyed list: out of scope for this
			// path per the first-child heuristic.
			continue
		}
		used[key] = true

		if old, ok := oldKeyed[key]; ok {
			r.Patch(parent, old.node, newChild, newIdx)
			if old.index != newIdx {
				r.moveNode(parent, newChild.Host, newIdx)
			}
		} else {
			r.Mount(parent, newChild)
			if newIdx < parent.ChildCount() {
				r.moveNode(parent, newChild.Host, newIdx)
			}
		}
	}

	for key, old := range oldKeyed {
		if !used[key] {
			r.removeNode(parent, old.node, 0)
		}
	}
}

// moveNode moves a host node to the target position among parent's
// children: insert-before the node currently at that position, append
// when the position is at or past the end.
func (r *Runtime) moveNode(parent dom.Element, n dom.Node, index int) {
	kids := parent.ChildNodes()
	if index >= len(kids) {
		parent.AppendChild(n)
		return
	}
	if kids[index] == n {
		return
	}
	parent.InsertBefore(n, kids[index])
}

// removeNode removes old's host node from parent. Text nodes are removed
// by position (they have no host reference); element nodes remove their
// own host and drop listener bookkeeping for the subtree.
func (r *Runtime) removeNode(parent dom.Element, node *vdom.VNode, index int) {
	if node.IsText() {
		kids := parent.ChildNodes()
		if index < len(kids) {
			kids[index].Remove()
		}
		return
	}
	if node.Host != nil {
		r.forgetTree(node)
		node.Host.Remove()
	}
}
