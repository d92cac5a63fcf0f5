package runtime

import (
	"testing"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/memdom"
	"github.com/reactor-ui/reactor/pkg/vdom"
)

func keyedList(keys ...string) *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(keys))
	for _, k := range keys {
		items = append(items, vdom.Li(vdom.Key(k), k))
	}
	return vdom.Ul(items)
}

func hostsByKey(n *vdom.VNode) map[string]dom.Element {
	out := make(map[string]dom.Element)
	for _, c := range n.Children {
		out[c.Key] = c.Host
	}
	return out
}

func TestKeyedReorderPreservesHosts(t *testing.T) {
	rt, root := newTestHost()

	old := keyedList("a", "b", "c")
	rt.Mount(root, old)
	before := hostsByKey(old)

	next := keyedList("c", "a", "b")
	rt.Patch(root, old, next, 0)

	after := hostsByKey(next)
	for _, k := range []string{"a", "b", "c"} {
		if after[k] != before[k] {
			t.Errorf("key %q got a new host on reorder", k)
		}
	}
	if got := next.Host.(*memdom.Element).OuterHTML(); got != "<ul><li>c</li><li>a</li><li>b</li></ul>" {
		t.Errorf("OuterHTML = %q", got)
	}
}

func TestKeyedRemoveTail(t *testing.T) {
	rt, root := newTestHost()

	old := keyedList("a", "b", "c")
	rt.Mount(root, old)
	keepHost := old.Children[0].Host

	next := keyedList("a")
	rt.Patch(root, old, next, 0)

	if next.Children[0].Host != keepHost {
		t.Error("surviving key lost its host")
	}
	if got := next.Host.(*memdom.Element).OuterHTML(); got != "<ul><li>a</li></ul>" {
		t.Errorf("OuterHTML = %q", got)
	}
}

func TestKeyedRemoveMiddle(t *testing.T) {
	rt, root := newTestHost()

	old := keyedList("a", "b", "c")
	rt.Mount(root, old)
	before := hostsByKey(old)

	next := keyedList("a", "c")
	rt.Patch(root, old, next, 0)

	after := hostsByKey(next)
	if after["a"] != before["a"] || after["c"] != before["c"] {
		t.Error("siblings of a removed key must keep their hosts")
	}
	if got := next.Host.(*memdom.Element).OuterHTML(); got != "<ul><li>a</li><li>c</li></ul>" {
		t.Errorf("OuterHTML = %q", got)
	}
}

func TestKeyedInsertNewKey(t *testing.T) {
	rt, root := newTestHost()

	old := keyedList("a", "c")
	rt.Mount(root, old)
	before := hostsByKey(old)

	next := keyedList("a", "b", "c")
	rt.Patch(root, old, next, 0)

	after := hostsByKey(next)
	if after["a"] != before["a"] || after["c"] != before["c"] {
		t.Error("existing keys must keep their hosts across an insert")
	}
	if got := next.Host.(*memdom.Element).OuterHTML(); got != "<ul><li>a</li><li>b</li><li>c</li></ul>" {
		t.Errorf("OuterHTML = %q", got)
	}
}

func TestKeyedPatchesContentInPlace(t *testing.T) {
	rt, root := newTestHost()

	old := vdom.Ul(
		vdom.Li(vdom.Key("a"), vdom.Class("old"), "a"),
	)
	rt.Mount(root, old)
	host := old.Children[0].Host

	next := vdom.Ul(
		vdom.Li(vdom.Key("a"), vdom.Class("new"), "a"),
	)
	rt.Patch(root, old, next, 0)

	if next.Children[0].Host != host {
		t.Error("same key, same tag: host must be reused")
	}
	if host.(*memdom.Element).Class() != "new" {
		t.Errorf("class = %q, want new", host.(*memdom.Element).Class())
	}
}

func TestUnkeyedFirstChildFallsBackToIndex(t *testing.T) {
	rt, root := newTestHost()

	// First child carries no key, so the positional strategy applies
	// even though later children are keyed.
	old := vdom.Ul(vdom.Li("x"), vdom.Li(vdom.Key("b"), "b"))
	rt.Mount(root, old)

	next := vdom.Ul(vdom.Li("y"), vdom.Li(vdom.Key("b"), "b"))
	rt.Patch(root, old, next, 0)

	if got := next.Host.(*memdom.Element).OuterHTML(); got != "<ul><li>y</li><li>b</li></ul>" {
		t.Errorf("OuterHTML = %q", got)
	}
}
