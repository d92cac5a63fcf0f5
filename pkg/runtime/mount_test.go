package runtime

import (
	"testing"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/memdom"
	"github.com/reactor-ui/reactor/pkg/vdom"
)

func newTestHost() (*Runtime, *memdom.Element) {
	doc := memdom.NewDocument()
	root := doc.CreateElement("div").(*memdom.Element)
	return New(doc), root
}

func TestMountText(t *testing.T) {
	rt, root := newTestHost()

	rt.Mount(root, vdom.Text("hello"))

	if root.ChildCount() != 1 {
		t.Fatalf("ChildCount = %d, want 1", root.ChildCount())
	}
	text, ok := root.ChildNodes()[0].(dom.Text)
	if !ok {
		t.Fatalf("child is %T, want text node", root.ChildNodes()[0])
	}
	if text.Data() != "hello" {
		t.Errorf("Data = %q, want hello", text.Data())
	}
}

func TestMountElementTree(t *testing.T) {
	rt, root := newTestHost()

	node := vdom.Div(
		vdom.Class("box"),
		vdom.Span("a"),
		"b",
	)
	rt.Mount(root, node)

	if got := root.OuterHTML(); got != `<div><div class="box"><span>a</span>b</div></div>` {
		t.Errorf("OuterHTML = %q", got)
	}
}

func TestMountPopulatesHostReferences(t *testing.T) {
	rt, root := newTestHost()

	inner := vdom.Span("x")
	node := vdom.Div(inner)
	rt.Mount(root, node)

	if node.Host == nil {
		t.Error("outer node has no host reference")
	}
	if inner.Host == nil {
		t.Error("inner node has no host reference")
	}
}

func TestMountAppliesPropCategories(t *testing.T) {
	rt, root := newTestHost()

	node := vdom.El("input",
		vdom.Type("text"),
		vdom.Class("field"),
		vdom.StyleAttr(vdom.Style{"color": "red"}),
		vdom.Checked(true),
		vdom.Rows(3),
	)
	rt.Mount(root, node)

	el := node.Host.(*memdom.Element)
	if v, _ := el.Attr("type"); v != "text" {
		t.Errorf("type = %q, want text", v)
	}
	if el.Class() != "field" {
		t.Errorf("class = %q, want field", el.Class())
	}
	if v, _ := el.StyleOf("color"); v != "red" {
		t.Errorf("style color = %q, want red", v)
	}
	if _, ok := el.Attr("checked"); !ok {
		t.Error("boolean true should be present as attribute")
	}
	if v, _ := el.Attr("rows"); v != "3" {
		t.Errorf("rows = %q, want 3", v)
	}
}

func TestMountBindsEventListeners(t *testing.T) {
	rt, root := newTestHost()

	clicked := 0
	node := vdom.Button(vdom.OnClick(func(dom.Event) { clicked++ }), "go")
	rt.Mount(root, node)

	el := node.Host.(*memdom.Element)
	if el.ListenerCount("click") != 1 {
		t.Fatalf("ListenerCount = %d, want 1", el.ListenerCount("click"))
	}
	el.Dispatch(dom.Event{Type: "click"})
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}
