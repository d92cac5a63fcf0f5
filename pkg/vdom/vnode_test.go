package vdom

import (
	"testing"

	"github.com/reactor-ui/reactor/pkg/dom"
)

func TestElBasics(t *testing.T) {
	node := El("div", Class("container"), "Hello")

	if node.Kind != KindElement {
		t.Errorf("Kind = %v, want Element", node.Kind)
	}
	if node.Tag != "div" {
		t.Errorf("Tag = %q, want div", node.Tag)
	}
	if got, ok := node.Props.Get("class"); !ok || got != StringValue("container") {
		t.Errorf("class = %v (ok=%v), want container", got, ok)
	}
	if len(node.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(node.Children))
	}
	if !node.Children[0].IsText() || node.Children[0].Text != "Hello" {
		t.Errorf("child = %+v, want text Hello", node.Children[0])
	}
}

func TestElNilArgsIgnored(t *testing.T) {
	node := El("div", nil, If(false, Span()), "x")
	if len(node.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1", len(node.Children))
	}
}

func TestElChildSlices(t *testing.T) {
	items := []*VNode{Li("a"), nil, Li("b")}
	node := Ul(items)
	if len(node.Children) != 2 {
		t.Errorf("len(Children) = %d, want 2 (nil skipped)", len(node.Children))
	}
}

func TestKeyRoutedToField(t *testing.T) {
	node := Li(Key("a"), "item")

	if node.Key != "a" {
		t.Errorf("Key = %q, want a", node.Key)
	}
	if node.Props.Has("key") {
		t.Error("key must not be stored as a renderable attribute")
	}
}

func TestPropsInsertionOrder(t *testing.T) {
	p := NewProps(Class("x"), ID("y"), Href("/z"))

	want := []string{"class", "id", "href"}
	got := p.Keys()
	if len(got) != len(want) {
		t.Fatalf("len(Keys) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPropsSetKeepsPosition(t *testing.T) {
	p := NewProps(Class("x"), ID("y"))
	p.Set("class", StringValue("z"))

	if p.Keys()[0] != "class" {
		t.Errorf("Keys[0] = %q, want class (position kept)", p.Keys()[0])
	}
	if v, _ := p.Get("class"); v != StringValue("z") {
		t.Errorf("class = %v, want z", v)
	}
}

func TestNilPropsReads(t *testing.T) {
	var p *Props
	if p.Len() != 0 {
		t.Errorf("nil Props Len = %d, want 0", p.Len())
	}
	if p.Has("class") {
		t.Error("nil Props must not report attributes")
	}
	for range p.All() {
		t.Fatal("nil Props must not yield attributes")
	}
}

func TestEventPropConvention(t *testing.T) {
	tests := []struct {
		key   string
		event bool
		name  string
	}{
		{"on_click", true, "click"},
		{"on_input", true, "input"},
		{"on_", false, ""},
		{"onclick", false, ""},
		{"class", false, ""},
	}

	for _, tt := range tests {
		if got := IsEventProp(tt.key); got != tt.event {
			t.Errorf("IsEventProp(%q) = %v, want %v", tt.key, got, tt.event)
		}
		if tt.event {
			if got := EventName(tt.key); got != tt.name {
				t.Errorf("EventName(%q) = %q, want %q", tt.key, got, tt.name)
			}
		}
	}
}

func TestOnClickBinding(t *testing.T) {
	attr := OnClick(func(dom.Event) {})
	if attr.Key != "on_click" {
		t.Errorf("Key = %q, want on_click", attr.Key)
	}
	if _, ok := attr.Value.(Handler); !ok {
		t.Errorf("Value is %T, want Handler", attr.Value)
	}
}

func TestPropEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b PropValue
		want bool
	}{
		{"equal strings", StringValue("x"), StringValue("x"), true},
		{"different strings", StringValue("x"), StringValue("y"), false},
		{"string vs int", StringValue("1"), IntValue(1), false},
		{"equal ints", IntValue(3), IntValue(3), true},
		{"equal bools", BoolValue(true), BoolValue(true), true},
		{"equal styles", Style{"color": "red"}, Style{"color": "red"}, true},
		{"different styles", Style{"color": "red"}, Style{"color": "blue"}, false},
		{"handlers never equal", Handler(func(dom.Event) {}), Handler(func(dom.Event) {}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("PropEqual = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVoidConstructorsTakeNoChildren(t *testing.T) {
	node := Input(Type("text"), Placeholder("todo"))
	if len(node.Children) != 0 {
		t.Errorf("len(Children) = %d, want 0", len(node.Children))
	}
	if !IsVoidElement("input") || IsVoidElement("div") {
		t.Error("void element table wrong for input/div")
	}
}

func TestMapSkipsNil(t *testing.T) {
	kids := Map([]int{1, 2, 3}, func(n int) *VNode {
		if n == 2 {
			return nil
		}
		return Li(Textf("%d", n))
	})
	if len(kids) != 2 {
		t.Errorf("len = %d, want 2", len(kids))
	}
}
