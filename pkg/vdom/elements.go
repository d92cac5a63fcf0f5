package vdom

// voidElements are tags that take no children. Their constructors accept
// attributes only; the string renderer still emits a matching closing tag
// for them (a documented limitation, kept from the source behavior).
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node from a tag and a mixed argument list.
// Arguments can be: nil (ignored, allows conditionals), Attr, []Attr,
// *VNode, []*VNode, or string (shorthand for a text child). No validation
// of tag or attribute names is performed; escaping is the renderer's job.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: &Props{},
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			applyAttr(node, v)

		case []Attr:
			for _, a := range v {
				applyAttr(node, a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// applyAttr stores an attribute on the node, routing the key
// pseudo-attribute to the Key field.
func applyAttr(node *VNode, a Attr) {
	if a.IsZero() {
		return
	}
	if a.Key == keyAttr {
		if s, ok := a.Value.(StringValue); ok {
			node.Key = string(s)
		}
		return
	}
	node.Props.Set(a.Key, a.Value)
}

// void creates a childless element from attributes only.
func void(tag string, attrs []Attr) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: &Props{},
	}
	for _, a := range attrs {
		applyAttr(node, a)
	}
	return node
}

// Div creates a <div> element.
func Div(args ...any) *VNode { return El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return El("span", args...) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return El("button", args...) }

// P creates a <p> element.
func P(args ...any) *VNode { return El("p", args...) }

// A creates an <a> element.
func A(args ...any) *VNode { return El("a", args...) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return El("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *VNode { return El("h2", args...) }

// H3 creates an <h3> element.
func H3(args ...any) *VNode { return El("h3", args...) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return El("ul", args...) }

// Ol creates an <ol> element.
func Ol(args ...any) *VNode { return El("ol", args...) }

// Li creates a <li> element.
func Li(args ...any) *VNode { return El("li", args...) }

// Form creates a <form> element.
func Form(args ...any) *VNode { return El("form", args...) }

// Label creates a <label> element.
func Label(args ...any) *VNode { return El("label", args...) }

// Textarea creates a <textarea> element.
func Textarea(args ...any) *VNode { return El("textarea", args...) }

// Select creates a <select> element.
func Select(args ...any) *VNode { return El("select", args...) }

// Option creates an <option> element.
func Option(args ...any) *VNode { return El("option", args...) }

// Table creates a <table> element.
func Table(args ...any) *VNode { return El("table", args...) }

// Tr creates a <tr> element.
func Tr(args ...any) *VNode { return El("tr", args...) }

// Td creates a <td> element.
func Td(args ...any) *VNode { return El("td", args...) }

// Th creates a <th> element.
func Th(args ...any) *VNode { return El("th", args...) }

// Nav creates a <nav> element.
func Nav(args ...any) *VNode { return El("nav", args...) }

// Header creates a <header> element.
func Header(args ...any) *VNode { return El("header", args...) }

// Footer creates a <footer> element.
func Footer(args ...any) *VNode { return El("footer", args...) }

// Section creates a <section> element.
func Section(args ...any) *VNode { return El("section", args...) }

// Article creates an <article> element.
func Article(args ...any) *VNode { return El("article", args...) }

// Main creates a <main> element.
func Main(args ...any) *VNode { return El("main", args...) }

// Aside creates an <aside> element.
func Aside(args ...any) *VNode { return El("aside", args...) }

// Strong creates a <strong> element.
func Strong(args ...any) *VNode { return El("strong", args...) }

// Em creates an <em> element.
func Em(args ...any) *VNode { return El("em", args...) }

// Small creates a <small> element.
func Small(args ...any) *VNode { return El("small", args...) }

// Pre creates a <pre> element.
func Pre(args ...any) *VNode { return El("pre", args...) }

// Code creates a <code> element.
func Code(args ...any) *VNode { return El("code", args...) }

// Input creates a childless <input> element.
func Input(attrs ...Attr) *VNode { return void("input", attrs) }

// Img creates a childless <img> element.
func Img(attrs ...Attr) *VNode { return void("img", attrs) }

// Br creates a childless <br> element.
func Br(attrs ...Attr) *VNode { return void("br", attrs) }

// Hr creates a childless <hr> element.
func Hr(attrs ...Attr) *VNode { return void("hr", attrs) }
