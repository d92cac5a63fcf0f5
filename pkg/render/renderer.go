// Package render turns a virtual node tree into escaped HTML text for the
// first server-side paint.
//
// Rendering is a pure function of the tree: no shared state, no failure
// path for text content. The single declared security property is that
// output never contains unescaped user-supplied text or attribute values,
// including nested and adversarial inputs. URIs are escaped but not
// sanitized; a javascript: href passes through escaped.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/reactor-ui/reactor/pkg/vdom"
)

// ToString renders a node tree to HTML text.
func ToString(node *vdom.VNode) string {
	var buf strings.Builder
	// strings.Builder never returns a write error.
	_ = ToWriter(&buf, node)
	return buf.String()
}

// ToWriter streams a node tree to w. The only errors are write errors
// from w itself.
func ToWriter(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	if node.Kind == vdom.KindText {
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	}

	// Opening tag.
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := writeAttributes(w, node.Props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Children in order.
	for _, child := range node.Children {
		if err := ToWriter(w, child); err != nil {
			return err
		}
	}

	// Always a matching closing tag, void tags included. Browsers ignore
	// the stray </input>; kept as a documented limitation.
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// writeAttributes emits attributes in insertion order. Event bindings are
// never emitted, boolean true becomes a bare attribute name, and boolean
// false is omitted entirely.
func writeAttributes(w io.Writer, props *vdom.Props) error {
	for key, value := range props.All() {
		if vdom.IsEventProp(key) {
			continue
		}

		switch v := value.(type) {
		case vdom.StringValue:
			if err := writeAttr(w, key, string(v)); err != nil {
				return err
			}
		case vdom.BoolValue:
			if v {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
		case vdom.IntValue:
			if err := writeAttr(w, key, strconv.Itoa(int(v))); err != nil {
				return err
			}
		case vdom.FloatValue:
			if err := writeAttr(w, key, strconv.FormatFloat(float64(v), 'g', -1, 64)); err != nil {
				return err
			}
		case vdom.Style:
			if err := writeAttr(w, key, styleText(v)); err != nil {
				return err
			}
		case vdom.Handler:
			// Callable under a non-event key; never markup.
		}
	}
	return nil
}

func writeAttr(w io.Writer, key, value string) error {
	_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value))
	return err
}

// styleText flattens a style mapping to CSS declaration text. Keys are
// sorted so output is deterministic.
func styleText(style vdom.Style) string {
	props := make([]string, 0, len(style))
	for prop := range style {
		props = append(props, prop)
	}
	sort.Strings(props)

	var buf strings.Builder
	for i, prop := range props {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(prop)
		buf.WriteString(": ")
		buf.WriteString(style[prop])
	}
	return buf.String()
}
