package vdom

// Attr is a single attribute to apply to an element.
type Attr struct {
	Key   string
	Value PropValue
}

// IsZero returns true for the empty attribute, which element constructors
// skip. This lets helpers return a zero Attr to mean "no attribute".
func (a Attr) IsZero() bool {
	return a.Key == ""
}

// Prop creates an attribute with an explicit value variant.
func Prop(key string, v PropValue) Attr {
	return Attr{Key: key, Value: v}
}

// Custom creates a plain string attribute with an arbitrary key.
func Custom(key, value string) Attr {
	return Attr{Key: key, Value: StringValue(value)}
}

// Key sets the reconciliation key for keyed sibling lists. It is stored on
// the node itself, never rendered as markup.
func Key(key string) Attr {
	return Attr{Key: keyAttr, Value: StringValue(key)}
}

// keyAttr is the pseudo-attribute name routed to VNode.Key.
const keyAttr = "key"

// Class sets the class attribute.
func Class(class string) Attr {
	return Attr{Key: "class", Value: StringValue(class)}
}

// ID sets the id attribute.
func ID(id string) Attr {
	return Attr{Key: "id", Value: StringValue(id)}
}

// StyleAttr sets the inline style mapping.
func StyleAttr(s Style) Attr {
	return Attr{Key: "style", Value: s}
}

// Href sets the href attribute.
func Href(url string) Attr {
	return Attr{Key: "href", Value: StringValue(url)}
}

// Src sets the src attribute.
func Src(url string) Attr {
	return Attr{Key: "src", Value: StringValue(url)}
}

// Alt sets the alt attribute.
func Alt(text string) Attr {
	return Attr{Key: "alt", Value: StringValue(text)}
}

// Title sets the title attribute.
func Title(text string) Attr {
	return Attr{Key: "title", Value: StringValue(text)}
}

// Type sets the type attribute (input, button, etc).
func Type(t string) Attr {
	return Attr{Key: "type", Value: StringValue(t)}
}

// Name sets the name attribute.
func Name(name string) Attr {
	return Attr{Key: "name", Value: StringValue(name)}
}

// Value sets the value attribute.
func Value(value string) Attr {
	return Attr{Key: "value", Value: StringValue(value)}
}

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr {
	return Attr{Key: "placeholder", Value: StringValue(text)}
}

// For sets the for attribute on labels.
func For(id string) Attr {
	return Attr{Key: "for", Value: StringValue(id)}
}

// Rel sets the rel attribute.
func Rel(rel string) Attr {
	return Attr{Key: "rel", Value: StringValue(rel)}
}

// Data sets a data-* attribute.
func Data(name, value string) Attr {
	return Attr{Key: "data-" + name, Value: StringValue(value)}
}

// Checked sets the checked flag attribute.
func Checked(checked bool) Attr {
	return Attr{Key: "checked", Value: BoolValue(checked)}
}

// Disabled sets the disabled flag attribute.
func Disabled(disabled bool) Attr {
	return Attr{Key: "disabled", Value: BoolValue(disabled)}
}

// Selected sets the selected flag attribute.
func Selected(selected bool) Attr {
	return Attr{Key: "selected", Value: BoolValue(selected)}
}

// Required sets the required flag attribute.
func Required(required bool) Attr {
	return Attr{Key: "required", Value: BoolValue(required)}
}

// ReadOnly sets the readonly flag attribute.
func ReadOnly(readonly bool) Attr {
	return Attr{Key: "readonly", Value: BoolValue(readonly)}
}

// Autofocus sets the autofocus flag attribute.
func Autofocus(autofocus bool) Attr {
	return Attr{Key: "autofocus", Value: BoolValue(autofocus)}
}

// Rows sets the rows attribute on textareas.
func Rows(n int) Attr {
	return Attr{Key: "rows", Value: IntValue(n)}
}

// Cols sets the cols attribute on textareas.
func Cols(n int) Attr {
	return Attr{Key: "cols", Value: IntValue(n)}
}

// Width sets the width attribute.
func Width(n int) Attr {
	return Attr{Key: "width", Value: IntValue(n)}
}

// Height sets the height attribute.
func Height(n int) Attr {
	return Attr{Key: "height", Value: IntValue(n)}
}

// TabIndex sets the tabindex attribute.
func TabIndex(n int) Attr {
	return Attr{Key: "tabindex", Value: IntValue(n)}
}
