// Package pages contains the demo application's page components. Each
// page is an ordinary component function, rendered to a string for the
// initial response and kept live over the session socket afterwards.
package pages

import (
	"strconv"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/hooks"
	"github.com/reactor-ui/reactor/pkg/todos"
	"github.com/reactor-ui/reactor/pkg/vdom"
)

// navBar is the shared page header.
func navBar(active string) *vdom.VNode {
	link := func(href, label string) *vdom.VNode {
		var attrs []vdom.Attr
		if label == active {
			attrs = append(attrs, vdom.Class("active"))
		}
		return vdom.Li(attrs, vdom.A(vdom.Href(href), label))
	}
	return vdom.Nav(vdom.Class("nav"),
		vdom.Ul(
			link("/", "Home"),
			link("/todos", "Todos"),
			link("/dashboard", "Dashboard"),
			link("/about", "About"),
		),
	)
}

// Index is the landing page: a counter driven by a single state cell.
func Index(ctx *hooks.Ctx, _ hooks.Props) *vdom.VNode {
	count, setCount := hooks.UseState(ctx, 0)

	return vdom.Div(vdom.Class("page"),
		navBar("Home"),
		vdom.H1("Reactor"),
		vdom.P("A server-driven UI runtime for Go."),
		vdom.Div(vdom.Class("counter"),
			vdom.Button(
				vdom.OnClick(func(dom.Event) { setCount(count - 1) }),
				"-",
			),
			vdom.Span(vdom.Class("count"), vdom.Textf("%d", count)),
			vdom.Button(
				vdom.OnClick(func(dom.Event) { setCount(count + 1) }),
				"+",
			),
		),
	)
}

// About is a static page; it uses no state at all.
func About(_ *hooks.Ctx, _ hooks.Props) *vdom.VNode {
	return vdom.Div(vdom.Class("page"),
		navBar("About"),
		vdom.H1("About"),
		vdom.P(
			"Reactor renders components on the server and streams DOM updates ",
			"to a thin browser client over a WebSocket.",
		),
		vdom.Ul(
			vdom.Li("Components are plain Go functions"),
			vdom.Li("State lives in positional hook slots"),
			vdom.Li("Updates ship as minimal mutation ops"),
		),
	)
}

// Dashboard greets the user named in the bootstrap props. Props are
// captured at mount and reused verbatim on every re-render.
func Dashboard(ctx *hooks.Ctx, props hooks.Props) *vdom.VNode {
	user, _ := props["user"].(string)
	if user == "" {
		user = "guest"
	}
	visits, setVisits := hooks.UseState(ctx, 0)

	return vdom.Div(vdom.Class("page"),
		navBar("Dashboard"),
		vdom.H1(vdom.Textf("Welcome, %s", user)),
		vdom.P(vdom.Textf("You pressed the button %d times this session.", visits)),
		vdom.Button(
			vdom.OnClick(func(dom.Event) { setVisits(visits + 1) }),
			"Press me",
		),
	)
}

// Todos builds the todo page component over the given store. The list is
// keyed by todo ID so completed and reordered entries keep their DOM
// nodes across renders.
func Todos(store *todos.Store) hooks.Component {
	return func(ctx *hooks.Ctx, _ hooks.Props) *vdom.VNode {
		draft, setDraft := hooks.UseState(ctx, "")
		// The store is shared and versionless; bump a local revision to
		// re-render after every mutation.
		rev, setRev := hooks.UseState(ctx, 0)

		add := func(dom.Event) {
			if _, err := store.Add(draft); err != nil {
				return
			}
			setDraft("")
		}

		items := store.List()
		return vdom.Div(vdom.Class("page"),
			navBar("Todos"),
			vdom.H1(vdom.Textf("Todos (%d)", len(items))),
			vdom.Div(vdom.Class("todo-add"),
				vdom.Input(
					vdom.Type("text"),
					vdom.Placeholder("What needs doing?"),
					vdom.Value(draft),
					vdom.OnInput(func(ev dom.Event) { setDraft(ev.Value) }),
				),
				vdom.Button(vdom.OnClick(add), "Add"),
			),
			vdom.Ul(vdom.Class("todo-list"),
				vdom.Map(items, func(t todos.Todo) *vdom.VNode {
					return todoItem(t, func() {
						store.Toggle(t.ID)
						setRev(rev + 1)
					}, func() {
						store.Delete(t.ID)
						setRev(rev + 1)
					})
				}),
			),
		)
	}
}

func todoItem(t todos.Todo, toggle, remove func()) *vdom.VNode {
	attrs := []vdom.Attr{vdom.Key(strconv.Itoa(t.ID))}
	if t.Done {
		attrs = append(attrs, vdom.Class("done"))
	}
	return vdom.Li(attrs,
		vdom.Label(
			vdom.Input(
				vdom.Type("checkbox"),
				vdom.Checked(t.Done),
				vdom.OnChange(func(dom.Event) { toggle() }),
			),
			vdom.Span(t.Title),
		),
		vdom.Button(
			vdom.Class("delete"),
			vdom.OnClick(func(dom.Event) { remove() }),
			"×",
		),
	)
}

// ByPath maps URL paths to page components for the demo app.
func ByPath(store *todos.Store) map[string]hooks.Component {
	return map[string]hooks.Component{
		"/":          Index,
		"/about":     About,
		"/dashboard": Dashboard,
		"/todos":     Todos(store),
	}
}
