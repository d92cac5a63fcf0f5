package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/hooks"
	"github.com/reactor-ui/reactor/pkg/todos"
	"github.com/reactor-ui/reactor/pkg/vdom"
)

func counterPage(ctx *hooks.Ctx, _ hooks.Props) *vdom.VNode {
	count, setCount := hooks.UseState(ctx, 0)
	return vdom.Div(vdom.Class("counter"),
		vdom.Button(
			vdom.OnClick(func(dom.Event) { setCount(count + 1) }),
			"+",
		),
		vdom.Span(vdom.Textf("%d", count)),
	)
}

func greetPage(_ *hooks.Ctx, props hooks.Props) *vdom.VNode {
	name, _ := props["name"].(string)
	return vdom.Div(vdom.Textf("hello %s", name))
}

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	cfg := &Config{Registry: prometheus.NewRegistry()}
	opts = append([]Option{WithPage("/", counterPage)}, opts...)
	srv := httptest.NewServer(New(cfg, opts...))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestPageServesRenderedHTML(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	for _, want := range []string{
		`<div class="counter">`,
		"<span>0</span>",
		`id="reactor-bootstrap"`,
		`"live":"/live/"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(html, "on_click") {
		t.Error("event props leaked into markup")
	}
}

func TestPageBootstrapCarriesProps(t *testing.T) {
	srv := newTestServer(t,
		WithPage("/greet", greetPage),
		WithPropsFunc(func(r *http.Request) hooks.Props {
			if name := r.URL.Query().Get("name"); name != "" {
				return hooks.Props{"name": name}
			}
			return nil
		}),
	)

	resp, err := http.Get(srv.URL + "/greet?name=ada")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	if !strings.Contains(html, "hello ada") {
		t.Errorf("page missing greeting: %s", html)
	}
	if !strings.Contains(html, `"props":{"name":"ada"}`) {
		t.Errorf("bootstrap missing props: %s", html)
	}
}

func TestUnknownPage404s(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Serve one page first so request metrics exist.
	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	text := string(body)
	for _, want := range []string{"reactor_http_requests_total", "reactor_live_active_sessions"} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestTodosAPIMounted(t *testing.T) {
	srv := newTestServer(t, WithTodoStore(todos.NewSeededStore()))

	resp, err := http.Get(srv.URL + "/api/todos/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var list []todos.Todo
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("len = %d, want 3", len(list))
	}
}

func TestLivePagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/live", "/"},
		{"/live/", "/"},
		{"/live/todos", "/todos"},
		{"/live/a/b", "/a/b"},
	}
	for _, tt := range tests {
		if got := livePagePath(tt.in); got != tt.want {
			t.Errorf("livePagePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigFillDefaults(t *testing.T) {
	c := &Config{Address: ":9999"}
	c.fillDefaults()

	if c.Address != ":9999" {
		t.Errorf("Address = %q, want :9999", c.Address)
	}
	if c.ReadBufferSize != 4096 || c.SessionConfig == nil || c.CheckOrigin == nil {
		t.Error("defaults not filled")
	}
}

func TestSameOriginCheck(t *testing.T) {
	mk := func(origin, host string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/live", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		r.Host = host
		return r
	}

	if !SameOriginCheck(mk("", "example.com")) {
		t.Error("missing origin should pass")
	}
	if !SameOriginCheck(mk("https://example.com", "example.com")) {
		t.Error("matching origin should pass")
	}
	if SameOriginCheck(mk("https://evil.com", "example.com")) {
		t.Error("cross origin should fail")
	}
}
