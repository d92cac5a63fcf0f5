package server

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reactor-ui/reactor/pkg/hooks"
	"github.com/reactor-ui/reactor/pkg/render"
)

// pageShell writes the HTML document around a server-rendered page. The
// client script reads the bootstrap block, opens the live socket, and
// replaces the static markup with the session's mirror once the hello
// frame arrives.
func (s *Server) pageShell(w io.Writer, path, body string, props hooks.Props) error {
	bootstrap := struct {
		Path  string      `json:"path"`
		Live  string      `json:"live"`
		Props hooks.Props `json:"props,omitempty"`
	}{
		Path:  path,
		Live:  "/live" + path,
		Props: props,
	}
	encoded, err := json.Marshal(bootstrap)
	if err != nil {
		return fmt.Errorf("server: encode bootstrap: %w", err)
	}

	_, err = fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Reactor</title>
<link rel="stylesheet" href="%s">
</head>
<body>
<div id="app">%s</div>
<script id="reactor-bootstrap" type="application/json">%s</script>
<script src="%s" defer></script>
</body>
</html>
`, s.assets.Asset("reactor.css"), body, encoded, s.assets.Asset("reactor.js"))
	return err
}

// renderPage renders the page component registered for path with a
// throwaway hook instance. SSR output is a snapshot; state created during
// the render is discarded, the live session rebuilds it on connect.
func (s *Server) renderPage(path string, props hooks.Props) (string, error) {
	component, ok := s.pages[path]
	if !ok {
		return "", ErrUnknownPage
	}

	tree, err := hooks.RenderComponent(component, props, hooks.NewInstance())
	if err != nil {
		return "", err
	}
	return render.ToString(tree), nil
}
