package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reactor-ui/reactor/pkg/assets"
	"github.com/reactor-ui/reactor/pkg/hooks"
	"github.com/reactor-ui/reactor/pkg/pages"
	"github.com/reactor-ui/reactor/pkg/server"
	"github.com/reactor-ui/reactor/pkg/todos"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		staticDir string
		manifest  string
		logJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo application server",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(logJSON)
			printBanner()

			resolver := assets.Resolver(assets.NewPassthroughResolver("/static/"))
			if manifest != "" {
				m, err := assets.Load(manifest)
				if err != nil {
					return err
				}
				resolver = assets.NewResolver(m, "/static/")
				info("asset manifest: %s (%d entries)", manifest, m.Len())
			}

			store := todos.NewSeededStore()
			cfg := server.DefaultConfig().
				WithAddress(addr).
				WithStaticDir(staticDir)

			srv := server.New(cfg,
				server.WithPages(pages.ByPath(store)),
				server.WithTodoStore(store),
				server.WithAssets(resolver),
				server.WithPropsFunc(func(r *http.Request) hooks.Props {
					if user := r.URL.Query().Get("user"); user != "" {
						return hooks.Props{"user": user}
					}
					return nil
				}),
			)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			success("listening on %s", addr)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case sig := <-stop:
				info("received %s, shutting down", sig)
				if err := srv.Shutdown(context.Background()); err != nil {
					return err
				}
				success("server stopped")
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVar(&staticDir, "static", "", "directory to serve under /static/")
	cmd.Flags().StringVar(&manifest, "manifest", "", "asset manifest.json for fingerprinted paths")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "log in JSON instead of text")

	return cmd
}

func setupLogging(asJSON bool) {
	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}
