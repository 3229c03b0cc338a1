package main

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vbridge/pkg/middleware"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the showcase components",
		Long: `Start an HTTP server that renders showcase components on request.

Routes:
  /                          index of components
  /components/{name}         rendered component; query parameters become props
  /components/{name}/class   class description as JSON
  /metrics                   Prometheus metrics (when metrics.enabled is set)

Examples:
  vbridge serve
  vbridge serve --port=8080
  vbridge serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Port = port
			}
			if host != "" {
				a.cfg.Host = host
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vbridge.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vbridge.json)")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              a.cfg.Address(),
		Handler:           a.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("preview server listening", "addr", "http://"+srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(a.log))
	r.Use(middleware.OpenTelemetry())
	if a.registry != nil {
		r.Use(middleware.Prometheus(
			middleware.WithNamespace(a.cfg.Metrics.Namespace),
			middleware.WithRegistry(a.registry),
		))
	}

	r.Get("/", a.handleIndex)
	r.Route("/components/{name}", func(r chi.Router) {
		r.Get("/", a.handleComponent)
		r.Get("/class", a.handleClass)
	})
	if a.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	}

	return r
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>vbridge showcase</title></head>
<body>
<h1>vbridge showcase</h1>
<ul>
{{range .}}<li><a href="/components/{{.Name}}">{{.Name}}</a> &lt;{{.Tag}}&gt; {{.Description}}</li>
{{end}}</ul>
</body>
</html>
`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Name}} | vbridge</title></head>
<body>
{{.Body}}
</body>
</html>
`))

type indexItem struct {
	Name        string
	Tag         string
	Description string
}

func (a *app) handleIndex(w http.ResponseWriter, r *http.Request) {
	var items []indexItem
	for _, name := range a.catalog.Names() {
		entry, _ := a.catalog.Get(name)
		items = append(items, indexItem{
			Name:        name,
			Tag:         entry.Class.Tag(),
			Description: entry.Description,
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, items); err != nil {
		a.log.Error("index", "error", err)
	}
}

// handleComponent renders the named component. Query parameters are parsed
// like --set values; with no parameters the example props are used.
func (a *app) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, err := a.catalog.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	props := vdom.Props{}
	query := r.URL.Query()
	if len(query) == 0 {
		props = mergeProps(entry.Example)
	}
	for key, values := range query {
		props[key] = parseValue(values[len(values)-1])
	}

	body, err := a.renderHTML(r.Context(), name, props, false)
	if err != nil {
		a.log.Error("render failed", "component", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = pageTemplate.Execute(w, struct {
		Name string
		Body template.HTML
	}{name, template.HTML(body)})
	if err != nil {
		a.log.Error("page", "error", err)
	}
}

func (a *app) handleClass(w http.ResponseWriter, r *http.Request) {
	entry, err := a.catalog.Get(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entry.Class.Describe()); err != nil {
		a.log.Error("describe", "error", err)
	}
}
