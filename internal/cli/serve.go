package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/observability"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// requestIDHeader carries the request id in both directions.
const requestIDHeader = "X-Request-ID"

// shutdownTimeout bounds how long in-flight requests may finish after Ctrl+C.
const shutdownTimeout = 5 * time.Second

// contentTypes maps artifact formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render and hover pipeline over HTTP",
		Long: `Serve the render and hover pipeline over HTTP.

Endpoints:
  POST /api/v1/render?format=svg   body is the record, response is the artifact
  POST /api/v1/hover?path=a/b      body is the record, response is the hover result
  GET  /healthz

Query parameters mirror the render flags: width, height, hue, seed, epsilon,
no_prune, style, legend, trail, interactive, title, scale.`,
		Example: `  sunburst serve --addr :9000
  curl --data-binary @usage.json 'localhost:9000/api/v1/render?format=svg&seed=7'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	s := &server{
		runner:  runner,
		logger:  c.Logger,
		base:    c.Config.Render.Options(),
		maxBody: c.Config.Server.MaxBodyBytes,
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  c.Config.Server.ReadTimeout,
		WriteTimeout: c.Config.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// server holds the shared state of the HTTP API. Interaction state is never
// shared: every hover request lays out its own chart.
type server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	base    pipeline.Options
	maxBody int64
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/hover", s.handleHover)
	})
	return r
}

// requestID tags each request with an id and a logger carrying it.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := withLogger(r.Context(), s.logger.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// observe reports requests and responses to the server hooks.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *server) handleHover(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Path = splitPath(r.URL.Query().Get("path"))

	res, err := s.runner.Hover(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// options reads the record body and overlays query parameters on the
// configured defaults.
func (s *server) options(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	opts := s.base
	opts.Formats = nil
	opts.Source = "request"
	opts.Logger = loggerFromContext(r.Context())

	body := r.Body
	if s.maxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBody)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "record larger than %d bytes", tooLarge.Limit)
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	opts.Input = data
	if ct := r.Header.Get("Content-Type"); ct == "application/yaml" || ct == "application/x-yaml" {
		opts.InputFormat = hierarchy.FormatYAML
	}

	q := queryParams{values: r.URL.Query()}
	q.setFloat("width", &opts.Width)
	q.setFloat("height", &opts.Height)
	q.setString("hue", &opts.Hue)
	q.setUint("seed", &opts.Seed)
	q.setFloat("epsilon", &opts.Epsilon)
	q.setBool("no_prune", &opts.NoPrune)
	q.setString("style", &opts.Style)
	q.setBool("legend", &opts.Legend)
	q.setBool("trail", &opts.Trail)
	q.setBool("interactive", &opts.Interactive)
	q.setString("title", &opts.Title)
	q.setFloat("scale", &opts.Scale)
	q.setBool("no_cache", &opts.NoCache)
	return opts, q.err
}

// queryParams parses optional query parameters, keeping the first error.
type queryParams struct {
	values url.Values
	err    error
}

func (q *queryParams) get(name string) (string, bool) {
	v, ok := q.values[name]
	if !ok || len(v) == 0 || q.err != nil {
		return "", false
	}
	return v[0], true
}

func (q *queryParams) fail(name, raw string, err error) {
	q.err = errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter %s=%q", name, raw)
}

func (q *queryParams) setString(name string, dst *string) {
	if v, ok := q.get(name); ok {
		*dst = v
	}
}

func (q *queryParams) setFloat(name string, dst *float64) {
	v, ok := q.get(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		q.fail(name, v, err)
		return
	}
	*dst = f
}

func (q *queryParams) setUint(name string, dst *uint64) {
	v, ok := q.get(name)
	if !ok {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		q.fail(name, v, err)
		return
	}
	*dst = n
}

func (q *queryParams) setBool(name string, dst *bool) {
	v, ok := q.get(name)
	if !ok {
		return
	}
	if v == "" {
		*dst = true
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(name, v, err)
		return
	}
	*dst = b
}

// errorBody is the JSON shape of every API error.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	logger := loggerFromContext(r.Context())
	if status >= 500 {
		logger.Error("request failed", "error", err)
	} else {
		logger.Debug("request rejected", "status", status, "error", err)
	}
	writeJSON(w, status, errorBody{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
