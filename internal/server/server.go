// Package server exposes the ranking engines over HTTP.
//
//	POST /v1/rank   body: graph document; query: method, damping, samples,
//	                seed, tolerance, max_iterations, format, strict
//	GET  /healthz
//	GET  /metrics
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/internal/config"
	"github.com/katalvlaran/linkrank/internal/logger"
	"github.com/katalvlaran/linkrank/internal/metrics"
	"github.com/katalvlaran/linkrank/internal/runner"
	"github.com/katalvlaran/linkrank/loader"
	"github.com/katalvlaran/linkrank/rank"
)

// Server wraps the echo instance and the shared runner.
type Server struct {
	e       *echo.Echo
	cfg     config.Config
	runner  *runner.Runner
	metrics *metrics.Metrics
	log     *slog.Logger
}

// New builds the router. m may be nil, in which case /metrics is not served.
func New(cfg config.Config, m *metrics.Metrics, log *slog.Logger) *Server {
	compLog := logger.WithComponent("server")
	if log != nil {
		compLog = log.With("component", "server")
	}
	s := &Server{
		e:       echo.New(),
		cfg:     cfg,
		runner:  runner.New(m, log),
		metrics: m,
		log:     compLog,
	}

	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Server.ReadTimeout = cfg.Server.ReadTimeout
	s.e.Server.WriteTimeout = cfg.Server.WriteTimeout

	s.e.Use(middleware.Recover())
	s.e.Use(middleware.RequestID())
	s.e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	if cfg.Server.MaxBodyBytes > 0 {
		s.e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", cfg.Server.MaxBodyBytes)))
	}

	s.e.GET("/healthz", s.health)
	s.e.POST("/v1/rank", s.rank)
	if m != nil {
		s.e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.e }

// Run serves on cfg.Server.Addr until ctx is canceled, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("listening", "addr", s.cfg.Server.Addr)
		if err := s.e.Start(s.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return s.e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type samplingBody struct {
	Samples int          `json:"samples"`
	Ranks   rank.RankMap `json:"ranks"`
}

type iterativeBody struct {
	Ranks      rank.RankMap `json:"ranks"`
	Iterations int          `json:"iterations"`
	MaxDelta   float64      `json:"max_delta"`
	State      string       `json:"state"`
	Guaranteed bool         `json:"guaranteed"`
}

type rankResponse struct {
	Pages     int            `json:"pages"`
	Method    string         `json:"method"`
	Sampling  *samplingBody  `json:"sampling,omitempty"`
	Iterative *iterativeBody `json:"iterative,omitempty"`
}

type errorResponse struct {
	Error      string       `json:"error"`
	Iterations int          `json:"iterations,omitempty"`
	MaxDelta   float64      `json:"max_delta,omitempty"`
	Last       rank.RankMap `json:"last,omitempty"`
}

func (s *Server) rank(c echo.Context) error {
	params, err := s.params(c)
	if err != nil {
		return writeError(c, err)
	}
	format, err := requestFormat(c)
	if err != nil {
		return writeError(c, err)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	var copts []core.CorpusOption
	if strict, _ := strconv.ParseBool(c.QueryParam("strict")); strict {
		copts = append(copts, core.WithStrictLinks())
	}
	g, err := loader.Parse(body, format, copts...)
	if err != nil {
		return writeError(c, err)
	}

	rep, err := s.runner.Run(c.Request().Context(), g, params)
	if err != nil {
		s.log.Warn("rank failed", "method", params.Method, "error", err)
		return writeError(c, err)
	}

	resp := rankResponse{Pages: rep.Pages, Method: string(rep.Method)}
	if rep.Sampling != nil {
		resp.Sampling = &samplingBody{Samples: rep.Samples, Ranks: rep.Sampling}
	}
	if res := rep.Iterative; res != nil {
		resp.Iterative = &iterativeBody{
			Ranks:      res.Ranks,
			Iterations: res.Iterations,
			MaxDelta:   res.MaxDelta,
			State:      res.State.String(),
			Guaranteed: res.Guaranteed,
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// params overlays query parameters on the configured defaults.
func (s *Server) params(c echo.Context) (runner.Params, error) {
	p := runner.Params{
		Damping:       s.cfg.Damping,
		Samples:       s.cfg.Samples,
		Seed:          s.cfg.Seed,
		Tolerance:     s.cfg.Tolerance,
		MaxIterations: s.cfg.MaxIterations,
	}

	m, err := runner.ParseMethod(c.QueryParam("method"))
	if err != nil {
		return p, err
	}
	p.Method = m

	if err := echo.QueryParamsBinder(c).
		Float64("damping", &p.Damping).
		Int("samples", &p.Samples).
		Int64("seed", &p.Seed).
		Float64("tolerance", &p.Tolerance).
		Int("max_iterations", &p.MaxIterations).
		BindError(); err != nil {
		return p, fmt.Errorf("%w: %w", rank.ErrInvalidParameter, err)
	}

	if limit := s.maxSamples(); p.Method != runner.MethodIterate && p.Samples > limit {
		return p, fmt.Errorf("%w: samples %d exceeds the limit of %d", rank.ErrInvalidParameter, p.Samples, limit)
	}

	// An unbounded undamped run could hold the request forever.
	if p.Damping == 1 && p.MaxIterations == 0 && p.Method != runner.MethodSample {
		return p, fmt.Errorf("%w: damping 1 requires max_iterations", rank.ErrInvalidParameter)
	}

	return p, nil
}

// maxSamples is the configured per-request cap, or config.DefaultMaxSamples.
func (s *Server) maxSamples() int {
	if s.cfg.Server.MaxSamples > 0 {
		return s.cfg.Server.MaxSamples
	}

	return config.DefaultMaxSamples
}

var contentTypes = map[string]loader.Format{
	"application/json":   loader.FormatJSON,
	"application/yaml":   loader.FormatYAML,
	"application/x-yaml": loader.FormatYAML,
	"text/yaml":          loader.FormatYAML,
	"application/toml":   loader.FormatTOML,
	"text/plain":         loader.FormatEdgeList,
}

// requestFormat resolves the document format: the format query parameter,
// then the Content-Type, then the edge list.
func requestFormat(c echo.Context) (loader.Format, error) {
	if name := c.QueryParam("format"); name != "" {
		return loader.ParseFormat(name)
	}
	if ct := c.Request().Header.Get(echo.HeaderContentType); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			if f, ok := contentTypes[mt]; ok {
				return f, nil
			}
		}
	}

	return loader.FormatEdgeList, nil
}

// statusCode maps a domain error to an HTTP status.
func statusCode(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, rank.ErrNonConvergence):
		return http.StatusUnprocessableEntity
	case errors.Is(err, rank.ErrInvalidParameter),
		errors.Is(err, rank.ErrInvalidGraph),
		errors.Is(err, rank.ErrInvalidPage),
		errors.Is(err, runner.ErrUnknownMethod),
		errors.Is(err, loader.ErrUnknownFormat),
		errors.Is(err, loader.ErrMalformedLine),
		errors.Is(err, loader.ErrDecode),
		errors.Is(err, core.ErrEmptyGraph),
		errors.Is(err, core.ErrEmptyPageID),
		errors.Is(err, core.ErrSelfLink),
		errors.Is(err, core.ErrUnknownTarget):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	resp := errorResponse{Error: err.Error()}

	var nc *rank.NonConvergenceError
	if errors.As(err, &nc) {
		resp.Iterations = nc.Iterations
		resp.MaxDelta = nc.MaxDelta
		resp.Last = nc.Last
	}

	return c.JSON(statusCode(err), resp)
}
