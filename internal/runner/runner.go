// Package runner executes one ranking request, with one or both engines,
// against a frozen graph and records the outcome in metrics and logs.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/internal/logger"
	"github.com/katalvlaran/linkrank/internal/metrics"
	"github.com/katalvlaran/linkrank/iterative"
	"github.com/katalvlaran/linkrank/rank"
	"github.com/katalvlaran/linkrank/sampling"
)

// Method selects the engines to run.
type Method string

// Supported methods.
const (
	MethodSample  Method = "sample"
	MethodIterate Method = "iterate"
	MethodBoth    Method = "both"
)

// ErrUnknownMethod indicates a method name other than sample, iterate or both.
var ErrUnknownMethod = errors.New("runner: unknown method")

// ParseMethod resolves a method name (case-insensitive). Empty means both.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "", MethodBoth:
		return MethodBoth, nil
	case MethodSample:
		return MethodSample, nil
	case MethodIterate:
		return MethodIterate, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Params are the engine parameters of one request.
type Params struct {
	Method        Method
	Damping       float64
	Samples       int
	Seed          int64 // 0 = time-seeded
	Tolerance     float64
	MaxIterations int // 0 = unbounded
}

// Report holds what the selected engines produced.
type Report struct {
	Pages     int
	Method    Method
	Sampling  rank.RankMap      // nil unless sampling ran
	Samples   int               // recorded pages of the walk
	Iterative *iterative.Result // nil unless iteration ran
}

// Runner runs requests. The zero value works without metrics and logs to
// slog.Default.
type Runner struct {
	metrics *metrics.Metrics
	log     *slog.Logger
}

// New returns a Runner; m may be nil.
func New(m *metrics.Metrics, log *slog.Logger) *Runner {
	if log == nil {
		return &Runner{metrics: m, log: logger.WithComponent("runner")}
	}

	return &Runner{metrics: m, log: log.With("component", "runner")}
}

// Run executes p against g. With MethodBoth the engines run concurrently on
// the shared read-only graph; the first failure cancels the other.
func (r *Runner) Run(ctx context.Context, g *core.Graph, p Params) (*Report, error) {
	switch p.Method {
	case MethodSample, MethodIterate, MethodBoth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, p.Method)
	}

	log := r.logOrDefault()
	if p.Damping == 1 && p.MaxIterations == 0 && p.Method != MethodSample {
		log.Warn("damping 1 with no iteration cap may not terminate")
	}

	rep := &Report{Method: p.Method, Samples: p.Samples}
	if g != nil {
		rep.Pages = g.Len()
		if r.metrics != nil {
			r.metrics.GraphPages.Observe(float64(g.Len()))
		}
	}

	eg, egctx := errgroup.WithContext(ctx)
	if p.Method == MethodSample || p.Method == MethodBoth {
		eg.Go(func() error {
			ranks, err := r.sample(egctx, g, p)
			rep.Sampling = ranks
			return err
		})
	}
	if p.Method == MethodIterate || p.Method == MethodBoth {
		eg.Go(func() error {
			res, err := r.iterate(egctx, g, p)
			rep.Iterative = res
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return rep, nil
}

func (r *Runner) sample(ctx context.Context, g *core.Graph, p Params) (rank.RankMap, error) {
	opts := []sampling.Option{
		sampling.WithContext(ctx),
		sampling.WithDamping(p.Damping),
		sampling.WithSamples(p.Samples),
	}
	if p.Seed != 0 {
		opts = append(opts, sampling.WithSeed(p.Seed))
	}

	start := time.Now()
	ranks, err := sampling.Rank(g, opts...)
	r.observe(string(MethodSample), start, err)
	if err == nil {
		r.logOrDefault().Debug("sampling done", "samples", p.Samples, "elapsed", time.Since(start))
	}

	return ranks, err
}

func (r *Runner) iterate(ctx context.Context, g *core.Graph, p Params) (*iterative.Result, error) {
	start := time.Now()
	res, err := iterative.Solve(g,
		iterative.WithContext(ctx),
		iterative.WithDamping(p.Damping),
		iterative.WithTolerance(p.Tolerance),
		iterative.WithMaxIterations(p.MaxIterations),
	)
	r.observe(string(MethodIterate), start, err)
	if err == nil {
		if r.metrics != nil {
			r.metrics.Iterations.Observe(float64(res.Iterations))
		}
		r.logOrDefault().Debug("iteration done", "iterations", res.Iterations, "max_delta", res.MaxDelta)
	}

	return res, err
}

func (r *Runner) observe(method string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.Observe(method, Status(err), time.Since(start))
}

func (r *Runner) logOrDefault() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}

	return r.log
}

// Status classifies err for metrics labels and exit codes.
func Status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, rank.ErrNonConvergence):
		return "nonconvergence"
	case errors.Is(err, rank.ErrInvalidGraph),
		errors.Is(err, rank.ErrInvalidParameter),
		errors.Is(err, rank.ErrInvalidPage):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
