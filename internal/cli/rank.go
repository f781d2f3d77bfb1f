package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/internal/runner"
	"github.com/katalvlaran/linkrank/internal/watch"
	"github.com/katalvlaran/linkrank/loader"
	"github.com/katalvlaran/linkrank/rank"
)

const watchDebounce = 200 * time.Millisecond

func newRankCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <file-or-url>",
		Short: "Rank the pages of a link graph",
		Long: `Rank loads a graph document and prints the PageRank of every page.

The document is an edge list ("from to" per line, or a lone page ID) or a
YAML, JSON or TOML file with a "pages" map of page ID to outlinks. The format
is taken from --format, else from the file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRank(cmd, args[0])
		},
	}

	f := cmd.Flags()
	f.String("method", "both", "engine: sample, iterate or both")
	f.Float64("damping", 0.85, "damping factor in [0, 1]")
	f.Int("samples", 10000, "recorded pages of the random walk")
	f.Int64("seed", 0, "sampling seed (0 = time-seeded)")
	f.Float64("tolerance", 0.001, "iteration stops once no rank moves more than this")
	f.Int("max-iterations", 0, "cap on iteration passes (0 = unbounded)")
	f.String("format", "", "document format: edges, yaml, json, toml")
	f.Bool("strict", false, "reject self-links and links to unknown pages")
	f.Bool("watch", false, "re-rank whenever the file changes")

	return cmd
}

func (a *app) runRank(cmd *cobra.Command, resource string) error {
	method, _ := cmd.Flags().GetString("method")
	m, err := runner.ParseMethod(method)
	if err != nil {
		return err
	}
	params := runner.Params{
		Method:        m,
		Damping:       a.cfg.Damping,
		Samples:       a.cfg.Samples,
		Seed:          a.cfg.Seed,
		Tolerance:     a.cfg.Tolerance,
		MaxIterations: a.cfg.MaxIterations,
	}

	var lopts []loader.Option
	if name, _ := cmd.Flags().GetString("format"); name != "" {
		format, err := loader.ParseFormat(name)
		if err != nil {
			return err
		}
		lopts = append(lopts, loader.WithFormat(format))
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		lopts = append(lopts, loader.WithCorpusOptions(core.WithStrictLinks()))
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(nil, a.log)
	out := cmd.OutOrStdout()

	once := func() error {
		g, err := loader.Load(ctx, resource, lopts...)
		if err != nil {
			return err
		}
		rep, err := r.Run(ctx, g, params)
		if err != nil {
			printNonConvergence(out, err)
			return err
		}
		printReport(out, rep)
		return nil
	}

	if watching, _ := cmd.Flags().GetBool("watch"); !watching {
		return once()
	}
	if loader.IsRemote(resource) {
		return fmt.Errorf("--watch needs a local file, got %s", resource)
	}

	return a.watchRank(ctx, resource, once)
}

// watchRank ranks once, then again after every change of file until ctx ends.
// Failures after the first run are logged rather than returned.
func (a *app) watchRank(ctx context.Context, file string, once func() error) error {
	if err := once(); err != nil {
		return err
	}

	w, err := watch.New(file, watchDebounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	a.log.Info("watching for changes", "file", file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if ch.Removed {
				a.log.Warn("file removed, waiting for it to return", "file", ch.File)
				continue
			}
			a.log.Info("file changed, re-ranking", "file", ch.File)
			if err := once(); err != nil {
				a.log.Error("re-rank failed", "error", err)
			}
		}
	}
}

func printReport(w io.Writer, rep *runner.Report) {
	if rep.Sampling != nil {
		fmt.Fprintf(w, "PageRank Results from Sampling (n = %d)\n", rep.Samples)
		printRanks(w, rep.Sampling)
	}
	if rep.Iterative != nil {
		if rep.Sampling != nil {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "PageRank Results from Iteration")
		printRanks(w, rep.Iterative.Ranks)
	}
}

func printNonConvergence(w io.Writer, err error) {
	var nc *rank.NonConvergenceError
	if !errors.As(err, &nc) {
		return
	}
	fmt.Fprintf(w, "PageRank Results from Iteration (not converged after %d passes, max delta %.4g)\n", nc.Iterations, nc.MaxDelta)
	printRanks(w, nc.Last)
}

func printRanks(w io.Writer, ranks rank.RankMap) {
	for _, e := range ranks.Sorted() {
		fmt.Fprintf(w, "  %s: %.4f\n", e.Page, e.Rank)
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
