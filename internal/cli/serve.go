package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkrank/internal/metrics"
	"github.com/katalvlaran/linkrank/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ranking engines over HTTP",
		Long: `Serve starts the HTTP API:

  POST /v1/rank   rank the graph document in the request body
  GET  /healthz   liveness
  GET  /metrics   Prometheus metrics

Engine defaults come from the config; requests override them with query
parameters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := server.New(a.cfg, metrics.New(reg), a.log)

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")

	return cmd
}
