// Package cli implements the linkrank command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linkrank/internal/config"
	"github.com/katalvlaran/linkrank/internal/logger"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"damping":        "damping",
	"samples":        "samples",
	"seed":           "seed",
	"tolerance":      "tolerance",
	"max-iterations": "max_iterations",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"addr":           "server.addr",
}

// app is the state shared by all subcommands once the config is resolved.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

// NewRootCmd returns a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "linkrank",
		Short:         "Rank pages of a link graph by PageRank",
		Long:          "linkrank estimates PageRank by random-surfer sampling and computes it by fixed-point iteration.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .linkrank.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "log format: text or json")

	root.AddCommand(newRankCmd(a), newGenerateCmd(), newServeCmd(a))

	return root
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	a.v = v
	a.cfg = cfg
	a.log = logger.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.log.Debug("config loaded", "file", v.ConfigFileUsed())

	return nil
}

// bindFlags lets explicitly set flags override the config file and env.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	return nil
}
