package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkrank/builder"
	"github.com/katalvlaran/linkrank/loader"
)

var idSchemes = map[string]builder.IDFn{
	"default": builder.DefaultIDFn,
	"symbol":  builder.SymbolIDFn,
	"excel":   builder.ExcelColumnIDFn,
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <topology>",
		Short: "Write a synthetic link graph",
		Long: fmt.Sprintf(`Generate builds a graph of a named topology and writes it as a document
that "linkrank rank" can read.

Topologies: %s.`, strings.Join(builder.TopologyNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	f := cmd.Flags()
	f.Int("n", 10, "number of pages")
	f.Float64("p", 0.2, "link probability for the random topology")
	f.Int64("seed", 1, "seed for the random topology")
	f.String("ids", "default", "page ID scheme: default, symbol, excel")
	f.String("format", string(loader.FormatEdgeList), "output format: edges, yaml, json, toml")
	f.StringP("out", "o", "", "output file (default stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("n")
	p, _ := cmd.Flags().GetFloat64("p")
	seed, _ := cmd.Flags().GetInt64("seed")
	ids, _ := cmd.Flags().GetString("ids")
	formatName, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	idFn, ok := idSchemes[strings.ToLower(ids)]
	if !ok {
		return fmt.Errorf("unknown ID scheme %q (want default, symbol or excel)", ids)
	}
	format, err := loader.ParseFormat(formatName)
	if err != nil {
		return err
	}
	cons, err := builder.Topology(args[0], n, p)
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(seed)},
		cons,
	)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	return loader.Encode(w, g, format)
}
