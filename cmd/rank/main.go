package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/worldmbti/insights/config"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	o := options{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the countries with the highest share of an MBTI type",
		Long: `rank reads a country/MBTI table (the configured default dataset unless --file is given)
and prints its top-N countries for one type, or for every type with --all.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if o.file == "" {
				o.file = cfg.DataPath()
			}
			if !cmd.Flags().Changed("n") {
				o.n = cfg.TopN
			}
			return run(cmd.OutOrStdout(), o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default is ./mbti-insights.yaml if present)")
	f.StringVarP(&o.file, "file", "f", "", "CSV/TSV table to rank (default: configured dataset)")
	f.StringVarP(&o.typeName, "type", "t", "", "MBTI type column (default: first type column)")
	f.IntVarP(&o.n, "n", "n", 0, "number of countries (default: configured top_n)")
	f.BoolVar(&o.all, "all", false, "rank every type column")
	f.StringVarP(&o.format, "format", "o", formatText, "output format: text, json or yaml")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}
