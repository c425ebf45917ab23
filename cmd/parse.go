package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"regexeng"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <pattern>",
	Short: "Break a pattern into its components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comps := regexeng.Tokenize(args[0])
		logger.Debug("tokenized pattern",
			zap.String("pattern", args[0]),
			zap.Int("components", len(comps)))
		return printComponents(cmd.OutOrStdout(), comps, parseFormat)
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "table", "Output format: table, json or yaml")
}

func printComponents(w io.Writer, comps []regexeng.PatternComponent, format string) error {
	switch format {
	case "table":
		return writeTable(w, comps)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(comps)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(comps)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeTable(w io.Writer, comps []regexeng.PatternComponent) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Position\tType\tValue\tDescription")
	for _, c := range comps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.Offset, c.Type, c.Value, c.Description)
	}
	return tw.Flush()
}
