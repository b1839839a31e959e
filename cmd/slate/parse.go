package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slate/internal/diagfmt"
	"slate/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sl",
	Short: "Parse a slate source file and dump the syntax tree",
	Long: `Parse builds the syntax tree for a slate source file. Diagnostics go to
stderr, the tree goes to stdout. Parsing always produces a tree: malformed
constructs are replaced with error nodes.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("show-source", false, "include source lines in diagnostics")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showSource, _ := cmd.Flags().GetBool("show-source")

	result, err := driver.Parse(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: showSource,
		})
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatASTPretty(os.Stdout, result.Exprs, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatASTJSON(os.Stdout, result.Exprs); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if n := result.Bag.ErrorCount(); n > 0 {
		return fmt.Errorf("found %d error(s)", n)
	}
	return nil
}
