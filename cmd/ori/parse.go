package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ori/internal/diagfmt"
	"ori/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.ori|directory>",
	Short: "Parse an Ori source file or directory and summarize its declarations",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	prettyOpts := diagfmt.PrettyOpts{Color: colorEnabled(cmd), Context: 2}

	render := func(w *os.File, items []diagfmt.ItemSummary) error {
		switch format {
		case "pretty":
			return diagfmt.FormatASTPretty(w, items)
		case "tree":
			return diagfmt.FormatASTTree(w, items)
		case "json":
			return diagfmt.FormatASTJSON(w, items)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
		}
		items := diagfmt.SummarizeModule(result.Module, result.Arena, result.Interner)
		return render(os.Stdout, items)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	fs, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
	}
	for idx, r := range results {
		if !quiet {
			file := fs.Get(r.FileID)
			if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", file.FormatPath("auto", fs.BaseDir())); err != nil {
				return err
			}
		}
		items := diagfmt.SummarizeModule(r.Module, r.Arena, r.Interner)
		if err := render(os.Stdout, items); err != nil {
			return err
		}
		if !quiet && idx < len(results)-1 {
			fmt.Fprintln(os.Stdout)
		}
	}
	return nil
}
