package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"specc/internal/diag"
	"specc/internal/diagfmt"
	"specc/internal/version"
)

type diagFormat string

const (
	diagFormatPretty diagFormat = "pretty"
	diagFormatShort  diagFormat = "short"
	diagFormatJSON   diagFormat = "json"
	diagFormatSarif  diagFormat = "sarif"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch f := diagFormat(strings.ToLower(strings.TrimSpace(value))); f {
	case diagFormatPretty, diagFormatShort, diagFormatJSON, diagFormatSarif:
		return f, nil
	case "":
		return diagFormatPretty, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected pretty|short|json|sarif)", value)
	}
}

// diagOutput bundles what printDiagnostics needs besides the bag.
type diagOutput struct {
	format    diagFormat
	color     bool
	withNotes bool
	baseDir   string
	max       int
	args      []string
}

// readDiagOutput collects the global flags that shape diagnostic output.
func readDiagOutput(cmd *cobra.Command, format diagFormat, withNotes bool) (diagOutput, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return diagOutput{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return diagOutput{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	useColor, err := colorEnabled(colorFlag, os.Stdout)
	if err != nil {
		return diagOutput{}, err
	}
	wd, _ := os.Getwd()
	return diagOutput{
		format:    format,
		color:     useColor,
		withNotes: withNotes,
		baseDir:   wd,
		max:       maxDiagnostics,
		args:      os.Args[1:],
	}, nil
}

// printDiagnostics writes bag in the requested format. Pretty and short
// output print nothing for an empty bag; json and sarif always emit a
// document.
func printDiagnostics(w io.Writer, bag *diag.Bag, out diagOutput) error {
	bag.Sort()
	switch out.format {
	case diagFormatJSON:
		return diagfmt.JSON(w, bag, diagfmt.JSONOpts{
			PathMode:     diagfmt.PathModeRelative,
			BaseDir:      out.baseDir,
			Max:          out.max,
			IncludeNotes: out.withNotes,
			IncludeFixes: true,
		})
	case diagFormatSarif:
		return diagfmt.Sarif(w, bag, diagfmt.SarifRunMeta{
			ToolName:       "specc",
			ToolVersion:    version.Version,
			InvocationArgs: out.args,
		})
	case diagFormatShort:
		_, err := io.WriteString(w, diag.FormatShortDiagnostics(limit(bag.Items(), out.max), out.withNotes))
		return err
	default:
		diagfmt.PrettyList(w, limit(bag.Items(), out.max), diagfmt.PrettyOpts{
			Color:     out.color,
			PathMode:  diagfmt.PathModeRelative,
			BaseDir:   out.baseDir,
			ShowNotes: true,
			ShowFixes: true,
		})
		return nil
	}
}

func limit(items []diag.Diagnostic, n int) []diag.Diagnostic {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// filterWarnings drops warnings or promotes them to errors. The bag is
// returned unchanged when neither is asked for.
func filterWarnings(bag *diag.Bag, drop, promote bool) *diag.Bag {
	if !drop && !promote {
		return bag
	}
	out := diag.NewBag(int(bag.Cap()))
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning {
			if drop {
				continue
			}
			d.Severity = diag.SevError
		}
		out.Add(d)
	}
	return out
}
