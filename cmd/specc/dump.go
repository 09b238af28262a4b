package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"specc/internal/diag"
	"specc/internal/diagfmt"
	"specc/internal/model"
	"specc/internal/specfile"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] <spec.toml>",
	Short: "Print the semantic model of a spec",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("format", "pretty", "output format (pretty|json|toml)")
}

func runDump(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "pretty", "json", "toml":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or toml)", format)
	}

	s, diags := specfile.Load(args[0])
	if s == nil {
		out, err := readDiagOutput(cmd, diagFormatPretty, true)
		if err != nil {
			return err
		}
		bag := diag.NewBag(out.max)
		bag.AddAll(diags)
		if err := printDiagnostics(cmd.ErrOrStderr(), bag, out); err != nil {
			return err
		}
		return &exitError{code: exitDiagnostics}
	}
	return dumpSpec(cmd.OutOrStdout(), s, format)
}

func dumpSpec(w io.Writer, s model.Spec, format string) error {
	switch format {
	case "json":
		return diagfmt.FormatSpecJSON(w, s)
	case "toml":
		data, err := specfile.Encode(specfile.FromSpec(s))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return diagfmt.FormatSpecPretty(w, s)
	}
}
