package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"specc/internal/driver"
	"specc/internal/observ"
	"specc/internal/trace"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] [spec.toml|directory...]",
	Short: "Validate component specs without generating code",
	Long:  `Load and validate specs, reporting every diagnostic. Nothing is written.`,
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in short and json output")
	diagCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	diagCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

// runDiagnose validates the given specs and prints their diagnostics. It
// exits with status 1 when any diagnostic is an error.
func runDiagnose(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readDiagFormat(formatStr)
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	in, err := resolveInputs(args)
	if err != nil {
		return err
	}
	out, err := readDiagOutput(cmd, format, withNotes)
	if err != nil {
		return err
	}

	opts := in.opts
	opts.ValidateOnly = true
	opts.Jobs = jobs
	opts.MaxDiagnostics = out.max
	opts.Timer = observ.NewTimer()

	ctx, span := trace.Start(cmd.Context(), trace.ScopeDriver, "diag")
	defer span.End("")

	res, err := runCompile(ctx, "specc diag", in.files, opts, uiModeOff)
	if err != nil {
		return err
	}
	bag := filterWarnings(res.Bag, noWarnings, warningsAsErrors)

	if showTimings && (format == diagFormatJSON || format == diagFormatSarif) {
		driver.AppendTimingDiagnostic(bag, "diag", opts.Timer.Report())
	}
	if err := printDiagnostics(cmd.OutOrStdout(), bag, out); err != nil {
		return err
	}
	if showTimings && format != diagFormatJSON && format != diagFormatSarif {
		printTimings(cmd.ErrOrStderr(), opts.Timer, nil)
	}
	if bag.HasErrors() {
		return &exitError{code: exitDiagnostics}
	}
	return nil
}
