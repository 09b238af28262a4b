package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"specc/internal/buildpipeline"
	"specc/internal/driver"
	"specc/internal/observ"
	"specc/internal/trace"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] [spec.toml|directory...]",
	Short: "Generate Go implementations from component specs",
	Long: `Validate component specs and write one generated Go file per spec.
Without arguments the spec directories listed in specc.toml are used.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().String("out", "", "output directory (default: next to each spec, or [gen].out)")
	genCmd.Flags().String("package", "", "package name of generated files (default: [package].name)")
	genCmd.Flags().String("runtime", "", "import path of the runtime package")
	genCmd.Flags().Bool("check", false, "report out-of-date files instead of writing them")
	genCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	genCmd.Flags().Bool("disk-cache", false, "reuse generated code from the persistent cache")
	genCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	genCmd.Flags().String("format", "pretty", "diagnostic format (pretty|short|json|sarif)")
}

// genFlags holds the parsed flags of the gen command.
type genFlags struct {
	out       string
	pkg       string
	runtime   string
	check     bool
	jobs      int
	diskCache bool
	ui        uiMode
	format    diagFormat
	quiet     bool
	timings   bool
}

func readGenFlags(cmd *cobra.Command) (genFlags, error) {
	var (
		f   genFlags
		err error
	)
	if f.out, err = cmd.Flags().GetString("out"); err != nil {
		return f, fmt.Errorf("failed to get out flag: %w", err)
	}
	if f.pkg, err = cmd.Flags().GetString("package"); err != nil {
		return f, fmt.Errorf("failed to get package flag: %w", err)
	}
	if f.runtime, err = cmd.Flags().GetString("runtime"); err != nil {
		return f, fmt.Errorf("failed to get runtime flag: %w", err)
	}
	if f.check, err = cmd.Flags().GetBool("check"); err != nil {
		return f, fmt.Errorf("failed to get check flag: %w", err)
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.diskCache, err = cmd.Flags().GetBool("disk-cache"); err != nil {
		return f, fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiStr); err != nil {
		return f, err
	}
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.format, err = readDiagFormat(formatStr); err != nil {
		return f, err
	}
	if f.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return f, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if f.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	// машинный вывод не смешиваем с прогрессом
	if f.format == diagFormatJSON || f.format == diagFormatSarif {
		f.ui = uiModeOff
	}
	return f, nil
}

// apply overlays the command-line flags on opts.
func (f genFlags) apply(opts driver.Options) (driver.Options, error) {
	if f.out != "" {
		abs, err := filepath.Abs(f.out)
		if err != nil {
			return opts, err
		}
		opts.OutDir = abs
	}
	if f.pkg != "" {
		opts.Package = f.pkg
	}
	if f.runtime != "" {
		opts.RuntimeImport = f.runtime
	}
	if opts.Package == "" {
		return opts, fmt.Errorf("no package name: pass --package or set [package].name in specc.toml")
	}
	opts.Jobs = f.jobs
	if f.diskCache {
		cache, err := driver.OpenDiskCache("specc", "")
		if err != nil {
			return opts, fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	flags, err := readGenFlags(cmd)
	if err != nil {
		return err
	}
	in, err := resolveInputs(args)
	if err != nil {
		return err
	}
	opts, err := flags.apply(in.opts)
	if err != nil {
		return err
	}
	out, err := readDiagOutput(cmd, flags.format, true)
	if err != nil {
		return err
	}
	opts.MaxDiagnostics = out.max
	opts.Timer = observ.NewTimer()
	opts.Timings = &buildpipeline.Timings{}

	ctx, span := trace.Start(cmd.Context(), trace.ScopeDriver, "gen")
	defer span.End("")

	res, err := runCompile(ctx, "specc gen", in.files, opts, flags.ui)
	if err != nil {
		return err
	}

	stop := opts.Timer.Track("write")
	start := time.Now()
	changed, writeErr := driver.WriteOutputs(res, flags.check)
	opts.Timings.Add(buildpipeline.StageWrite, time.Since(start))
	stop(fmt.Sprintf("%d files", len(changed)))

	if flags.timings && (flags.format == diagFormatJSON || flags.format == diagFormatSarif) {
		driver.AppendTimingDiagnostic(res.Bag, "gen", opts.Timer.Report())
	}
	if err := printDiagnostics(cmd.OutOrStdout(), res.Bag, out); err != nil {
		return err
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write generated files: %w", writeErr)
	}
	if faults := res.Faults(); len(faults) > 0 {
		reportFaults(cmd.ErrOrStderr(), faults)
		return &exitError{code: exitFault}
	}

	if !flags.quiet && flags.format != diagFormatJSON && flags.format != diagFormatSarif {
		reportChanged(cmd.ErrOrStderr(), changed, flags.check, in.opts.BaseDir)
	}
	if flags.timings && flags.format != diagFormatJSON && flags.format != diagFormatSarif {
		printTimings(cmd.ErrOrStderr(), opts.Timer, opts.Timings)
	}

	if res.Bag.HasErrors() {
		return &exitError{code: exitDiagnostics}
	}
	if flags.check && len(changed) > 0 {
		return &exitError{code: exitDiagnostics}
	}
	return nil
}

// reportFaults prints internal failures and the trace leading up to them.
func reportFaults(w io.Writer, faults []driver.FileResult) {
	for _, f := range faults {
		fmt.Fprintf(w, "%s: internal fault: %v\n", f.Path, f.Fault)
	}
	dumpTrace(w, "fault")
}

func reportChanged(w io.Writer, changed []string, check bool, baseDir string) {
	verb := "wrote"
	if check {
		verb = "out of date"
	}
	for _, path := range buildpipeline.DisplayPaths(changed, baseDir) {
		fmt.Fprintf(w, "%s: %s\n", verb, path)
	}
}
