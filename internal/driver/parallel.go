package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"specc/internal/buildpipeline"
	"specc/internal/diag"
	"specc/internal/trace"
)

// Result is the outcome of compiling a set of spec files.
type Result struct {
	// Files is in the order the paths were given.
	Files []FileResult
	// Bag holds every diagnostic, file by file.
	Bag *diag.Bag
}

// Faults returns the files that failed internally.
func (r *Result) Faults() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Fault != nil {
			out = append(out, f)
		}
	}
	return out
}

// CompileFiles compiles every path with at most opts.Jobs files in flight.
// Per-file problems are reported in the result; the returned error is only
// set when ctx is cancelled.
func CompileFiles(ctx context.Context, paths []string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	ctx, span := trace.Start(ctx, trace.ScopePass, "compile")
	defer span.End(fmt.Sprintf("%d files", len(paths)))
	if opts.Timer != nil {
		defer opts.Timer.Track("compile")(fmt.Sprintf("%d files", len(paths)))
	}

	buildpipeline.EmitQueued(opts.Progress, buildpipeline.DisplayPaths(paths, opts.BaseDir))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индексы уникальны, мьютекс не нужен
			results[i] = CompileFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	checkDuplicateOutputs(results)

	bag := diag.NewBag(opts.MaxDiagnostics)
	for _, r := range results {
		bag.AddAll(r.Diags)
	}
	return &Result{Files: results, Bag: bag}, nil
}

// checkDuplicateOutputs flags specs whose generated files would overwrite
// each other. The first spec to claim a path keeps it.
func checkDuplicateOutputs(results []FileResult) {
	owner := make(map[string]int, len(results))
	for i := range results {
		r := &results[i]
		if r.Output == "" {
			continue
		}
		first, taken := owner[r.Output]
		if !taken {
			owner[r.Output] = i
			continue
		}
		d := diag.NewError(diag.ProjDuplicateSpec, diag.Origin{File: r.Path},
			fmt.Sprintf("generated file %s is already produced by %s", r.Output, results[first].Path)).
			WithNote(diag.Origin{File: results[first].Path}, "first spec generating this file").
			WithFix("rename the component or move one spec to another output directory")
		r.Diags = append(r.Diags, d)
		r.Code = nil
	}
}
