package driver

import (
	"context"
	"fmt"
	"os"
	"time"

	"specc/internal/assemble"
	"specc/internal/buildpipeline"
	"specc/internal/diag"
	"specc/internal/gen"
	"specc/internal/model"
	"specc/internal/project"
	"specc/internal/specfile"
	"specc/internal/trace"
	"specc/internal/validate"
)

// FileResult is the outcome for one spec.
type FileResult struct {
	Path   string
	Spec   model.Spec // nil when the file could not be loaded
	Output string     // destination of Code
	Code   []byte     // nil unless the spec compiled cleanly
	Diags  []diag.Diagnostic
	// Fault is an internal failure: *gen.Fault, *assemble.OrderError or a
	// formatter error.
	Fault  error
	Cached bool
}

// OK reports whether the spec produced code.
func (r *FileResult) OK() bool { return r.Code != nil }

// CompileSpec runs validation, generation, assembly and rendering for an
// in-memory spec. file is used for diagnostics and the output path.
func CompileSpec(ctx context.Context, s model.Spec, file string, opts Options) FileResult {
	opts = opts.withDefaults()
	res := FileResult{Path: file, Spec: s, Output: opts.OutputPath(file, s.ComponentName())}

	ctx, span := trace.Start(ctx, trace.ScopeSpec, "spec:"+s.SpecName())
	defer func() { span.End(outcome(&res)) }()

	display := buildpipeline.DisplayPath(file, opts.BaseDir)
	stage := func(st buildpipeline.Stage, run func()) {
		buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: display, Stage: st, Status: buildpipeline.StatusWorking})
		start := time.Now()
		run()
		opts.Timings.Add(st, time.Since(start))
	}

	stage(buildpipeline.StageValidate, func() {
		_, vspan := trace.Start(ctx, trace.ScopePass, "validate")
		for _, d := range validate.Spec(s) {
			res.Diags = append(res.Diags, d.InFile(file))
		}
		vspan.End(fmt.Sprintf("%d diagnostics", len(res.Diags)))
	})
	if !validate.Valid(res.Diags) || opts.ValidateOnly {
		return res
	}

	var unit *assemble.Unit
	stage(buildpipeline.StageGenerate, func() {
		frags, err := runGenerators(ctx, s)
		if err != nil {
			res.Fault = err
			return
		}
		unit, res.Fault = assemble.Assemble(s, frags)
	})
	if res.Fault != nil {
		return res
	}

	stage(buildpipeline.StageRender, func() {
		_, rspan := trace.Start(ctx, trace.ScopePass, "render")
		res.Code, res.Fault = assemble.Render(unit, assemble.RenderOptions{
			Package:       opts.Package,
			RuntimeImport: opts.RuntimeImport,
			Filename:      res.Output,
		})
		rspan.End("")
	})
	return res
}

// runGenerators is gen.Run with one trace span per generator.
func runGenerators(ctx context.Context, s model.Spec) (gen.Fragments, error) {
	out := make(gen.Fragments)
	for _, g := range gen.Registry() {
		_, span := trace.Start(ctx, trace.ScopeGenerator, "gen:"+g.Name)
		frag, err := g.Gen(s)
		span.End("")
		if err != nil {
			return nil, err
		}
		out[g.Section] = frag
	}
	return out, nil
}

// CompileFile loads the spec at path and compiles it, consulting the disk
// cache when one is configured.
func CompileFile(ctx context.Context, path string, opts Options) FileResult {
	opts = opts.withDefaults()
	display := buildpipeline.DisplayPath(path, opts.BaseDir)
	buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: display, Stage: buildpipeline.StageLoad, Status: buildpipeline.StatusWorking})
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		res := FileResult{Path: path, Diags: []diag.Diagnostic{
			diag.NewError(diag.IOLoadFileError, diag.Origin{File: path}, fmt.Sprintf("failed to read spec file: %v", err)),
		}}
		finish(opts, display, &res, start)
		return res
	}

	key := project.Combine(project.HashBytes(data), opts.configDigest())
	if res, ok := fromCache(opts.Cache, key, path, opts); ok {
		buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: display, Status: buildpipeline.StatusCached, Elapsed: time.Since(start)})
		return res
	}

	s, diags := specfile.Decode(path, data)
	opts.Timings.Add(buildpipeline.StageLoad, time.Since(start))
	var res FileResult
	if s == nil {
		res = FileResult{Path: path, Diags: diags}
	} else {
		res = CompileSpec(ctx, s, path, opts)
		res.Diags = append(diags, res.Diags...)
	}
	if res.Fault == nil && !opts.ValidateOnly {
		if err := opts.Cache.Put(key, toPayload(&res)); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeSpec, "cache:put", err.Error())
		}
	}
	finish(opts, display, &res, start)
	return res
}

func finish(opts Options, display string, res *FileResult, start time.Time) {
	ev := buildpipeline.Event{File: display, Status: buildpipeline.StatusDone, Elapsed: time.Since(start)}
	if !res.OK() {
		ev.Status = buildpipeline.StatusError
		ev.Err = res.Fault
	}
	buildpipeline.Emit(opts.Progress, ev)
}

func outcome(res *FileResult) string {
	switch {
	case res.Fault != nil:
		return "fault"
	case diag.HasErrors(res.Diags):
		return "invalid"
	default:
		return "ok"
	}
}
