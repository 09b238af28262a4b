package driver

import (
	"path/filepath"
	"strings"

	"specc/internal/buildpipeline"
	"specc/internal/observ"
	"specc/internal/project"
)

// Options configures a compile run.
type Options struct {
	// Package is the Go package generated files declare.
	Package       string
	RuntimeImport string
	// Suffix is appended to the lower-cased component name.
	Suffix string
	// OutDir receives generated files; empty writes next to each spec.
	OutDir string

	Jobs           int
	MaxDiagnostics int
	// ValidateOnly stops after validation; no code is generated.
	ValidateOnly bool

	Cache    *DiskCache
	Progress buildpipeline.ProgressSink
	// BaseDir shortens paths in progress events.
	BaseDir string
	Timer   *observ.Timer
	Timings *buildpipeline.Timings
}

func (o Options) withDefaults() Options {
	if o.RuntimeImport == "" {
		o.RuntimeImport = project.DefaultRuntimeImport
	}
	if o.Suffix == "" {
		o.Suffix = project.DefaultSuffix
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 1000
	}
	return o
}

// OptionsFromManifest takes package, runtime import, output directory and
// suffix from m.
func OptionsFromManifest(m *project.Manifest) Options {
	return Options{
		Package:       m.Config.Package.Name,
		RuntimeImport: m.Config.Gen.Runtime,
		Suffix:        m.Config.Gen.Suffix,
		OutDir:        m.OutDir(),
		BaseDir:       m.Root,
	}
}

// OutputPath is where the generated file for component lands.
func (o Options) OutputPath(specPath, component string) string {
	o = o.withDefaults()
	dir := o.OutDir
	if dir == "" {
		dir = filepath.Dir(specPath)
	}
	return filepath.Join(dir, strings.ToLower(component)+o.Suffix)
}

// configDigest covers every option that changes rendered bytes, and the
// generator build itself.
func (o Options) configDigest() project.Digest {
	return project.HashString(strings.Join([]string{Fingerprint(), o.Package, o.RuntimeImport}, "\x00"))
}
