package main

import (
	"fmt"
	"os"
	"path/filepath"

	"specc/internal/driver"
	"specc/internal/project"
	"specc/internal/specfile"
)

// projectInputs is what gen and diag compile: the spec files and the
// options derived from the manifest, if one was found.
type projectInputs struct {
	manifest *project.Manifest
	files    []string
	opts     driver.Options
}

// resolveInputs finds the manifest above the first argument (or the working
// directory) and expands args into spec files. Without args the manifest's
// spec directories are searched.
func resolveInputs(args []string) (projectInputs, error) {
	start := "."
	if len(args) > 0 {
		start = args[0]
		if st, err := os.Stat(start); err == nil && !st.IsDir() {
			start = filepath.Dir(start)
		}
	}
	startAbs, err := filepath.Abs(start)
	if err != nil {
		return projectInputs{}, err
	}

	var in projectInputs
	m, ok, err := project.LoadManifest(startAbs)
	if err != nil {
		return projectInputs{}, err
	}
	if ok {
		in.manifest = m
		in.opts = driver.OptionsFromManifest(m)
	} else {
		in.opts.BaseDir = startAbs
	}

	paths := args
	if len(paths) == 0 {
		if in.manifest == nil {
			return projectInputs{}, fmt.Errorf("%w: pass spec files or directories, or run `specc init`", project.ErrNoManifest)
		}
		paths = in.manifest.SpecDirs()
	}
	in.files, err = project.DiscoverSpecs(paths, specfile.Ext)
	if err != nil {
		return projectInputs{}, err
	}
	if len(in.files) == 0 {
		return projectInputs{}, fmt.Errorf("no *%s files found", specfile.Ext)
	}
	return in, nil
}
