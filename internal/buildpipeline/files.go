package buildpipeline

import (
	"path/filepath"
	"slices"
	"strings"
)

// DisplayPaths turns spec paths into the short, slash-separated names shown
// in progress output: relative to baseDir when under it, deduplicated and
// sorted.
func DisplayPaths(files []string, baseDir string) []string {
	base := strings.TrimSpace(baseDir)
	if base != "" {
		if abs, err := filepath.Abs(base); err == nil {
			base = abs
		}
	}
	out := make([]string, 0, len(files))
	for _, file := range files {
		if file == "" {
			continue
		}
		out = append(out, DisplayPath(file, base))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// DisplayPath is DisplayPaths for a single file. base must be absolute or
// empty.
func DisplayPath(file, base string) string {
	path := filepath.Clean(file)
	if base != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if rel, err := filepath.Rel(base, path); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
