package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultRuntimeImport is used when [gen].runtime is not set.
const DefaultRuntimeImport = "specc/runtime"

// DefaultSuffix is appended to the component name for output files.
const DefaultSuffix = "_gen.go"

// Manifest is a loaded specc.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Gen     GenConfig     `toml:"gen"`
}

type PackageConfig struct {
	// Name is the Go package generated files are written in.
	Name string `toml:"name"`
}

type GenConfig struct {
	// Runtime is the import path of the runtime package.
	Runtime string `toml:"runtime,omitempty"`
	// Specs lists directories searched for spec files, relative to the root.
	Specs []string `toml:"specs,omitempty"`
	// Out is the output directory; empty writes next to each spec file.
	Out    string `toml:"out,omitempty"`
	Suffix string `toml:"suffix,omitempty"`
}

// LoadManifest finds and loads the manifest above startDir. ok is false when
// there is none.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes and validates a manifest file and fills in defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(names, ", "))
	}
	for _, dir := range cfg.Gen.Specs {
		if filepath.IsAbs(dir) {
			return Config{}, fmt.Errorf("%s: [gen].specs entry %q must be relative", path, dir)
		}
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	if c.Gen.Runtime == "" {
		c.Gen.Runtime = DefaultRuntimeImport
	}
	if c.Gen.Suffix == "" {
		c.Gen.Suffix = DefaultSuffix
	}
	if len(c.Gen.Specs) == 0 {
		c.Gen.Specs = []string{"."}
	}
}

// DefaultConfig is what `specc init` writes.
func DefaultConfig(pkg string) Config {
	cfg := Config{Package: PackageConfig{Name: pkg}}
	cfg.fillDefaults()
	return cfg
}

// Encode renders cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	var sb strings.Builder
	enc := toml.NewEncoder(&sb)
	enc.Indent = ""
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return []byte(sb.String()), nil
}

// SpecDirs returns the absolute spec directories.
func (m *Manifest) SpecDirs() []string {
	out := make([]string, 0, len(m.Config.Gen.Specs))
	for _, dir := range m.Config.Gen.Specs {
		out = append(out, filepath.Join(m.Root, filepath.FromSlash(dir)))
	}
	return out
}

// OutDir returns the absolute output directory, or "" to write next to
// each spec.
func (m *Manifest) OutDir() string {
	if m.Config.Gen.Out == "" {
		return ""
	}
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Gen.Out))
}

// DiscoverSpecs expands paths into a sorted, duplicate-free list of spec
// files. Directories are walked recursively for names ending in ext;
// regular files are taken as given.
func DiscoverSpecs(paths []string, ext string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(p))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// ErrNoManifest is returned by commands that need a project.
var ErrNoManifest = errors.New("no " + ManifestName + " found")
