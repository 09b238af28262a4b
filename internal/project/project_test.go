package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ManifestName), "[package]\nname = \"widgets\"\n[gen]\nspecs = [\"specs\"]\nout = \"gen\"\n")
	nested := filepath.Join(root, "specs", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest = %v, %t, %v", m, ok, err)
	}
	want := Config{
		Package: PackageConfig{Name: "widgets"},
		Gen:     GenConfig{Runtime: DefaultRuntimeImport, Specs: []string{"specs"}, Out: "gen", Suffix: DefaultSuffix},
	}
	if diff := cmp.Diff(want, m.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{filepath.Join(m.Root, "specs")}, m.SpecDirs()); diff != "" {
		t.Errorf("spec dirs (-want +got):\n%s", diff)
	}
	if m.OutDir() != filepath.Join(m.Root, "gen") {
		t.Errorf("out dir = %q", m.OutDir())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"no package", "[gen]\nout = \"x\"\n", "missing [package]"},
		{"no name", "[package]\n", "missing [package].name"},
		{"unknown key", "[package]\nname = \"x\"\nversion = \"1\"\n", "unknown keys: package.version"},
		{"absolute specs", "[package]\nname = \"x\"\n[gen]\nspecs = [\"/abs\"]\n", "must be relative"},
		{"syntax", "[package\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			write(t, path, tt.content)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestNoManifest(t *testing.T) {
	_, ok, err := LoadManifest(t.TempDir())
	if err != nil || ok {
		t.Errorf("LoadManifest in empty tree = %t, %v", ok, err)
	}
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	data, err := DefaultConfig("widgets").Encode()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), ManifestName)
	write(t, path, string(data))
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig("widgets"), got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestDiscoverSpecs(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"a.spec.toml", "sub/b.spec.toml", "sub/notes.toml", ".hidden/c.spec.toml"} {
		write(t, filepath.Join(root, rel), "")
	}
	single := filepath.Join(root, "sub", "b.spec.toml")

	got, err := DiscoverSpecs([]string{root, single}, ".spec.toml")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(root, "a.spec.toml"), single}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("discovered (-want +got):\n%s", diff)
	}

	if _, err := DiscoverSpecs([]string{filepath.Join(root, "missing")}, ".spec.toml"); err == nil {
		t.Error("missing path accepted")
	}
}

func TestDigest(t *testing.T) {
	a, b := HashBytes([]byte("a")), HashBytes([]byte("b"))
	if Combine(a, b) == Combine(b, a) {
		t.Error("Combine ignores order")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Error("Combine is not deterministic")
	}
	if !(Digest{}).IsZero() || a.IsZero() {
		t.Error("IsZero")
	}
	if len(a.String()) != 64 {
		t.Errorf("hex digest %q", a.String())
	}
}
