package main

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"specc/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new specc project",
	Long: `Initialize a new specc project by creating a project manifest (specc.toml)
and an example spec (badge.spec.toml). If [path|name] is omitted, initializes
the current directory. A missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const exampleSpecName = "badge.spec.toml"

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	pkg := packageNameFor(filepath.Base(target))
	manifest, err := project.DefaultConfig(pkg).Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, manifest, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	specPath := filepath.Join(target, exampleSpecName)
	createdSpec := false
	if _, err := os.Stat(specPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(specPath, []byte(exampleSpec(pkg)), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exampleSpecName, err)
		}
		createdSpec = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, target); err == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized specc project %q in %s\n", pkg, rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdSpec {
		fmt.Fprintf(out, "  - %s\n", exampleSpecName)
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", exampleSpecName)
	}
	return nil
}

// packageNameFor turns a directory name into a Go package name.
func packageNameFor(dir string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(dir) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	if name == "" || !token.IsIdentifier(name) || token.IsKeyword(name) {
		return "components"
	}
	return name
}

func exampleSpec(pkg string) string {
	return fmt.Sprintf(`# Example component spec. Run "specc gen" to generate badge_gen.go.
[spec]
name = "%s.BadgeSpec"
public = true
doc = "Badge shows a short label with a counter."
diffs = ["text"]

[mount]
mount_type = "view"
pool_size = 3

[[member]]
name = "text"
role = "prop"
type = "string"

[[member]]
name = "count"
role = "state"
type = "int"

[[method]]
name = "onCreateInitialState"
kind = "create_initial_state"

[[method.param]]
name = "c"
type = "*runtime.Context"

[[method.param]]
name = "count"
role = "state_value"
type = "*int"

[[method]]
name = "onMount"
kind = "create_layout"

[[method.param]]
name = "c"
type = "*runtime.Context"

[[method.param]]
name = "text"
role = "prop"
type = "string"

[[method.param]]
name = "count"
role = "state"
type = "int"
`, pkg)
}
