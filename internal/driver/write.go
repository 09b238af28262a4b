package driver

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WriteOutputs writes the generated code of every successful file. Files
// whose contents are already up to date are left untouched. It returns the
// outputs that were (or, with check, would be) changed.
func WriteOutputs(res *Result, check bool) ([]string, error) {
	var changed []string
	var errs []error
	for _, f := range res.Files {
		if !f.OK() {
			continue
		}
		current, err := os.ReadFile(f.Output)
		if err == nil && bytes.Equal(current, f.Code) {
			continue
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		changed = append(changed, f.Output)
		if check {
			continue
		}
		if err := writeFile(f.Output, f.Code); err != nil {
			errs = append(errs, err)
		}
	}
	return changed, errors.Join(errs...)
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".specc-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
