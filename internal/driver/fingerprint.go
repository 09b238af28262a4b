package driver

import (
	"fmt"
	"strings"

	"specc/internal/version"
)

// Fingerprint identifies the generator build. It is part of every disk-cache
// key, so output cached by another specc build is never served.
func Fingerprint() string {
	fp := fmt.Sprintf("%s/schema%d", strings.TrimSpace(version.Version), diskCacheSchemaVersion)
	if commit := strings.TrimSpace(version.GitCommit); commit != "" {
		fp += "/" + commit
	}
	return fp
}
