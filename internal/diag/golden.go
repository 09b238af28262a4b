package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Where    string
	Message  string
}

// FormatGoldenDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files: sorted, with file paths reduced to
// slash-separated form.
func FormatGoldenDiagnostics(diags []Diagnostic, includeNotes bool) string {
	return formatDiagnostics(diags, includeNotes, true)
}

// FormatShortDiagnostics renders diagnostics one per line in emission order,
// intended for CLI short output.
func FormatShortDiagnostics(diags []Diagnostic, includeNotes bool) string {
	return formatDiagnostics(diags, includeNotes, false)
}

func formatDiagnostics(diags []Diagnostic, includeNotes, sorted bool) string {
	if len(diags) == 0 {
		return ""
	}

	// Каждая диагностика сортируется вместе со своими заметками.
	groups := make([][]goldenDiagnostic, 0, len(diags))
	for i := range diags {
		groups = append(groups, appendDiagnostic(nil, &diags[i], includeNotes))
	}
	if sorted {
		sort.SliceStable(groups, func(i, j int) bool {
			return goldenLess(groups[i][0], groups[j][0])
		})
	}

	var b strings.Builder
	for _, group := range groups {
		for _, d := range group {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s %s ", d.Severity, d.Code)
			if d.Path != "" {
				b.WriteString(d.Path)
				b.WriteByte(':')
			}
			fmt.Fprintf(&b, "%s %s", d.Where, d.Message)
		}
	}
	return b.String()
}

func goldenLess(di, dj goldenDiagnostic) bool {
	if di.Path != dj.Path {
		return di.Path < dj.Path
	}
	if di.Where != dj.Where {
		return di.Where < dj.Where
	}
	if di.Severity != dj.Severity {
		return di.Severity < dj.Severity
	}
	if di.Code != dj.Code {
		return di.Code < dj.Code
	}
	return di.Message < dj.Message
}

func appendDiagnostic(out []goldenDiagnostic, d *Diagnostic, includeNotes bool) []goldenDiagnostic {
	out = append(out, goldenDiagnostic{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Path:     normalizePath(d.Primary.File),
		Where:    d.Primary.String(),
		Message:  sanitizeMessage(d.Message),
	})

	if includeNotes {
		for _, note := range d.Notes {
			out = append(out, goldenDiagnostic{
				Severity: "note",
				Code:     d.Code.ID(),
				Path:     normalizePath(note.Origin.File),
				Where:    note.Origin.String(),
				Message:  sanitizeMessage(note.Msg),
			})
		}
	}

	return out
}

func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
