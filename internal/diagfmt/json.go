package diagfmt

import (
	"encoding/json"
	"io"

	"specc/internal/diag"
)

// LocationJSON представляет объявление, к которому относится диагностика
type LocationJSON struct {
	File   string `json:"file,omitempty"`
	Spec   string `json:"spec,omitempty"`
	Member string `json:"member,omitempty"`
	Method string `json:"method,omitempty"`
	Param  string `json:"param,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FixJSON представляет подсказку по исправлению для JSON
type FixJSON struct {
	Title string `json:"title"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(o diag.Origin, opts JSONOpts) LocationJSON {
	return LocationJSON{
		File:   formatPath(o.File, opts.PathMode, opts.BaseDir),
		Spec:   o.Spec,
		Member: o.Member,
		Method: o.Method,
		Param:  o.Param,
	}
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	items := []diag.Diagnostic(nil)
	if bag != nil {
		items = bag.Items()
	}
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]
		out := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, opts),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				out.Notes = append(out.Notes, NoteJSON{Message: n.Msg, Location: makeLocation(n.Origin, opts)})
			}
		}
		if opts.IncludeFixes {
			for _, f := range d.Fixes {
				out.Fixes = append(out.Fixes, FixJSON{Title: f.Title})
			}
		}
		diagnostics = append(diagnostics, out)
	}

	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(items)}
}

// JSON пишет диагностики в JSON формате.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, opts))
}
