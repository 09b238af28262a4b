package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"specc/internal/diag"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>: <SEV> <CODE>: <Message>
//
//	--> <Spec.member>
//
// затем Notes и Fixes, если включены.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	PrettyList(w, bag.Items(), opts)
}

// PrettyList is Pretty over a plain slice.
func PrettyList(w io.Writer, items []diag.Diagnostic, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i := range items {
		d := &items[i]
		if i > 0 {
			fmt.Fprintln(w)
		}
		if path := formatPath(d.Primary.File, opts.PathMode, opts.BaseDir); path != "" {
			fmt.Fprintf(w, "%s: ", p.path.Sprint(path))
		}
		fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity), p.code.Sprint(d.Code.ID()), p.msg.Sprint(d.Message))
		if where := d.Primary.String(); where != "" {
			fmt.Fprintf(w, "  %s %s\n", p.arrow.Sprint("-->"), where)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				where := n.Origin.String()
				if where != "" {
					where = " (" + where + ")"
				}
				fmt.Fprintf(w, "  %s %s%s\n", p.note.Sprint("note:"), n.Msg, where)
			}
		}
		if opts.ShowFixes {
			for _, f := range d.Fixes {
				fmt.Fprintf(w, "  %s %s\n", p.fix.Sprint("help:"), f.Title)
			}
		}
	}
}

type palette struct {
	err, warn, info *color.Color
	code, msg, path *color.Color
	arrow, note     *color.Color
	fix             *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:   mk(color.FgRed, color.Bold),
		warn:  mk(color.FgYellow, color.Bold),
		info:  mk(color.FgCyan, color.Bold),
		code:  mk(color.Bold),
		msg:   mk(),
		path:  mk(color.FgHiWhite),
		arrow: mk(color.FgBlue),
		note:  mk(color.FgCyan),
		fix:   mk(color.FgGreen),
	}
}

func (p palette) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return p.err.Sprint(s.Label())
	case diag.SevWarning:
		return p.warn.Sprint(s.Label())
	default:
		return p.info.Sprint(s.Label())
	}
}
