package diag

import "strings"

// Origin points at the declaration a diagnostic is about. Spec files have no
// useful byte offsets once decoded, so declarations are addressed by name.
type Origin struct {
	File   string // spec file, empty for in-memory specs
	Spec   string // spec simple name
	Member string
	Method string
	Param  string
}

// String renders the declaration path: Spec.member, Spec.method(param).
func (o Origin) String() string {
	var b strings.Builder
	b.WriteString(o.Spec)
	switch {
	case o.Method != "":
		b.WriteByte('.')
		b.WriteString(o.Method)
		if o.Param != "" {
			b.WriteByte('(')
			b.WriteString(o.Param)
			b.WriteByte(')')
		}
	case o.Member != "":
		b.WriteByte('.')
		b.WriteString(o.Member)
	}
	return b.String()
}

type Note struct {
	Origin Origin
	Msg    string
}

// Fix is a human-applied suggestion; spec files are rewritten by hand.
type Fix struct {
	Title string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Origin
	Notes    []Note
	Fixes    []Fix
}
