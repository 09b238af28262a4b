package diag

func New(sev Severity, code Code, primary Origin, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
		Fixes:    nil,
	}
}

func NewError(code Code, primary Origin, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary Origin, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(o Origin, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Origin: o, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title})
	return d
}

// InFile returns a copy whose primary and note origins point into file.
func (d Diagnostic) InFile(file string) Diagnostic {
	d.Primary.File = file
	if len(d.Notes) > 0 {
		notes := make([]Note, len(d.Notes))
		for i, n := range d.Notes {
			n.Origin.File = file
			notes[i] = n
		}
		d.Notes = notes
	}
	return d
}
