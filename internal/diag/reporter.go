package diag

// Reporter принимает диагностики по мере их появления. Реализации:
// SliceReporter (порядок выдачи), BagReporter (в Bag с лимитом),
// DedupReporter (фильтр повторов).
type Reporter interface {
	Report(d Diagnostic)
}

// ReportBuilder accumulates notes and fixes for one diagnostic, then hands
// it to a Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder starts a diagnostic bound to r.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary Origin, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: New(sev, code, primary, msg)}
}

// ReportError starts an error diagnostic.
func ReportError(r Reporter, code Code, primary Origin, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, primary, msg)
}

// ReportWarning starts a warning diagnostic.
func ReportWarning(r Reporter, code Code, primary Origin, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

func (b *ReportBuilder) WithNote(o Origin, msg string) *ReportBuilder {
	if b != nil {
		b.diag = b.diag.WithNote(o, msg)
	}
	return b
}

func (b *ReportBuilder) WithFix(title string) *ReportBuilder {
	if b != nil {
		b.diag = b.diag.WithFix(title)
	}
	return b
}

// Emit reports the diagnostic; later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	b.emitted = true
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
}

// Diagnostic returns the diagnostic built so far without reporting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter adds to a Bag; diagnostics beyond its limit are dropped.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// SliceReporter collects diagnostics in emission order.
type SliceReporter struct{ Items []Diagnostic }

func (r *SliceReporter) Report(d Diagnostic) {
	r.Items = append(r.Items, d)
}
