// Package diag defines the diagnostic model shared by the spec loader, the
// validator and the CLI.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     about malformed component specs.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting beyond the single-line golden
// form, IO, or CLI integration. Rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary origin – the declaration (spec, member, method, parameter) at fault.
//   - Notes – optional secondary origins/messages for additional context.
//   - Fixes – optional suggestions, shown as hints.
//
// Spec files are decoded into a model before validation, so origins address
// declarations by name rather than by byte offset.
//
// # Emitting diagnostics
//
// Producers either build Diagnostic values directly (the validator returns a
// slice) or go through a Reporter with NewReportBuilder / ReportError and
// chain WithNote / WithFix before calling Emit. DedupReporter drops repeats;
// BagReporter aggregates into a Bag, which supports limits, sorting and
// deduplication.
package diag
