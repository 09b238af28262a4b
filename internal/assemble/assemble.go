// Package assemble composes generator fragments into one emitted unit in a
// fixed order and renders that unit as Go source.
package assemble

import (
	"fmt"
	"slices"
	"strings"

	"specc/internal/gen"
	"specc/internal/model"
)

// Unit is the assembled implementation of one spec.
type Unit struct {
	Name          string
	SpecName      string
	QualifiedName string
	TypeParams    []string
	Section       bool // embeds the section base instead of the component base
	Public        bool
	Doc           string

	Fields  []gen.Field
	Methods []gen.Method
	Types   []gen.TypeDecl
	Imports []string
}

// OrderError is an assembly-ordering violation: a generator omitted its
// fragment instead of returning an empty one.
type OrderError struct {
	Spec    string
	Missing []gen.Section
}

func (e *OrderError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, s := range e.Missing {
		names = append(names, s.String())
	}
	return fmt.Sprintf("assembly of %s: missing fragments for %s", e.Spec, strings.Join(names, ", "))
}

// Assemble lays out frags in section order: fields, then methods, then
// nested types, each in the order their sections are declared.
func Assemble(s model.Spec, frags gen.Fragments) (*Unit, error) {
	var missing []gen.Section
	for _, sec := range gen.Sections {
		if _, ok := frags[sec]; !ok {
			missing = append(missing, sec)
		}
	}
	if len(missing) > 0 {
		return nil, &OrderError{Spec: s.SpecName(), Missing: missing}
	}

	u := &Unit{
		Name:          s.ComponentName(),
		SpecName:      s.SpecName(),
		QualifiedName: s.QualifiedName(),
		TypeParams:    s.TypeVariables(),
		Section:       s.ComponentClass().Kind == model.KindSection,
		Public:        s.IsPublic(),
		Doc:           s.Doc(),
		Fields:        []gen.Field{},
		Methods:       []gen.Method{},
		Types:         []gen.TypeDecl{},
	}
	b := newBuilder()
	for _, imp := range s.Imports() {
		b.addImport(imp)
	}
	for _, sec := range gen.Sections {
		f := frags[sec]
		u.Fields = append(u.Fields, f.Fields...)
		for _, imp := range f.Imports {
			b.addImport(imp)
		}
	}
	for _, sec := range gen.Sections {
		u.Methods = append(u.Methods, frags[sec].Methods...)
	}
	for _, sec := range gen.Sections {
		u.Types = append(u.Types, frags[sec].Types...)
	}
	u.Imports = b.build()
	return u, nil
}

// builder accumulates imports for one assembly pass.
type builder struct {
	imports map[string]struct{}
}

func newBuilder() *builder {
	return &builder{imports: make(map[string]struct{})}
}

func (b *builder) addImport(path string) {
	if path = strings.TrimSpace(path); path != "" {
		b.imports[path] = struct{}{}
	}
}

func (b *builder) build() []string {
	out := make([]string, 0, len(b.imports))
	for p := range b.imports {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Generate runs every generator on s and assembles the result. s must have
// passed validation.
func Generate(s model.Spec) (*Unit, error) {
	frags, err := gen.Run(s)
	if err != nil {
		return nil, err
	}
	return Assemble(s, frags)
}
