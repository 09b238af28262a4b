package assemble

import (
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"specc/internal/gen"
	"specc/internal/model"
)

// Header opens every generated file.
const Header = "// Code generated by specc. DO NOT EDIT."

// DefaultRuntimeImport is the import path of the runtime contract.
const DefaultRuntimeImport = "specc/runtime"

// RenderOptions controls how a unit is printed.
type RenderOptions struct {
	Package       string
	RuntimeImport string
	// Filename is only used in formatter error messages.
	Filename string
}

// Render prints u as a gofmt-formatted Go file.
func Render(u *Unit, opts RenderOptions) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("render %s: package name is required", u.Name)
	}
	rt := opts.RuntimeImport
	if rt == "" {
		rt = DefaultRuntimeImport
	}
	p := printer{u: u}
	p.header(opts.Package, rt)
	p.structDecl()
	p.constructor()
	for _, m := range u.Methods {
		p.method(m)
	}
	for _, t := range u.Types {
		p.typeDecl(t)
	}

	name := opts.Filename
	if name == "" {
		name = strings.ToLower(u.Name) + "_gen.go"
	}
	out, err := imports.Process(name, p.buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return out, nil
}

type printer struct {
	u   *Unit
	buf bytes.Buffer
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
}

func (p *printer) header(pkg, runtimeImport string) {
	p.printf("%s\n\n", Header)
	p.printf("package %s\n\n", pkg)
	p.printf("import (\n")
	for _, imp := range p.u.Imports {
		p.printf("\t%s\n", strconv.Quote(imp))
	}
	if path.Base(runtimeImport) == model.RuntimePackage {
		p.printf("\t%s\n", strconv.Quote(runtimeImport))
	} else {
		p.printf("\t%s %s\n", model.RuntimePackage, strconv.Quote(runtimeImport))
	}
	p.printf(")\n\n")
}

// typeParams renders the declaration form: [T any, U any].
func (p *printer) typeParams() string {
	if len(p.u.TypeParams) == 0 {
		return ""
	}
	parts := make([]string, len(p.u.TypeParams))
	for i, tv := range p.u.TypeParams {
		parts[i] = tv + " any"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgs renders the instantiation form: [T, U].
func (p *printer) typeArgs() string {
	if len(p.u.TypeParams) == 0 {
		return ""
	}
	return "[" + strings.Join(p.u.TypeParams, ", ") + "]"
}

func (p *printer) doc(indent, text string) {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			p.printf("%s//\n", indent)
			continue
		}
		p.printf("%s// %s\n", indent, line)
	}
}

func (p *printer) base() (field, ctor string) {
	if p.u.Section {
		return "SectionBase", model.RuntimePackage + ".NewSectionBase()"
	}
	return "ComponentBase", model.RuntimePackage + ".NewComponentBase()"
}

func (p *printer) fields(fs []gen.Field) {
	for _, f := range fs {
		if f.Doc != "" {
			p.doc("\t", f.Doc)
		}
		if f.Tag != "" {
			p.printf("\t%s %s `%s`\n", f.Name, f.Type, f.Tag)
		} else {
			p.printf("\t%s %s\n", f.Name, f.Type)
		}
	}
}

func (p *printer) structDecl() {
	doc := fmt.Sprintf("%s is generated from %s.", p.u.Name, p.u.QualifiedName)
	if p.u.Doc != "" {
		doc += "\n\n" + p.u.Doc
	}
	p.doc("", doc)
	base, _ := p.base()
	p.printf("type %s%s struct {\n", p.u.Name, p.typeParams())
	p.printf("\t%s.%s\n", model.RuntimePackage, base)
	if len(p.u.Fields) > 0 {
		p.printf("\n")
	}
	p.fields(p.u.Fields)
	p.printf("}\n\n")
}

func (p *printer) constructor() {
	name := "New" + p.u.Name
	if !p.u.Public {
		name = "new" + p.u.Name
	}
	typ := p.u.Name + p.typeArgs()
	base, ctor := p.base()

	p.printf("// %s returns a %s with its defaults applied.\n", name, p.u.Name)
	p.printf("func %s%s() *%s {\n", name, p.typeParams(), typ)
	p.printf("\treturn &%s{\n", typ)
	p.printf("\t\t%s: %s,\n", base, ctor)
	for _, f := range p.u.Fields {
		if f.Init != "" {
			p.printf("\t\t%s: %s,\n", f.Name, f.Init)
		}
	}
	p.printf("\t}\n}\n\n")
}

func (p *printer) method(m gen.Method) {
	recvType := p.u.Name
	if m.RecvType != "" {
		recvType = m.RecvType
	}
	if m.Doc != "" {
		p.doc("", m.Doc)
	}
	params := make([]string, 0, len(m.Params))
	for _, prm := range m.Params {
		params = append(params, prm.Name+" "+prm.Type)
	}
	results := ""
	if m.Results != "" {
		results = " " + m.Results
	}
	p.printf("func (%s *%s%s) %s(%s)%s {\n", m.Recv, recvType, p.typeArgs(), m.Name, strings.Join(params, ", "), results)
	for _, line := range m.Body {
		p.printf("\t%s\n", line)
	}
	p.printf("}\n\n")
}

func (p *printer) typeDecl(t gen.TypeDecl) {
	if t.Doc != "" {
		p.doc("", t.Doc)
	}
	p.printf("type %s%s struct {\n", t.Name, p.typeParams())
	p.fields(t.Fields)
	p.printf("}\n\n")
	for _, m := range t.Methods {
		p.method(m)
	}
}
