package gen

// Field is one struct field.
type Field struct {
	Name string
	Type string
	Tag  string // struct tag contents, without backquotes
	// Init is the expression the constructor assigns, "" for the zero value.
	Init string
	Doc  string
}

// Param is one parameter of a generated method.
type Param struct {
	Name string
	Type string
}

// Method is a generated method. RecvType is empty for methods on the
// component itself, otherwise the bare name of a generated nested type.
type Method struct {
	Doc      string
	Recv     string
	RecvType string
	Name     string
	Params   []Param
	Results  string
	Body     []string
}

// TypeDecl is a generated nested struct type with its methods.
type TypeDecl struct {
	Name    string
	Doc     string
	Fields  []Field
	Methods []Method
}

// Fragment is the self-contained output of one generator.
type Fragment struct {
	Fields  []Field
	Methods []Method
	Types   []TypeDecl
	Imports []string
}

// Empty returns the explicit empty fragment.
func Empty() Fragment {
	return Fragment{
		Fields:  []Field{},
		Methods: []Method{},
		Types:   []TypeDecl{},
		Imports: []string{},
	}
}

// IsEmpty reports whether the fragment contributes nothing.
func (f Fragment) IsEmpty() bool {
	return len(f.Fields) == 0 && len(f.Methods) == 0 && len(f.Types) == 0
}

// HasType reports whether the fragment declares a nested type called name.
func (f Fragment) HasType(name string) bool {
	for _, t := range f.Types {
		if t.Name == name {
			return true
		}
	}
	return false
}
