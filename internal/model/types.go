package model

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"slices"
)

// RuntimePackage is the package name generated code and spec type
// expressions use to refer to the runtime contract.
const RuntimePackage = "runtime"

// TypeKind classifies a Go type by how generated code compares and copies it.
type TypeKind uint8

const (
	// KindOther is any reference type without special handling.
	KindOther TypeKind = iota
	// KindPrimitive is a predeclared comparable scalar (bool, ints, string).
	KindPrimitive
	KindFloat32
	KindFloat64
	KindSlice
	KindArray
	// KindReference is a copy-on-write resource handle (runtime.Reference[T]).
	KindReference
	// KindComponent is a nested component (runtime.Component).
	KindComponent
	// KindSection is a nested section (runtime.Section).
	KindSection
	// KindTypeParam is one of the spec's type variables.
	KindTypeParam
)

func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindSlice:
		return "slice"
	case KindArray:
		return "array"
	case KindReference:
		return "reference"
	case KindComponent:
		return "component"
	case KindSection:
		return "section"
	case KindTypeParam:
		return "type_param"
	default:
		return "other"
	}
}

// Type is the semantic type of a member or parameter.
type Type struct {
	Expr string // canonical Go type expression
	Kind TypeKind
}

func (t Type) String() string { return t.Expr }

// IsZero reports whether the type was never set.
func (t Type) IsZero() bool { return t.Expr == "" }

var primitiveNames = map[string]bool{
	"bool": true, "string": true, "byte": true, "rune": true, "uintptr": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"complex64": true, "complex128": true,
}

// ParseType parses a Go type expression and classifies it. typeVars are the
// spec's type variables; an identifier naming one of them is KindTypeParam.
func ParseType(expr string, typeVars ...string) (Type, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return Type{}, fmt.Errorf("invalid type expression %q: %w", expr, err)
	}
	return Type{
		Expr: types.ExprString(node),
		Kind: classify(node, typeVars),
	}, nil
}

// MustType is ParseType for fixtures and tests; it panics on malformed input.
func MustType(expr string, typeVars ...string) Type {
	t, err := ParseType(expr, typeVars...)
	if err != nil {
		panic(err)
	}
	return t
}

func classify(node ast.Expr, typeVars []string) TypeKind {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return classify(n.X, typeVars)
	case *ast.Ident:
		switch {
		case n.Name == "float32":
			return KindFloat32
		case n.Name == "float64":
			return KindFloat64
		case primitiveNames[n.Name]:
			return KindPrimitive
		case slices.Contains(typeVars, n.Name):
			return KindTypeParam
		}
	case *ast.ArrayType:
		if n.Len == nil {
			return KindSlice
		}
		return KindArray
	case *ast.SelectorExpr:
		if runtimeSelector(n, "Component") {
			return KindComponent
		}
		if runtimeSelector(n, "Section") {
			return KindSection
		}
	case *ast.IndexExpr:
		if sel, ok := n.X.(*ast.SelectorExpr); ok && runtimeSelector(sel, "Reference") {
			return KindReference
		}
	}
	return KindOther
}

func runtimeSelector(sel *ast.SelectorExpr, name string) bool {
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == RuntimePackage && sel.Sel.Name == name
}
