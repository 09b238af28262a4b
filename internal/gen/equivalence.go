package gen

import (
	"fmt"

	"specc/internal/model"
)

// genEquivalence emits IsEquivalentTo. The order is fixed: reference
// equality, type mismatch, identity key when the spec checks it, then every
// prop, state and tree prop.
func genEquivalence(s model.Spec) (Fragment, error) {
	f := Empty()
	class := classExpr(s)
	ref := refName(s)

	var c Code
	c.If("%s(%s) == other", class, recv).Stmt("return true").End()
	c.Stmt("%s, ok := other.(*%s)", ref, ComponentType(s))
	c.If("!ok || %s == nil", ref).Stmt("return false").End()
	if s.ShouldCheckID() {
		c.If("%s.ID() == %s.ID()", recv, ref).Stmt("return true").End()
	}

	needMath := false
	groups := [][]model.Member{s.Props(), s.States(), s.TreeProps()}
	for _, group := range groups {
		for _, m := range group {
			cond, usesMath := differs(m.Type, fieldRef(recv, m), fieldRef(ref, m))
			needMath = needMath || usesMath
			c.If("%s", cond).Stmt("return false").End()
		}
	}
	c.Stmt("return true")

	f.Methods = append(f.Methods, Method{
		Recv:    recv,
		Name:    "IsEquivalentTo",
		Params:  []Param{{Name: "other", Type: class}},
		Results: "bool",
		Body:    c.Lines(),
	})
	if needMath {
		f.Imports = append(f.Imports, "math")
	}
	return f, nil
}

// differs returns a condition that holds when a and b are not equivalent,
// chosen by the kind of t.
func differs(t model.Type, a, b string) (cond string, usesMath bool) {
	switch t.Kind {
	case model.KindFloat32:
		return fmt.Sprintf("math.Float32bits(%s) != math.Float32bits(%s)", a, b), true
	case model.KindFloat64:
		return fmt.Sprintf("math.Float64bits(%s) != math.Float64bits(%s)", a, b), true
	case model.KindSlice:
		return fmt.Sprintf("!%s.SlicesEqual(%s, %s)", runtimePkg, a, b), false
	case model.KindArray:
		return fmt.Sprintf("!%s.SlicesEqual(%s[:], %s[:])", runtimePkg, a, b), false
	case model.KindReference:
		return fmt.Sprintf("%s.ShouldUpdateReference(%s, %s)", runtimePkg, a, b), false
	case model.KindComponent, model.KindSection:
		return fmt.Sprintf("!%s.Equivalent(%s, %s)", runtimePkg, a, b), false
	case model.KindPrimitive:
		return fmt.Sprintf("%s != %s", a, b), false
	default:
		return fmt.Sprintf("!%s.Equal(%s, %s)", runtimePkg, a, b), false
	}
}
