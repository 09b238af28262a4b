package gen

import (
	"specc/internal/model"
)

// genInterStageCopy emits CopyInterStageImpl, which carries every
// inter-stage cache over from another instance of the same component.
func genInterStageCopy(s model.Spec) (Fragment, error) {
	f := Empty()
	caches := s.InterStageInputs()
	if len(caches) == 0 {
		return f, nil
	}
	ref := refName(s)

	var c Code
	c.Stmt("%s, ok := other.(*%s)", ref, ComponentType(s))
	c.If("!ok || %s == nil", ref).Stmt("return").End()
	for _, m := range caches {
		c.Stmt("%s = %s", fieldRef(recv, m), fieldRef(ref, m))
	}
	f.Methods = append(f.Methods, Method{
		Recv:   recv,
		Name:   "CopyInterStageImpl",
		Params: []Param{{Name: "other", Type: classExpr(s)}},
		Body:   c.Lines(),
	})
	return f, nil
}

func nestedMembers(s model.Spec) []model.Member {
	var out []model.Member
	for _, group := range [][]model.Member{s.Props(), s.TreeProps()} {
		for _, m := range group {
			if m.Type.Kind == model.KindComponent || m.Type.Kind == model.KindSection {
				out = append(out, m)
			}
		}
	}
	return out
}

// needsShallowCopy reports whether the plain struct copy the runtime falls
// back to would be wrong for s.
func needsShallowCopy(s model.Spec) bool {
	return len(nestedMembers(s)) > 0 ||
		len(s.InterStageInputs()) > 0 ||
		len(s.UpdateStateMethods()) > 0
}

// genShallowCopy emits MakeShallowCopy. Nested components are copied so the
// clone shares no component with the original; caches are reset and a fresh
// state container installed unless a deep copy was requested.
func genShallowCopy(s model.Spec) (Fragment, error) {
	f := Empty()
	if !needsShallowCopy(s) {
		return f, nil
	}

	var c Code
	c.Stmt("component := *%s", recv)
	for _, m := range nestedMembers(s) {
		field := fieldRef("component", m)
		c.If("%s != nil", field).
			Stmt("%s = %s.ShallowCopy(%s)", field, runtimePkg, field).
			End()
	}

	var reset Code
	for _, m := range s.InterStageInputs() {
		reset.Stmt("%s.Reset(&%s)", runtimePkg, fieldRef("component", m))
	}
	if s.HasState() {
		reset.Stmt("component.%s = &%s{}", StateContainerField, instance(s, StateContainerName(s)))
	}
	resetLines := reset.Lines()

	var params []Param
	if s.HasDeepCopy() {
		params = []Param{{Name: "deepCopy", Type: "bool"}}
		if len(resetLines) > 0 {
			c.If("!deepCopy")
			for _, line := range resetLines {
				c.Stmt("%s", line)
			}
			c.End()
		}
	} else {
		for _, line := range resetLines {
			c.Stmt("%s", line)
		}
	}
	c.Stmt("return &component")

	f.Methods = append(f.Methods, Method{
		Recv:    recv,
		Name:    "MakeShallowCopy",
		Params:  params,
		Results: classExpr(s),
		Body:    c.Lines(),
	})
	return f, nil
}
