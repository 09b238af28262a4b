package gen

import (
	"fmt"
	"slices"
	"strings"

	"specc/internal/model"
)

// memberFields emits one field per member of role, in declaration order.
func memberFields(s model.Spec, role model.Role) []Field {
	out := []Field{}
	for _, m := range s.Members() {
		if m.Role != role {
			continue
		}
		f := Field{Name: m.FieldName(), Type: m.Type.Expr, Doc: m.Doc}
		switch role {
		case model.RoleProp:
			f.Tag = propTag(m)
			f.Init = m.Default
		case model.RoleEventHandler:
			f.Type = "*" + runtimePkg + ".EventHandler"
		case model.RoleEventTrigger:
			f.Type = "*" + runtimePkg + ".EventTrigger"
		}
		out = append(out, f)
	}
	return out
}

func propTag(m model.Member) string {
	var opts []string
	if m.ResType != model.ResNone {
		opts = append(opts, "resType="+m.ResType.String())
	}
	if m.Optional {
		opts = append(opts, "optional")
	}
	if len(opts) == 0 {
		return ""
	}
	return fmt.Sprintf(`prop:"%s"`, strings.Join(opts, ","))
}

// genInjected emits injected fields in the order delegates first take them;
// members no delegate takes follow in declaration order.
func genInjected(s model.Spec) (Fragment, error) {
	f := Empty()
	inj, ok := s.Injection()
	if !ok {
		return f, nil
	}
	used := model.InjectedParams(s)
	rank := make(map[string]int, len(used))
	for i, p := range used {
		rank[p.Name] = i
	}
	order := func(fd Field) int {
		if r, ok := rank[fd.Name]; ok {
			return r
		}
		return len(used)
	}
	f.Fields = memberFields(s, model.RoleInjected)
	slices.SortStableFunc(f.Fields, func(a, b Field) int { return order(a) - order(b) })
	for i := range f.Fields {
		f.Fields[i].Tag = fmt.Sprintf(`inject:"%s"`, inj.Framework)
	}
	return f, nil
}

func genProps(s model.Spec) (Fragment, error) {
	f := Empty()
	f.Fields = memberFields(s, model.RoleProp)
	return f, nil
}

func genTreeProps(s model.Spec) (Fragment, error) {
	f := Empty()
	f.Fields = memberFields(s, model.RoleTreeProp)
	return f, nil
}

func genInterStage(s model.Spec) (Fragment, error) {
	f := Empty()
	f.Fields = memberFields(s, model.RoleInterStageInput)
	return f, nil
}

func genEventHandlers(s model.Spec) (Fragment, error) {
	f := Empty()
	f.Fields = memberFields(s, model.RoleEventHandler)
	return f, nil
}

func genEventTriggers(s model.Spec) (Fragment, error) {
	f := Empty()
	f.Fields = memberFields(s, model.RoleEventTrigger)
	return f, nil
}

// genIdentity emits the informational SimpleName accessor.
func genIdentity(s model.Spec) (Fragment, error) {
	f := Empty()
	f.Methods = append(f.Methods, Method{
		Recv:    recv,
		Name:    "SimpleName",
		Results: "string",
		Body:    []string{fmt.Sprintf("return %q", s.ComponentName())},
	})
	return f, nil
}
