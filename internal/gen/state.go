package gen

import (
	"fmt"
	"strings"

	"specc/internal/model"
)

// genStateContainer emits the stateContainer field, its accessor and the
// nested container type. Specs without state get an empty fragment.
func genStateContainer(s model.Spec) (Fragment, error) {
	f := Empty()
	if !s.HasState() {
		return f, nil
	}
	name := instance(s, StateContainerName(s))

	f.Fields = append(f.Fields, Field{
		Name: StateContainerField,
		Type: "*" + name,
		Init: "&" + name + "{}",
	})
	f.Methods = append(f.Methods, Method{
		Recv:    recv,
		Name:    "StateContainer",
		Results: runtimePkg + ".StateContainer",
		Body:    []string{"return " + recv + "." + StateContainerField},
	})

	decl := TypeDecl{
		Name: StateContainerName(s),
		Doc:  fmt.Sprintf("%s holds the state of %s.", StateContainerName(s), s.ComponentName()),
	}
	for _, m := range s.States() {
		decl.Fields = append(decl.Fields, Field{Name: m.Name, Type: m.Type.Expr, Doc: m.Doc})
	}
	apply, err := applyStateUpdate(s)
	if err != nil {
		return Fragment{}, err
	}
	decl.Methods = append(decl.Methods, stateNames(s), apply)
	f.Types = append(f.Types, decl)
	return f, nil
}

func stateNames(s model.Spec) Method {
	names := make([]string, 0, len(s.States()))
	for _, m := range s.States() {
		names = append(names, fmt.Sprintf("%q", m.Name))
	}
	return Method{
		Recv:     "s",
		RecvType: StateContainerName(s),
		Name:     "StateNames",
		Results:  "[]string",
		Body:     []string{"return []string{" + strings.Join(names, ", ") + "}"},
	}
}

// applyStateUpdate dispatches an update action to the delegate that
// implements it. Delegates receive pointers to the state they may change.
func applyStateUpdate(s model.Spec) (Method, error) {
	updates := s.UpdateStateMethods()
	var lazy []model.Member
	for _, m := range s.States() {
		if m.CanUpdateLazily {
			lazy = append(lazy, m)
		}
	}

	bind := "u := "
	usesBinding := len(lazy) > 0
	for _, m := range updates {
		if len(model.StateUpdateParams(m)) > 0 {
			usesBinding = true
		}
	}
	if !usesBinding {
		bind = ""
	}

	var c Code
	if len(updates) > 0 || len(lazy) > 0 {
		c.Block("switch %supdate.(type)", bind)
		for _, m := range updates {
			args := make([]string, 0, len(m.Params))
			for _, p := range m.Params {
				switch p.Role {
				case model.ParamStateValue:
					if _, ok := model.StateByName(s, p.Name); !ok {
						return Method{}, fault(s.SpecName(), "stateContainer", "update-state %q binds unknown state %q", m.Name, p.Name)
					}
					args = append(args, "&s."+p.Name)
				case model.ParamParam:
					args = append(args, "u."+p.Name)
				default:
					return Method{}, fault(s.SpecName(), "stateContainer", "update-state %q takes %s parameter %q", m.Name, p.Role, p.Name)
				}
			}
			c.Case("case *%s", instance(s, StateUpdateName(s, m)))
			c.Stmt("%s(%s)", m.Name, strings.Join(args, ", "))
		}
		if len(lazy) > 0 {
			c.Case("case %s.LazyStateUpdate", runtimePkg)
			c.Block("switch u.Name")
			for _, m := range lazy {
				c.Case("case %q", m.Name)
				c.Stmt("s.%s = u.Value.(%s)", m.Name, m.Type.Expr)
			}
			c.End()
		}
		c.End()
	}

	return Method{
		Recv:     "s",
		RecvType: StateContainerName(s),
		Name:     "ApplyStateUpdate",
		Params:   []Param{{Name: "update", Type: runtimePkg + ".StateUpdate"}},
		Body:     c.Lines(),
	}, nil
}

// genUpdateFactories emits one create<Name>StateUpdate factory per
// update-state method, taking exactly its Param arguments in declaration
// order, plus one lazy-update factory per lazily-updatable state.
func genUpdateFactories(s model.Spec) (Fragment, error) {
	f := Empty()
	for _, m := range s.UpdateStateMethods() {
		typeName := instance(s, StateUpdateName(s, m))
		params := model.StateUpdateParams(m)
		fields := make([]string, 0, len(params))
		mp := make([]Param, 0, len(params))
		for _, p := range params {
			mp = append(mp, Param{Name: p.Name, Type: p.Type.Expr})
			fields = append(fields, p.Name+": "+p.Name)
		}
		f.Methods = append(f.Methods, Method{
			Recv:    recv,
			Name:    StateUpdateFactory(m),
			Params:  mp,
			Results: "*" + typeName,
			Body:    []string{"return &" + typeName + "{" + strings.Join(fields, ", ") + "}"},
		})
	}
	for _, m := range s.States() {
		if !m.CanUpdateLazily {
			continue
		}
		f.Methods = append(f.Methods, Method{
			Recv:    recv,
			Name:    LazyUpdateFactory(m),
			Params:  []Param{{Name: "value", Type: m.Type.Expr}},
			Results: runtimePkg + ".StateUpdate",
			Body:    []string{fmt.Sprintf("return %s.LazyStateUpdate{Name: %q, Value: value}", runtimePkg, m.Name)},
		})
	}
	return f, nil
}

// genStateUpdates emits the action type of every update-state method.
func genStateUpdates(s model.Spec) (Fragment, error) {
	f := Empty()
	for _, m := range s.UpdateStateMethods() {
		decl := TypeDecl{
			Name: StateUpdateName(s, m),
			Doc:  fmt.Sprintf("%s carries the arguments of %s.", StateUpdateName(s, m), m.Name),
		}
		for _, p := range model.StateUpdateParams(m) {
			decl.Fields = append(decl.Fields, Field{Name: p.Name, Type: p.Type.Expr})
		}
		decl.Methods = append(decl.Methods, Method{
			Recv:     "u",
			RecvType: StateUpdateName(s, m),
			Name:     "UpdateName",
			Results:  "string",
			Body:     []string{fmt.Sprintf("return %q", m.Name)},
		})
		f.Types = append(f.Types, decl)
	}
	return f, nil
}
