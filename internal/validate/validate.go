// Package validate checks the shape of a spec before any code is generated.
// It is the only producer of user-facing errors about malformed specs;
// generators downstream assume a spec that passed here.
package validate

import (
	"fmt"
	"go/token"

	"specc/internal/diag"
	"specc/internal/gen"
	"specc/internal/model"
)

// Spec validates s and returns every finding, errors and warnings, in a
// deterministic order: check by check, declarations in order. An empty
// result means s is valid. Spec never mutates s.
func Spec(s model.Spec) []diag.Diagnostic {
	v := &validator{out: []diag.Diagnostic{}}
	if s == nil {
		return v.out
	}
	v.spec = s
	v.name = s.SpecName()
	v.members = s.Members()
	v.methods = s.Methods()

	v.checkIdentity()
	v.checkMembers()
	v.checkDiffs()
	v.checkMethodKinds()
	v.checkParams()
	v.checkGeneratedNames()
	v.checkTriggers()
	v.checkInjection()
	v.checkMountFlags()
	v.checkDefaults()
	return v.out
}

// Valid reports whether diags contains no errors; warnings do not block
// generation.
func Valid(diags []diag.Diagnostic) bool {
	return !diag.HasErrors(diags)
}

type validator struct {
	spec    model.Spec
	name    string
	members []model.Member
	methods []model.Method
	out     []diag.Diagnostic
}

func (v *validator) errorf(code diag.Code, o diag.Origin, format string, args ...any) *diag.Diagnostic {
	v.out = append(v.out, diag.NewError(code, o, fmt.Sprintf(format, args...)))
	return &v.out[len(v.out)-1]
}

func (v *validator) warnf(code diag.Code, o diag.Origin, format string, args ...any) *diag.Diagnostic {
	v.out = append(v.out, diag.NewWarning(code, o, fmt.Sprintf(format, args...)))
	return &v.out[len(v.out)-1]
}

func (v *validator) specOrigin() diag.Origin {
	return diag.Origin{Spec: v.name}
}

func (v *validator) memberOrigin(m model.Member) diag.Origin {
	return diag.Origin{Spec: v.name, Member: m.Name}
}

func (v *validator) paramOrigin(m model.Method, p model.Param) diag.Origin {
	return diag.Origin{Spec: v.name, Method: m.Name, Param: p.Name}
}

func (v *validator) methodOrigin(m model.Method) diag.Origin {
	return diag.Origin{Spec: v.name, Method: m.Name}
}

func (v *validator) checkIdentity() {
	if !token.IsIdentifier(v.spec.ComponentName()) {
		v.errorf(diag.SpecInvalidName, v.specOrigin(), "component name %q is not a valid Go identifier", v.spec.ComponentName())
	}
	seen := make(map[string]bool)
	for _, tv := range v.spec.TypeVariables() {
		if !token.IsIdentifier(tv) {
			v.errorf(diag.SpecInvalidName, v.specOrigin(), "type variable %q is not a valid Go identifier", tv)
			continue
		}
		if seen[tv] {
			v.errorf(diag.SpecDuplicateTypeVar, v.specOrigin(), "type variable %q declared more than once", tv)
		}
		seen[tv] = true
	}
}

func (v *validator) reserved(o diag.Origin, what, name string) {
	v.errorf(diag.SpecReservedName, o, "%s %q clashes with a name generated code declares", what, name)
}

// checkMembers enforces unique member names across all roles, then unique
// field names: event slots are renamed (ClickEvent -> clickEventHandler)
// and may collide with a prop of that name.
func (v *validator) checkMembers() {
	names := make(map[string]model.Member)
	fields := make(map[string]model.Member)
	for _, m := range v.members {
		if !token.IsIdentifier(m.Name) {
			v.errorf(diag.SpecInvalidName, v.memberOrigin(m), "%s name %q is not a valid Go identifier", m.Role, m.Name)
			continue
		}
		if m.Type.IsZero() {
			v.errorf(diag.SpecMissingType, v.memberOrigin(m), "%s %q has no type", m.Role, m.Name)
		}
		if prev, dup := names[m.Name]; dup {
			d := v.errorf(diag.SpecDuplicateField, v.memberOrigin(m), "%s %q has the same name as %s %q", m.Role, m.Name, prev.Role, prev.Name)
			*d = d.WithNote(v.memberOrigin(prev), "first declared here")
			continue
		}
		names[m.Name] = m

		// State lives in the state container, everything else on the component.
		if m.Role == model.RoleState {
			if gen.Reserved(gen.ScopeStateContainer, m.Name) {
				v.reserved(v.memberOrigin(m), "state", m.Name)
			}
			continue
		}
		field := m.FieldName()
		if gen.Reserved(gen.ScopeComponent, field) {
			v.reserved(v.memberOrigin(m), m.Role.String()+" field", field)
			continue
		}
		if prev, dup := fields[field]; dup {
			d := v.errorf(diag.SpecDuplicateField, v.memberOrigin(m), "%s %q collides with %s %q on field %q", m.Role, m.Name, prev.Role, prev.Name, field)
			*d = d.WithNote(v.memberOrigin(prev), "first declared here")
			continue
		}
		fields[field] = m
	}
}

func (v *validator) checkDiffs() {
	seen := make(map[string]bool)
	for _, d := range v.spec.RenderDiffs() {
		o := diag.Origin{Spec: v.name, Member: d.Name}
		if seen[d.Name] {
			v.errorf(diag.SpecDuplicateDiff, o, "render diff %q declared more than once", d.Name)
			continue
		}
		seen[d.Name] = true
		if _, ok := model.ReferencedMemberForDiff(v.spec, d); !ok {
			diagnostic := v.errorf(diag.SpecUnresolvedDiff, o, "render diff %q references no prop or state", d.Name)
			*diagnostic = diagnostic.WithFix(fmt.Sprintf("declare a prop or state named %q, or drop the diff", d.Name))
			continue
		}
		if gen.Reserved(gen.ScopeRenderData, d.Name) {
			v.reserved(o, "render diff", d.Name)
		}
	}
}

// checkGeneratedNames rejects specs whose distinct names map to the same
// generated identifier: bump and Bump share a state-update type, and a
// member may shadow a factory method.
func (v *validator) checkGeneratedNames() {
	factories := make(map[string]bool)
	types := make(map[string]model.Method)
	for _, m := range v.spec.UpdateStateMethods() {
		if !token.IsIdentifier(m.Name) {
			continue
		}
		if gen.Reserved(gen.ScopeDelegateCall, m.Name) {
			v.reserved(v.methodOrigin(m), "update-state method", m.Name)
		}
		name := gen.StateUpdateName(v.spec, m)
		if prev, dup := types[name]; dup {
			if prev.Name != m.Name {
				d := v.errorf(diag.SpecDuplicateMethodName, v.methodOrigin(m), "update-state methods %q and %q both generate %s", prev.Name, m.Name, name)
				*d = d.WithNote(v.methodOrigin(prev), "first declared here")
			}
			continue
		}
		types[name] = m
		factories[gen.StateUpdateFactory(m)] = true
	}

	lazy := make(map[string]model.Member)
	for _, st := range v.spec.States() {
		if !st.CanUpdateLazily || !token.IsIdentifier(st.Name) {
			continue
		}
		name := gen.LazyUpdateFactory(st)
		if prev, dup := lazy[name]; dup {
			if prev.Name != st.Name {
				d := v.errorf(diag.SpecDuplicateField, v.memberOrigin(st), "lazy states %q and %q both generate %s", prev.Name, st.Name, name)
				*d = d.WithNote(v.memberOrigin(prev), "first declared here")
			}
			continue
		}
		lazy[name] = st
		factories[name] = true
	}

	for _, m := range v.members {
		if m.Role != model.RoleState && factories[m.FieldName()] {
			v.reserved(v.memberOrigin(m), m.Role.String()+" field", m.FieldName())
		}
	}
}

func (v *validator) checkMethodKinds() {
	kinds := make(map[model.MethodKind]model.Method)
	names := make(map[string]bool)
	for _, m := range v.methods {
		if !token.IsIdentifier(m.Name) {
			v.errorf(diag.SpecInvalidName, v.methodOrigin(m), "%s method name %q is not a valid Go identifier", m.Kind, m.Name)
		} else if names[m.Name] {
			v.errorf(diag.SpecDuplicateMethodName, v.methodOrigin(m), "method %q declared more than once", m.Name)
		}
		names[m.Name] = true

		if !m.Kind.Singleton() {
			continue
		}
		if prev, dup := kinds[m.Kind]; dup {
			d := v.errorf(diag.SpecDuplicateSingleton, v.methodOrigin(m), "at most one %s method is allowed", m.Kind)
			*d = d.WithNote(v.methodOrigin(prev), "first declared here")
			continue
		}
		kinds[m.Kind] = m
	}
}

// allowedRole reports whether a parameter of role r may appear on a method of
// kind k.
func allowedRole(k model.MethodKind, r model.ParamRole) bool {
	switch k {
	case model.MethodUpdateState:
		return r == model.ParamStateValue || r == model.ParamParam
	case model.MethodShouldUpdate:
		return r == model.ParamProp || r == model.ParamState
	}
	switch r {
	case model.ParamFromEvent:
		return k == model.MethodEvent || k == model.MethodTrigger
	case model.ParamParam:
		return k == model.MethodEvent || k == model.MethodTrigger
	case model.ParamStateValue:
		return k == model.MethodCreateInitialState
	}
	return true
}

func (v *validator) checkParams() {
	for _, m := range v.methods {
		seen := make(map[string]bool)
		for _, p := range m.Params {
			o := v.paramOrigin(m, p)
			switch {
			case p.Name == "":
				v.errorf(diag.SpecParamUnnamed, v.methodOrigin(m), "%s method %q has an unnamed %s parameter", m.Kind, m.Name, p.Role)
				continue
			case !token.IsIdentifier(p.Name):
				v.errorf(diag.SpecInvalidName, o, "parameter name %q is not a valid Go identifier", p.Name)
				continue
			case seen[p.Name]:
				v.errorf(diag.SpecInvalidName, o, "parameter %q declared more than once", p.Name)
				continue
			}
			seen[p.Name] = true
			if m.Kind == model.MethodUpdateState && p.Role == model.ParamParam && gen.Reserved(gen.ScopeStateUpdate, p.Name) {
				v.reserved(o, "state-update argument", p.Name)
				continue
			}

			if p.Type.IsZero() {
				v.errorf(diag.SpecMissingType, o, "parameter %q has no type", p.Name)
			}
			if !allowedRole(m.Kind, p.Role) {
				v.errorf(diag.SpecParamRoleNotAllowed, o, "%s parameter %q is not allowed on a %s method", p.Role, p.Name, m.Kind)
				continue
			}
			v.checkBinding(m, p)
		}
	}
}

// checkBinding resolves a member-bound parameter against the declared members.
func (v *validator) checkBinding(m model.Method, p model.Param) {
	role, bound := p.Role.MemberRole()
	if !bound {
		return
	}
	var target *model.Member
	for i := range v.members {
		if v.members[i].Role == role && v.members[i].Name == p.Name {
			target = &v.members[i]
			break
		}
	}
	o := v.paramOrigin(m, p)
	if target == nil {
		v.errorf(diag.SpecParamUnknownMember, o, "%s parameter %q does not match any declared %s", p.Role, p.Name, role)
		return
	}
	// StateValue holders wrap the state type; their shape is up to the author.
	if p.Role == model.ParamStateValue || p.Type.IsZero() || target.Type.IsZero() {
		return
	}
	if p.Type.Expr != target.Type.Expr {
		d := v.errorf(diag.SpecParamTypeMismatch, o, "parameter %q has type %s, %s %q is %s", p.Name, p.Type.Expr, role, target.Name, target.Type.Expr)
		*d = d.WithNote(v.memberOrigin(*target), "declared here")
	}
}

func (v *validator) checkTriggers() {
	lazy := make(map[string]bool)
	for _, st := range v.spec.States() {
		if st.CanUpdateLazily {
			lazy[st.Name] = true
		}
	}
	slots := v.spec.EventTriggers()
	handled := make(map[string]bool)

	for _, m := range v.methods {
		if m.Kind != model.MethodEvent && m.Kind != model.MethodTrigger {
			continue
		}
		if m.Event.IsZero() {
			v.errorf(diag.SpecEventTypeMissing, v.methodOrigin(m), "%s method %q does not declare its event type", m.Kind, m.Name)
			continue
		}
		if m.Kind != model.MethodTrigger {
			continue
		}
		for _, p := range m.Params {
			if (p.Role == model.ParamState || p.Role == model.ParamStateValue) && lazy[p.Name] {
				v.errorf(diag.SpecTriggerLazyState, v.paramOrigin(m, p),
					"trigger %q cannot take lazily-updatable state %q", m.Name, p.Name)
			}
		}
		slot := ""
		for _, s := range slots {
			if s.Type.Expr == m.Event.Expr {
				slot = s.Name
				break
			}
		}
		if slot == "" {
			v.errorf(diag.SpecTriggerWithoutSlot, v.methodOrigin(m), "trigger %q handles %s but no trigger slot declares it", m.Name, m.Event.Expr)
			continue
		}
		handled[slot] = true
	}

	for _, s := range slots {
		if !handled[s.Name] {
			v.errorf(diag.SpecSlotWithoutTrigger, v.memberOrigin(s), "trigger slot %q has no trigger method for %s", s.Name, s.Type.Expr)
		}
	}
}

func (v *validator) checkInjection() {
	if v.spec.HasInjectedDependencies() {
		return
	}
	for _, m := range v.spec.InjectedMembers() {
		d := v.errorf(diag.SpecInjectionMissing, v.memberOrigin(m), "injected member %q requires an injection descriptor", m.Name)
		*d = d.WithFix("add an [injection] table naming the framework")
	}
}

func (v *validator) checkMountFlags() {
	ms, ok := v.spec.(*model.MountSpec)
	if !ok {
		return
	}
	if ms.PoolSize() < 0 {
		v.errorf(diag.SpecNegativePoolSize, v.specOrigin(), "pool size %d is negative", ms.PoolSize())
	}
	if ms.CanPreallocate() && ms.PoolSize() <= 0 {
		v.errorf(diag.SpecPreallocateNoPool, v.specOrigin(), "preallocation requires a positive pool size")
	}
	switch ms.MountType() {
	case "none", "view", "drawable":
	default:
		v.errorf(diag.SpecInvalidMountType, v.specOrigin(), "mount type %q is not one of none, view, drawable", ms.MountType())
	}
}

func (v *validator) checkDefaults() {
	for _, m := range v.spec.Props() {
		if m.Default != "" && !m.Optional {
			d := v.warnf(diag.SpecDefaultOnRequiredProp, v.memberOrigin(m), "prop %q has a default but is not optional; the default is only used before the parent sets it", m.Name)
			*d = d.WithFix("mark the prop optional")
		}
	}
}
