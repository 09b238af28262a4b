package model

// StateByName returns the State member called name.
func StateByName(s Spec, name string) (Member, bool) {
	return memberByName(s.States(), name)
}

// PropByName returns the Prop member called name.
func PropByName(s Spec, name string) (Member, bool) {
	return memberByName(s.Props(), name)
}

// ReferencedMemberForDiff resolves the Prop or State a render diff shadows.
// Props win when both roles share the name, which validation rejects anyway.
func ReferencedMemberForDiff(s Spec, d RenderDiff) (Member, bool) {
	if m, ok := PropByName(s, d.Name); ok {
		return m, true
	}
	return StateByName(s, d.Name)
}

func memberByName(members []Member, name string) (Member, bool) {
	for _, m := range members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// InjectedParams collects the injected parameters declared on delegate and
// event methods. The first occurrence of a name wins.
func InjectedParams(s Spec) []Param {
	out := []Param{}
	seen := make(map[string]struct{})
	for _, m := range s.Methods() {
		for _, p := range m.ParamsOf(ParamInjected) {
			if _, dup := seen[p.Name]; dup {
				continue
			}
			seen[p.Name] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// StateUpdateParams returns the update-time arguments of an update-state
// method, in declaration order.
func StateUpdateParams(m Method) []Param {
	return m.ParamsOf(ParamParam)
}
