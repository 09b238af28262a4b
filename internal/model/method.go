package model

import "slices"

// Param is one delegate method parameter.
type Param struct {
	Name string
	Type Type
	Role ParamRole
}

// Method is a delegate method: a callback the spec author wrote, tagged with
// the lifecycle kind it implements.
type Method struct {
	Kind    MethodKind
	Name    string
	Params  []Param
	Returns Type // zero for no result

	// Event is the event type handled by MethodEvent / MethodTrigger.
	Event Type
}

// ParamsOf returns the parameters bound with the given role, in order.
func (m Method) ParamsOf(role ParamRole) []Param {
	out := make([]Param, 0, len(m.Params))
	for _, p := range m.Params {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

func (m Method) clone() Method {
	m.Params = slices.Clone(m.Params)
	if m.Params == nil {
		m.Params = []Param{}
	}
	return m
}

// RenderDiff pairs a diff parameter with the Prop or State member it shadows.
type RenderDiff struct {
	Name string
}

// Injection describes how injected dependencies are provided. The model only
// records that injection happens, never how.
type Injection struct {
	Framework string
}
