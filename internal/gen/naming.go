package gen

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"specc/internal/model"
)

const (
	runtimePkg = model.RuntimePackage

	// StateContainerField holds the component's state container.
	StateContainerField = "stateContainer"
	// RenderDataField holds the previous render-data snapshot.
	RenderDataField = "previousRenderData"

	recv = "c"
)

// NameScope is a namespace generated code shares with names taken from a
// spec.
type NameScope uint8

const (
	// ScopeComponent holds the fields of the component type.
	ScopeComponent NameScope = iota
	// ScopeStateContainer holds state fields.
	ScopeStateContainer
	// ScopeRenderData holds render-diff fields.
	ScopeRenderData
	// ScopeStateUpdate holds update-state Param fields and factory arguments.
	ScopeStateUpdate
	// ScopeDelegateCall holds update-state delegates called from
	// ApplyStateUpdate.
	ScopeDelegateCall
)

var reservedNames = [...]map[string]bool{
	ScopeComponent: {
		"ComponentBase":           true,
		"SectionBase":             true,
		StateContainerField:       true,
		RenderDataField:           true,
		"ID":                      true,
		"SimpleName":              true,
		"IsEquivalentTo":          true,
		"StateContainer":          true,
		"RecordRenderData":        true,
		"ApplyPreviousRenderData": true,
		"IsPureRender":            true,
		"CanMountIncrementally":   true,
		"ShouldUseDisplayList":    true,
		"PoolSize":                true,
		"CanPreallocate":          true,
		"MountType":               true,
		"CopyInterStageImpl":      true,
		"MakeShallowCopy":         true,
	},
	ScopeStateContainer: {"StateNames": true, "ApplyStateUpdate": true},
	ScopeRenderData:     {"Copy": true, "Record": true},
	ScopeStateUpdate:    {"UpdateName": true, recv: true},
	ScopeDelegateCall:   {"s": true, "u": true, "update": true, runtimePkg: true},
}

// Reserved reports whether generated code already declares name in scope.
func Reserved(scope NameScope, name string) bool {
	if int(scope) >= len(reservedNames) {
		return false
	}
	return reservedNames[scope][name]
}

// upperFirst title-cases the first letter and keeps the rest as written:
// toggleSelected -> ToggleSelected.
func upperFirst(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// instance returns name instantiated with the spec's type variables:
// Box -> Box[T].
func instance(s model.Spec, name string) string {
	tv := s.TypeVariables()
	if len(tv) == 0 {
		return name
	}
	return name + "[" + strings.Join(tv, ", ") + "]"
}

// ComponentType is the instantiated component type, e.g. Box[T].
func ComponentType(s model.Spec) string {
	return instance(s, s.ComponentName())
}

// StateContainerName is the nested state-container type name.
func StateContainerName(s model.Spec) string {
	return s.ComponentName() + "StateContainer"
}

// RenderDataName is the nested render-data type name.
func RenderDataName(s model.Spec) string {
	return s.ComponentName() + "RenderData"
}

// StateUpdateName is the action type built by an update-state method.
func StateUpdateName(s model.Spec, m model.Method) string {
	return s.ComponentName() + upperFirst(m.Name) + "StateUpdate"
}

// StateUpdateFactory is the factory method name for an update-state method.
func StateUpdateFactory(m model.Method) string {
	return "create" + upperFirst(m.Name) + "StateUpdate"
}

// LazyUpdateFactory is the factory method name for a lazy state update.
func LazyUpdateFactory(m model.Member) string {
	return "lazyUpdate" + upperFirst(m.Name)
}

func refName(s model.Spec) string {
	return model.LowerFirst(s.ComponentName()) + "Ref"
}

// classExpr is the runtime interface the component implements.
func classExpr(s model.Spec) string {
	return s.ComponentClass().Expr
}

// fieldRef is the expression reading member m off the component held in v.
func fieldRef(v string, m model.Member) string {
	if m.Role == model.RoleState {
		return v + "." + StateContainerField + "." + m.Name
	}
	return v + "." + m.FieldName()
}
