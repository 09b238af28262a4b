package testkit

import "specc/internal/model"

// Every fixture constructor returns a fresh spec so tests can build two
// independent IR instances from identical input.

func prop(name, typ string, vars ...string) model.Member {
	return model.Member{Role: model.RoleProp, Name: name, Type: model.MustType(typ, vars...)}
}

func member(role model.Role, name, typ string, vars ...string) model.Member {
	return model.Member{Role: role, Name: name, Type: model.MustType(typ, vars...)}
}

func param(role model.ParamRole, name, typ string, vars ...string) model.Param {
	return model.Param{Role: role, Name: name, Type: model.MustType(typ, vars...)}
}

// MountDecl is the declaration behind FullMount. It exercises every member
// role and every delegate method kind a mount spec may carry.
func MountDecl() model.Decl {
	text := prop("text", "string")
	text.ResType = model.ResString
	size := prop("size", "float32")
	size.Optional = true
	size.Default = "12"
	selected := member(model.RoleState, "selected", "bool")
	selected.CanUpdateLazily = true

	return model.Decl{
		QualifiedName: "example.com/widgets.BadgeSpec",
		Public:        true,
		Doc:           "Badge draws a label with an optional counter.",
		Tags:          []string{"widgets"},
		Imports:       []string{"image", "log/slog"},
		Members: []model.Member{
			text,
			size,
			prop("weight", "float64"),
			prop("labels", "[]string"),
			prop("icon", "runtime.Reference[image.Image]"),
			prop("child", "runtime.Component"),
			member(model.RoleState, "count", "int"),
			selected,
			member(model.RoleTreeProp, "theme", "*Theme"),
			member(model.RoleInterStageInput, "measuredWidth", "int"),
			member(model.RoleInjected, "logger", "*slog.Logger"),
			member(model.RoleEventHandler, "ClickEvent", "ClickEvent"),
			member(model.RoleEventTrigger, "FocusEvent", "FocusEvent"),
		},
		Methods: []model.Method{
			{
				Kind: model.MethodCreateInitialState,
				Name: "onCreateInitialState",
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamStateValue, "count", "*int"),
					param(model.ParamStateValue, "selected", "*bool"),
				},
			},
			{
				Kind: model.MethodCreateService,
				Name: "onCreateService",
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamInjected, "logger", "*slog.Logger"),
				},
				Returns: model.MustType("any"),
			},
			{
				Kind: model.MethodCreateLayout,
				Name: "onMount",
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamProp, "text", "string"),
					param(model.ParamState, "count", "int"),
					param(model.ParamTreeProp, "theme", "*Theme"),
					param(model.ParamInterStageInput, "measuredWidth", "int"),
				},
			},
			{
				Kind: model.MethodUpdateState,
				Name: "increment",
				Params: []model.Param{
					param(model.ParamStateValue, "count", "*int"),
					param(model.ParamParam, "delta", "int"),
					param(model.ParamStateValue, "selected", "*bool"),
					param(model.ParamParam, "reason", "string"),
				},
			},
			{
				Kind: model.MethodUpdateState,
				Name: "toggleSelected",
				Params: []model.Param{
					param(model.ParamStateValue, "selected", "*bool"),
				},
			},
			{
				Kind: model.MethodShouldUpdate,
				Name: "shouldUpdate",
				Params: []model.Param{
					param(model.ParamProp, "text", "string"),
					param(model.ParamState, "count", "int"),
				},
				Returns: model.MustType("bool"),
			},
			{
				Kind:  model.MethodEvent,
				Name:  "onClick",
				Event: model.MustType("ClickEvent"),
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamFromEvent, "x", "int"),
					param(model.ParamProp, "text", "string"),
					param(model.ParamInjected, "logger", "*slog.Logger"),
				},
			},
			{
				Kind:  model.MethodTrigger,
				Name:  "onFocus",
				Event: model.MustType("FocusEvent"),
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamProp, "text", "string"),
				},
			},
		},
		Diffs:     []model.RenderDiff{{Name: "text"}, {Name: "count"}},
		Injection: &model.Injection{Framework: "wire"},
	}
}

// FullMount returns a mount spec using every role, kind and flag.
func FullMount() *model.MountSpec {
	return model.NewMountSpec(MountDecl(), model.MountFlags{
		CanMountIncrementally: true,
		ShouldUseDisplayList:  true,
		PoolSize:              3,
		CanPreallocate:        true,
		MountType:             "drawable",
	})
}

// SectionDecl is the declaration behind FullSection: a generic section with
// lazy state, caches and a nested section prop.
func SectionDecl() model.Decl {
	prop2 := prop("prop2", "string")
	prop2.Optional = true
	prop2.Default = `"none"`
	state2 := member(model.RoleState, "state2", "string")
	state2.CanUpdateLazily = true

	return model.Decl{
		QualifiedName: "example.com/lists.FullGroupSectionSpec",
		TypeVariables: []string{"T"},
		Members: []model.Member{
			prop("prop1", "int"),
			prop2,
			prop("data", "[]T", "T"),
			prop("header", "runtime.Section"),
			member(model.RoleState, "state1", "T", "T"),
			state2,
			member(model.RoleTreeProp, "treeProp", "int"),
			member(model.RoleInterStageInput, "cache", "int"),
			member(model.RoleEventHandler, "TestEvent", "TestEvent"),
		},
		Methods: []model.Method{
			{
				Kind: model.MethodCreateInitialState,
				Name: "onCreateInitialState",
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamProp, "prop1", "int"),
					param(model.ParamStateValue, "state1", "*T", "T"),
					param(model.ParamStateValue, "state2", "*string"),
				},
			},
			{
				Kind: model.MethodCreateTreeProp,
				Name: "onCreateTreeProp",
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamProp, "prop1", "int"),
				},
				Returns: model.MustType("int"),
			},
			{
				Kind: model.MethodCreateLayout,
				Name: "onCreateChildren",
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamProp, "prop2", "string"),
					param(model.ParamState, "state1", "T", "T"),
				},
			},
			{
				Kind: model.MethodUpdateState,
				Name: "updateState",
				Params: []model.Param{
					param(model.ParamStateValue, "state1", "*T", "T"),
					param(model.ParamParam, "param", "T", "T"),
				},
			},
			{Kind: model.MethodBindService, Name: "bindService"},
			{Kind: model.MethodUnbindService, Name: "unbindService"},
			{Kind: model.MethodRefresh, Name: "onRefresh"},
			{Kind: model.MethodDataBound, Name: "onDataBound"},
			{
				Kind: model.MethodViewportChanged,
				Name: "onViewportChanged",
				Params: []model.Param{
					param(model.ParamContext, "first", "int"),
					param(model.ParamContext, "last", "int"),
				},
			},
			{
				Kind:  model.MethodEvent,
				Name:  "testEvent",
				Event: model.MustType("TestEvent"),
				Params: []model.Param{
					param(model.ParamContext, "c", "*runtime.Context"),
					param(model.ParamFromEvent, "arg", "int"),
					param(model.ParamParam, "param", "int"),
				},
			},
		},
		Diffs: []model.RenderDiff{{Name: "prop1"}, {Name: "state1"}},
	}
}

// FullSection returns a section render spec that supports deep copy.
func FullSection() *model.RenderSpec {
	return model.NewRenderSpec(SectionDecl(), model.RenderFlags{Section: true})
}

// Plain returns a render spec with props only: no state, diffs, caches or
// update-state methods.
func Plain() *model.RenderSpec {
	return model.NewRenderSpec(model.Decl{
		QualifiedName: "example.com/widgets.LabelSpec",
		Members: []model.Member{
			prop("text", "string"),
			prop("scale", "float64"),
		},
		Methods: []model.Method{{
			Kind: model.MethodCreateLayout,
			Name: "onCreateLayout",
			Params: []model.Param{
				param(model.ParamContext, "c", "*runtime.Context"),
				param(model.ParamProp, "text", "string"),
			},
		}},
	}, model.RenderFlags{})
}
