package model

// Role tags a declared member.
type Role uint8

const (
	RoleProp Role = iota + 1
	RoleState
	RoleTreeProp
	RoleInterStageInput
	RoleInjected
	RoleEventHandler
	RoleEventTrigger
)

// Roles lists every member role in field-group order.
var Roles = []Role{
	RoleInjected,
	RoleProp,
	RoleTreeProp,
	RoleInterStageInput,
	RoleEventHandler,
	RoleEventTrigger,
	RoleState,
}

func (r Role) String() string {
	switch r {
	case RoleProp:
		return "prop"
	case RoleState:
		return "state"
	case RoleTreeProp:
		return "tree_prop"
	case RoleInterStageInput:
		return "inter_stage"
	case RoleInjected:
		return "injected"
	case RoleEventHandler:
		return "event"
	case RoleEventTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// ParamRole tags a delegate method parameter with what it binds to.
type ParamRole uint8

const (
	// ParamContext is an unannotated framework argument (context, service,
	// viewport indices). It binds to nothing declared.
	ParamContext ParamRole = iota + 1
	ParamProp
	ParamState
	ParamTreeProp
	ParamInterStageInput
	ParamInjected
	// ParamStateValue is an output holder for a State member
	// (create-initial-state, update-state).
	ParamStateValue
	// ParamParam is an update-time argument.
	ParamParam
	// ParamFromEvent extracts a field of the event payload.
	ParamFromEvent
)

func (r ParamRole) String() string {
	switch r {
	case ParamContext:
		return "context"
	case ParamProp:
		return "prop"
	case ParamState:
		return "state"
	case ParamTreeProp:
		return "tree_prop"
	case ParamInterStageInput:
		return "inter_stage"
	case ParamInjected:
		return "injected"
	case ParamStateValue:
		return "state_value"
	case ParamParam:
		return "param"
	case ParamFromEvent:
		return "from_event"
	default:
		return "unknown"
	}
}

// MemberRole returns the member role a parameter binds to, if any.
func (r ParamRole) MemberRole() (Role, bool) {
	switch r {
	case ParamProp:
		return RoleProp, true
	case ParamState, ParamStateValue:
		return RoleState, true
	case ParamTreeProp:
		return RoleTreeProp, true
	case ParamInterStageInput:
		return RoleInterStageInput, true
	case ParamInjected:
		return RoleInjected, true
	default:
		return 0, false
	}
}

// ParseParamRole converts the textual role used by spec files.
func ParseParamRole(s string) (ParamRole, bool) {
	for r := ParamContext; r <= ParamFromEvent; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

// MethodKind tags a delegate method with the lifecycle callback it implements.
type MethodKind uint8

const (
	MethodCreateInitialState MethodKind = iota + 1
	MethodCreateTreeProp
	MethodCreateService
	MethodCreateLayout
	MethodUpdateState
	MethodBindService
	MethodUnbindService
	MethodRefresh
	MethodDataBound
	MethodShouldUpdate
	MethodViewportChanged
	MethodEvent
	MethodTrigger
)

func (k MethodKind) String() string {
	switch k {
	case MethodCreateInitialState:
		return "create_initial_state"
	case MethodCreateTreeProp:
		return "create_tree_prop"
	case MethodCreateService:
		return "create_service"
	case MethodCreateLayout:
		return "create_layout"
	case MethodUpdateState:
		return "update_state"
	case MethodBindService:
		return "bind_service"
	case MethodUnbindService:
		return "unbind_service"
	case MethodRefresh:
		return "refresh"
	case MethodDataBound:
		return "data_bound"
	case MethodShouldUpdate:
		return "should_update"
	case MethodViewportChanged:
		return "viewport_changed"
	case MethodEvent:
		return "event"
	case MethodTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Singleton reports whether a spec may declare at most one method of this kind.
func (k MethodKind) Singleton() bool {
	switch k {
	case MethodCreateTreeProp, MethodUpdateState, MethodEvent, MethodTrigger:
		return false
	default:
		return true
	}
}

// ParseMethodKind converts the textual kind used by spec files.
func ParseMethodKind(s string) (MethodKind, bool) {
	for k := MethodCreateInitialState; k <= MethodTrigger; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// ParseRole converts the textual member role used by spec files.
func ParseRole(s string) (Role, bool) {
	for r := RoleProp; r <= RoleEventTrigger; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}
