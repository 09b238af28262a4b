package runtime

// StateContainer holds a component's state between renders. The state
// update machinery applies queued actions to it.
type StateContainer interface {
	StateNames() []string
	ApplyStateUpdate(update StateUpdate)
}

// StateUpdate is a queued state-update action.
type StateUpdate interface {
	UpdateName() string
}

// LazyStateUpdate sets one lazily-updatable state without triggering a new
// layout.
type LazyStateUpdate struct {
	Name  string
	Value any
}

func (u LazyStateUpdate) UpdateName() string { return "lazy:" + u.Name }

// RenderData is a snapshot of the props and state a component compares
// across renders.
type RenderData any

// HasRenderData is implemented by components that record render data.
type HasRenderData interface {
	RecordRenderData(toRecycle RenderData) RenderData
	ApplyPreviousRenderData(previous RenderData)
}

// EventHandler routes an event to a delegate of the component that created
// it.
type EventHandler struct {
	// Owner is the ID of the component that declared the handler.
	Owner int64
	// Method names the event delegate.
	Method string
	Params []any
}

// EventTrigger lets a parent fire a trigger delegate on a child by key.
type EventTrigger struct {
	Owner  int64
	Method string
	Key    string
}
