package testkit

import (
	"fmt"

	"specc/internal/model"
)

// CheckSpecInvariants runs the accessor contract on a constructed spec:
// 1) every list accessor returns a non-nil slice
// 2) role accessors partition Members() without loss
// 3) returned slices are copies: mutating them never leaks into the spec
func CheckSpecInvariants(s model.Spec) error {
	if s == nil {
		return fmt.Errorf("nil spec")
	}

	// 1) empty collections, never nil
	lists := map[string]bool{
		"TypeVariables":      s.TypeVariables() == nil,
		"Tags":               s.Tags() == nil,
		"Imports":            s.Imports() == nil,
		"Members":            s.Members() == nil,
		"Props":              s.Props() == nil,
		"States":             s.States() == nil,
		"TreeProps":          s.TreeProps() == nil,
		"InterStageInputs":   s.InterStageInputs() == nil,
		"InjectedMembers":    s.InjectedMembers() == nil,
		"EventHandlers":      s.EventHandlers() == nil,
		"EventTriggers":      s.EventTriggers() == nil,
		"Methods":            s.Methods() == nil,
		"UpdateStateMethods": s.UpdateStateMethods() == nil,
		"EventMethods":       s.EventMethods() == nil,
		"TriggerMethods":     s.TriggerMethods() == nil,
		"RenderDiffs":        s.RenderDiffs() == nil,
	}
	for name, isNil := range lists {
		if isNil {
			return fmt.Errorf("%s returned nil", name)
		}
	}
	for _, m := range s.Methods() {
		if m.Params == nil {
			return fmt.Errorf("method %s has nil params", m.Name)
		}
	}

	// 2) partition
	total := len(s.Props()) + len(s.States()) + len(s.TreeProps()) +
		len(s.InterStageInputs()) + len(s.InjectedMembers()) +
		len(s.EventHandlers()) + len(s.EventTriggers())
	if total != len(s.Members()) {
		return fmt.Errorf("role accessors cover %d members, spec has %d", total, len(s.Members()))
	}
	if s.HasState() != (len(s.States()) > 0) {
		return fmt.Errorf("HasState disagrees with States")
	}
	if s.NeedsRenderData() != (len(s.RenderDiffs()) > 0) {
		return fmt.Errorf("NeedsRenderData disagrees with RenderDiffs")
	}

	// 3) copies
	if ms := s.Members(); len(ms) > 0 {
		before := ms[0].Name
		ms[0].Name = "mutated"
		if s.Members()[0].Name != before {
			return fmt.Errorf("Members leaks internal storage")
		}
	}
	if ms := s.Methods(); len(ms) > 0 && len(ms[0].Params) > 0 {
		before := ms[0].Params[0].Name
		ms[0].Params[0].Name = "mutated"
		if s.Methods()[0].Params[0].Name != before {
			return fmt.Errorf("Methods leaks parameter storage")
		}
	}
	return nil
}
