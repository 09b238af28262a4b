package gen

import (
	"fmt"

	"specc/internal/model"
)

// Section names the slot a generator fills. Sections are declared in the
// order their fields, methods and types appear in the emitted unit.
type Section uint8

const (
	SectionInjected Section = iota + 1
	SectionProps
	SectionTreeProps
	SectionInterStage
	SectionEventHandlers
	SectionEventTriggers
	SectionIdentity
	SectionEquivalence
	SectionInterStageCopy
	SectionUpdateFactories
	SectionShallowCopy
	SectionStateContainer
	SectionRenderData
	SectionStateUpdates
	SectionFlags
)

// Sections lists every section in emission order.
var Sections = []Section{
	SectionInjected,
	SectionProps,
	SectionTreeProps,
	SectionInterStage,
	SectionEventHandlers,
	SectionEventTriggers,
	SectionIdentity,
	SectionEquivalence,
	SectionInterStageCopy,
	SectionUpdateFactories,
	SectionShallowCopy,
	SectionStateContainer,
	SectionRenderData,
	SectionStateUpdates,
	SectionFlags,
}

func (s Section) String() string {
	for _, g := range registry {
		if g.Section == s {
			return g.Name
		}
	}
	return fmt.Sprintf("section(%d)", uint8(s))
}

// Func is a fragment generator.
type Func func(model.Spec) (Fragment, error)

// Generator binds a generator function to its name and section.
type Generator struct {
	Name    string
	Section Section
	Gen     Func
}

var registry = []Generator{
	{"injected", SectionInjected, genInjected},
	{"props", SectionProps, genProps},
	{"treeProps", SectionTreeProps, genTreeProps},
	{"interStage", SectionInterStage, genInterStage},
	{"eventHandlers", SectionEventHandlers, genEventHandlers},
	{"eventTriggers", SectionEventTriggers, genEventTriggers},
	{"identity", SectionIdentity, genIdentity},
	{"equivalence", SectionEquivalence, genEquivalence},
	{"interStageCopy", SectionInterStageCopy, genInterStageCopy},
	{"updateFactories", SectionUpdateFactories, genUpdateFactories},
	{"shallowCopy", SectionShallowCopy, genShallowCopy},
	{"stateContainer", SectionStateContainer, genStateContainer},
	{"renderData", SectionRenderData, genRenderData},
	{"stateUpdates", SectionStateUpdates, genStateUpdates},
	{"flags", SectionFlags, genFlags},
}

// Registry returns the generators in section order.
func Registry() []Generator {
	out := make([]Generator, len(registry))
	copy(out, registry)
	return out
}

// Fragments maps each section to the fragment generated for it.
type Fragments map[Section]Fragment

// Run executes every generator against s. The first fault aborts the run;
// faults are returned as *Fault.
func Run(s model.Spec) (Fragments, error) {
	out := make(Fragments, len(registry))
	for _, g := range registry {
		frag, err := g.Gen(s)
		if err != nil {
			return nil, err
		}
		out[g.Section] = frag
	}
	return out, nil
}
