package runtime

import "sync/atomic"

var lastID atomic.Int64

func nextID() int64 { return lastID.Add(1) }

// Component is a layout component instance.
type Component interface {
	ID() int64
	SimpleName() string
	// IsEquivalentTo reports structural equivalence with another component.
	IsEquivalentTo(other Component) bool
}

// ComponentCopier is implemented by components that need more than a plain
// struct copy to be cloned.
type ComponentCopier interface {
	MakeShallowCopy() Component
}

// Section is a list section instance.
type Section interface {
	ID() int64
	SimpleName() string
	IsEquivalentTo(other Section) bool
}

// SectionCopier is implemented by sections with a custom copy. deepCopy
// keeps transient caches and state.
type SectionCopier interface {
	MakeShallowCopy(deepCopy bool) Section
}

// ComponentBase is embedded by every generated component.
type ComponentBase struct {
	id int64
}

// NewComponentBase returns a base with a fresh identity.
func NewComponentBase() ComponentBase {
	return ComponentBase{id: nextID()}
}

// ID is the identity key compared before structural equivalence.
func (b *ComponentBase) ID() int64 { return b.id }

// SectionBase is embedded by every generated section.
type SectionBase struct {
	id int64
}

// NewSectionBase returns a base with a fresh identity.
func NewSectionBase() SectionBase {
	return SectionBase{id: nextID()}
}

func (b *SectionBase) ID() int64 { return b.id }

// MountType tells the mount engine what a mount spec produces.
type MountType uint8

const (
	MountNone MountType = iota
	MountView
	MountDrawable
)

func (t MountType) String() string {
	switch t {
	case MountView:
		return "view"
	case MountDrawable:
		return "drawable"
	default:
		return "none"
	}
}

// Context is handed to delegate methods by the layout engine.
type Context struct {
	// Scope is the component whose delegate is running.
	Scope Component
}
