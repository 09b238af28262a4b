package model

// RenderFlags carries the settings only a render spec has.
type RenderFlags struct {
	// Section marks a spec that produces a list section rather than a
	// layout. Sections support deep copy and skip the identity check.
	Section bool
}

// RenderSpec is a spec that only composes other components.
type RenderSpec struct {
	Base
	flags RenderFlags
}

var _ Spec = (*RenderSpec)(nil)

// NewRenderSpec freezes d into a render spec.
func NewRenderSpec(d Decl, flags RenderFlags) *RenderSpec {
	return &RenderSpec{Base: newBase(d), flags: flags}
}

func (s *RenderSpec) Variant() Variant { return VariantRender }

func (s *RenderSpec) IsSection() bool { return s.flags.Section }

func (s *RenderSpec) ShouldCheckID() bool { return !s.flags.Section }
func (s *RenderSpec) HasDeepCopy() bool   { return s.flags.Section }

func (s *RenderSpec) ComponentClass() Type {
	if s.flags.Section {
		return Type{Expr: RuntimePackage + ".Section", Kind: KindSection}
	}
	return Type{Expr: RuntimePackage + ".Component", Kind: KindComponent}
}

// Flags returns a copy of the render settings.
func (s *RenderSpec) Flags() RenderFlags { return s.flags }
