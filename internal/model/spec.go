package model

import (
	"slices"
	"strings"
)

// Variant names a spec specialization.
type Variant uint8

const (
	VariantMount Variant = iota + 1
	VariantRender
)

func (v Variant) String() string {
	switch v {
	case VariantMount:
		return "mount"
	case VariantRender:
		return "render"
	default:
		return "unknown"
	}
}

// Spec is the read-only contract shared by both IR variants.
type Spec interface {
	Variant() Variant

	QualifiedName() string
	SpecName() string
	ComponentName() string
	TypeVariables() []string
	IsPublic() bool
	Doc() string
	Tags() []string
	Imports() []string

	Members() []Member
	Props() []Member
	States() []Member
	TreeProps() []Member
	InterStageInputs() []Member
	InjectedMembers() []Member
	EventHandlers() []Member
	EventTriggers() []Member

	Methods() []Method
	UpdateStateMethods() []Method
	EventMethods() []Method
	TriggerMethods() []Method

	RenderDiffs() []RenderDiff
	Injection() (Injection, bool)

	HasState() bool
	NeedsRenderData() bool
	HasInjectedDependencies() bool
	ShouldCheckID() bool
	HasDeepCopy() bool
	IsPureRender() bool
	// ComponentClass is the runtime type the implementation satisfies and
	// compares against in IsEquivalentTo.
	ComponentClass() Type
}

// Decl is the raw declaration a front end fills in before constructing a spec.
type Decl struct {
	QualifiedName string
	// ComponentName defaults to the spec name without its "Spec" suffix.
	ComponentName string
	TypeVariables []string
	Public        bool
	Doc           string
	Tags          []string
	Imports       []string

	Members   []Member
	Methods   []Method
	Diffs     []RenderDiff
	Injection *Injection

	PureRender bool
}

// Base holds the data shared by every variant. It is embedded, never used on
// its own.
type Base struct {
	qualifiedName string
	componentName string
	typeVars      []string
	public        bool
	doc           string
	tags          []string
	imports       []string

	members   []Member
	methods   []Method
	diffs     []RenderDiff
	injection *Injection

	pureRender bool
}

func newBase(d Decl) Base {
	b := Base{
		qualifiedName: d.QualifiedName,
		componentName: d.ComponentName,
		typeVars:      cloneOrEmpty(d.TypeVariables),
		public:        d.Public,
		doc:           d.Doc,
		tags:          cloneOrEmpty(d.Tags),
		imports:       cloneOrEmpty(d.Imports),
		members:       cloneOrEmpty(d.Members),
		diffs:         cloneOrEmpty(d.Diffs),
		pureRender:    d.PureRender,
	}
	if b.componentName == "" {
		b.componentName = strings.TrimSuffix(SimpleName(d.QualifiedName), "Spec")
	}
	b.methods = make([]Method, len(d.Methods))
	for i, m := range d.Methods {
		b.methods[i] = m.clone()
	}
	if d.Injection != nil {
		inj := *d.Injection
		b.injection = &inj
	}
	return b
}

func cloneOrEmpty[T any](in []T) []T {
	if len(in) == 0 {
		return []T{}
	}
	return slices.Clone(in)
}

func (b *Base) QualifiedName() string   { return b.qualifiedName }
func (b *Base) SpecName() string        { return SimpleName(b.qualifiedName) }
func (b *Base) ComponentName() string   { return b.componentName }
func (b *Base) TypeVariables() []string { return slices.Clone(b.typeVars) }
func (b *Base) IsPublic() bool          { return b.public }
func (b *Base) Doc() string             { return b.doc }
func (b *Base) Tags() []string          { return slices.Clone(b.tags) }
func (b *Base) Imports() []string       { return slices.Clone(b.imports) }
func (b *Base) IsPureRender() bool      { return b.pureRender }

// Members returns every declared member in declaration order.
func (b *Base) Members() []Member { return slices.Clone(b.members) }

func (b *Base) membersOf(role Role) []Member {
	out := make([]Member, 0, len(b.members))
	for _, m := range b.members {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

func (b *Base) Props() []Member            { return b.membersOf(RoleProp) }
func (b *Base) States() []Member           { return b.membersOf(RoleState) }
func (b *Base) TreeProps() []Member        { return b.membersOf(RoleTreeProp) }
func (b *Base) InterStageInputs() []Member { return b.membersOf(RoleInterStageInput) }
func (b *Base) InjectedMembers() []Member  { return b.membersOf(RoleInjected) }
func (b *Base) EventHandlers() []Member    { return b.membersOf(RoleEventHandler) }
func (b *Base) EventTriggers() []Member    { return b.membersOf(RoleEventTrigger) }

// Methods returns every delegate method in declaration order.
func (b *Base) Methods() []Method {
	out := make([]Method, len(b.methods))
	for i, m := range b.methods {
		out[i] = m.clone()
	}
	return out
}

func (b *Base) methodsOf(kind MethodKind) []Method {
	out := make([]Method, 0, len(b.methods))
	for _, m := range b.methods {
		if m.Kind == kind {
			out = append(out, m.clone())
		}
	}
	return out
}

func (b *Base) UpdateStateMethods() []Method { return b.methodsOf(MethodUpdateState) }
func (b *Base) EventMethods() []Method       { return b.methodsOf(MethodEvent) }
func (b *Base) TriggerMethods() []Method     { return b.methodsOf(MethodTrigger) }

func (b *Base) RenderDiffs() []RenderDiff { return slices.Clone(b.diffs) }

// Injection returns the dependency-injection descriptor, if any.
func (b *Base) Injection() (Injection, bool) {
	if b.injection == nil {
		return Injection{}, false
	}
	return *b.injection, true
}

func (b *Base) HasState() bool {
	for _, m := range b.members {
		if m.Role == RoleState {
			return true
		}
	}
	return false
}

func (b *Base) NeedsRenderData() bool         { return len(b.diffs) > 0 }
func (b *Base) HasInjectedDependencies() bool { return b.injection != nil }
