package runtime_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"specc/runtime"
)

// card mirrors the shape of a generated component with a nested child, an
// inter-stage cache and state.
type card struct {
	runtime.ComponentBase
	title    string
	width    float32
	tags     []string
	child    runtime.Component
	measured int

	stateContainer *cardStateContainer
}

type cardStateContainer struct {
	count int
}

func (s *cardStateContainer) StateNames() []string { return []string{"count"} }

func (s *cardStateContainer) ApplyStateUpdate(update runtime.StateUpdate) {
	if u, ok := update.(runtime.LazyStateUpdate); ok && u.Name == "count" {
		s.count = u.Value.(int)
	}
}

func newCard(title string) *card {
	return &card{
		ComponentBase:  runtime.NewComponentBase(),
		title:          title,
		stateContainer: &cardStateContainer{},
	}
}

func (c *card) SimpleName() string { return "Card" }

func (c *card) IsEquivalentTo(other runtime.Component) bool {
	if runtime.Component(c) == other {
		return true
	}
	cardRef, ok := other.(*card)
	if !ok || cardRef == nil {
		return false
	}
	if c.ID() == cardRef.ID() {
		return true
	}
	if c.title != cardRef.title {
		return false
	}
	if math.Float32bits(c.width) != math.Float32bits(cardRef.width) {
		return false
	}
	if !runtime.SlicesEqual(c.tags, cardRef.tags) {
		return false
	}
	if !runtime.Equivalent(c.child, cardRef.child) {
		return false
	}
	if c.stateContainer.count != cardRef.stateContainer.count {
		return false
	}
	return true
}

func (c *card) MakeShallowCopy() runtime.Component {
	component := *c
	if component.child != nil {
		component.child = runtime.ShallowCopy(component.child)
	}
	runtime.Reset(&component.measured)
	component.stateContainer = &cardStateContainer{}
	return &component
}

// plain has no custom copy.
type plain struct {
	runtime.ComponentBase
	text string
}

func (p *plain) SimpleName() string { return "Plain" }

func (p *plain) IsEquivalentTo(other runtime.Component) bool {
	o, ok := other.(*plain)
	return ok && o.text == p.text
}

type list struct {
	runtime.SectionBase
	cache []int
}

func (l *list) SimpleName() string { return "List" }

func (l *list) IsEquivalentTo(other runtime.Section) bool {
	_, ok := other.(*list)
	return ok
}

func (l *list) MakeShallowCopy(deepCopy bool) runtime.Section {
	section := *l
	if !deepCopy {
		runtime.Reset(&section.cache)
	}
	return &section
}

func TestIdentityIsUnique(t *testing.T) {
	a, b := newCard("a"), newCard("a")
	if a.ID() == b.ID() {
		t.Fatalf("two components share id %d", a.ID())
	}
	s := &list{SectionBase: runtime.NewSectionBase()}
	if s.ID() == a.ID() || s.ID() == b.ID() {
		t.Fatalf("section id %d collides with a component", s.ID())
	}
}

func TestEquivalence(t *testing.T) {
	a, b := newCard("title"), newCard("title")
	a.tags, b.tags = []string{"x"}, []string{"x"}
	if !a.IsEquivalentTo(a) {
		t.Fatal("component is not equivalent to itself")
	}
	if !a.IsEquivalentTo(b) || !b.IsEquivalentTo(a) {
		t.Fatal("equal components are not equivalent")
	}
	if a.IsEquivalentTo(&plain{text: "title"}) {
		t.Fatal("components of different types are equivalent")
	}

	b.width = 1.5
	if a.IsEquivalentTo(b) {
		t.Fatal("differing float prop ignored")
	}
	b.width = 0
	b.stateContainer.ApplyStateUpdate(runtime.LazyStateUpdate{Name: "count", Value: 3})
	if a.IsEquivalentTo(b) {
		t.Fatal("differing state ignored")
	}
}

func TestNaNPropsCompareEqual(t *testing.T) {
	a, b := newCard("t"), newCard("t")
	a.width = float32(math.NaN())
	b.width = float32(math.NaN())
	if !a.IsEquivalentTo(b) {
		t.Fatal("NaN width should compare bitwise equal")
	}
}

func TestNestedEquivalence(t *testing.T) {
	a, b := newCard("t"), newCard("t")
	a.child = &plain{text: "x"}
	if a.IsEquivalentTo(b) {
		t.Fatal("nil child equivalent to non-nil child")
	}
	b.child = &plain{text: "x"}
	if !a.IsEquivalentTo(b) {
		t.Fatal("structurally equal children not equivalent")
	}
}

func TestShallowCopyClearsCaches(t *testing.T) {
	orig := newCard("t")
	orig.child = &plain{ComponentBase: runtime.NewComponentBase(), text: "x"}
	orig.measured = 40
	orig.stateContainer.count = 7

	copied := runtime.ShallowCopy[runtime.Component](orig).(*card)
	if copied == orig {
		t.Fatal("copy returned the original")
	}
	if copied.ID() != orig.ID() {
		t.Fatalf("copy id = %d, want %d", copied.ID(), orig.ID())
	}
	if copied.child == orig.child {
		t.Fatal("nested component shared between original and copy")
	}
	if !runtime.Equivalent(copied.child, orig.child) {
		t.Fatal("nested copy is not equivalent to the original child")
	}
	if copied.measured != 0 {
		t.Fatalf("inter-stage cache survived copy: %d", copied.measured)
	}
	if copied.stateContainer == orig.stateContainer || copied.stateContainer.count != 0 {
		t.Fatal("state container not replaced")
	}
	if orig.measured != 40 || orig.stateContainer.count != 7 {
		t.Fatal("copy modified the original")
	}
}

func TestShallowCopySection(t *testing.T) {
	orig := &list{SectionBase: runtime.NewSectionBase(), cache: []int{1, 2}}

	shallow := runtime.ShallowCopy[runtime.Section](orig).(*list)
	if shallow.cache != nil {
		t.Fatalf("shallow section copy kept cache %v", shallow.cache)
	}
	deep := orig.MakeShallowCopy(true).(*list)
	if diff := cmp.Diff([]int{1, 2}, deep.cache); diff != "" {
		t.Fatalf("deep copy cache mismatch (-want +got):\n%s", diff)
	}
}

func TestShallowCopyFallback(t *testing.T) {
	orig := &plain{text: "x"}
	copied := runtime.ShallowCopy[runtime.Component](orig)
	if copied == runtime.Component(orig) {
		t.Fatal("struct fallback returned the original pointer")
	}
	if !copied.IsEquivalentTo(orig) {
		t.Fatal("struct fallback lost fields")
	}

	var none runtime.Component
	if runtime.ShallowCopy(none) != nil {
		t.Fatal("nil component copied to non-nil")
	}
}

type point struct{ x, y int }

type tagged struct{ id int }

func (t tagged) Equals(other any) bool {
	o, ok := other.(tagged)
	return ok && o.id == t.id
}

func TestEqual(t *testing.T) {
	var nilSlice []int
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"typed nil vs nil", nilSlice, nil, true},
		{"nil vs value", nil, point{}, false},
		{"structs", point{1, 2}, point{1, 2}, true},
		{"structs differ", point{1, 2}, point{2, 1}, false},
		{"pointers compare deeply", &point{1, 2}, &point{1, 2}, true},
		{"equaler", tagged{1}, tagged{1}, true},
		{"equaler differs", tagged{1}, tagged{2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runtime.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSlicesEqual(t *testing.T) {
	if !runtime.SlicesEqual([]string(nil), []string{}) {
		t.Error("nil and empty slices differ")
	}
	if runtime.SlicesEqual([]int{1}, []int{1, 2}) {
		t.Error("slices of different length are equal")
	}
	arrA, arrB := [2]int{1, 2}, [2]int{1, 2}
	if !runtime.SlicesEqual(arrA[:], arrB[:]) {
		t.Error("equal arrays differ")
	}
}

func TestShouldUpdateReference(t *testing.T) {
	a := runtime.ValueReference[string]{Value: "icon.png"}
	b := runtime.ValueReference[string]{Value: "icon.png"}
	c := runtime.ValueReference[string]{Value: "other.png"}
	var none runtime.Reference[string]

	tests := []struct {
		name       string
		prev, next runtime.Reference[string]
		want       bool
	}{
		{"same value", a, b, false},
		{"changed", a, c, true},
		{"both nil", none, none, false},
		{"nil to value", none, a, true},
		{"value to nil", a, none, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runtime.ShouldUpdateReference(tt.prev, tt.next); got != tt.want {
				t.Errorf("ShouldUpdateReference = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMountTypeString(t *testing.T) {
	got := []string{runtime.MountNone.String(), runtime.MountView.String(), runtime.MountDrawable.String()}
	if diff := cmp.Diff([]string{"none", "view", "drawable"}, got); diff != "" {
		t.Fatalf("mount type names (-want +got):\n%s", diff)
	}
}

type drawableBadge struct {
	plain
}

func (*drawableBadge) PoolSize() int                { return 8 }
func (*drawableBadge) CanPreallocate() bool         { return true }
func (*drawableBadge) MountType() runtime.MountType { return runtime.MountDrawable }
func (*drawableBadge) IsPureRender() bool           { return true }

func TestFlagDefaults(t *testing.T) {
	var p runtime.Component = &plain{}
	var d runtime.Component = &drawableBadge{}

	type flags struct {
		Pool        int
		Prealloc    bool
		Incremental bool
		DisplayList bool
		Mount       runtime.MountType
		Pure        bool
	}
	read := func(c runtime.Component) flags {
		return flags{
			Pool:        runtime.PoolSize(c),
			Prealloc:    runtime.CanPreallocate(c),
			Incremental: runtime.CanMountIncrementally(c),
			DisplayList: runtime.ShouldUseDisplayList(c),
			Mount:       runtime.MountTypeOf(c),
			Pure:        runtime.IsPureRender(c),
		}
	}
	if diff := cmp.Diff(flags{Pool: runtime.DefaultPoolSize, Mount: runtime.MountNone}, read(p)); diff != "" {
		t.Errorf("defaults (-want +got):\n%s", diff)
	}
	want := flags{Pool: 8, Prealloc: true, Mount: runtime.MountDrawable, Pure: true}
	if diff := cmp.Diff(want, read(d)); diff != "" {
		t.Errorf("declared flags (-want +got):\n%s", diff)
	}
}
