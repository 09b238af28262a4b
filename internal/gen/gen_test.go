package gen

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"specc/internal/model"
	"specc/internal/testkit"
)

func methodNamed(t *testing.T, f Fragment, name string) Method {
	t.Helper()
	for _, m := range f.Methods {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("method %s not generated", name)
	return Method{}
}

func fieldNames(fs []Field) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Name)
	}
	return out
}

func TestRunCoversEverySection(t *testing.T) {
	frags, err := Run(testkit.Plain())
	if err != nil {
		t.Fatal(err)
	}
	for _, sec := range Sections {
		f, ok := frags[sec]
		if !ok {
			t.Errorf("section %s missing", sec)
			continue
		}
		if f.Fields == nil || f.Methods == nil || f.Types == nil || f.Imports == nil {
			t.Errorf("section %s returned nil slices: %+v", sec, f)
		}
	}
	if len(Registry()) != len(Sections) {
		t.Fatalf("registry has %d generators, %d sections", len(Registry()), len(Sections))
	}
}

func TestMemberFields(t *testing.T) {
	s := testkit.FullMount()
	props, _ := genProps(s)
	if diff := cmp.Diff([]string{"text", "size", "weight", "labels", "icon", "child"}, fieldNames(props.Fields)); diff != "" {
		t.Errorf("prop fields (-want +got):\n%s", diff)
	}
	if got := props.Fields[0].Tag; got != `prop:"resType=STRING"` {
		t.Errorf("text tag = %q", got)
	}
	if got := props.Fields[1]; got.Tag != `prop:"optional"` || got.Init != "12" {
		t.Errorf("size field = %+v", got)
	}

	handlers, _ := genEventHandlers(s)
	if diff := cmp.Diff([]Field{{Name: "clickEventHandler", Type: "*runtime.EventHandler"}}, handlers.Fields); diff != "" {
		t.Errorf("handler slots (-want +got):\n%s", diff)
	}
	triggers, _ := genEventTriggers(s)
	if diff := cmp.Diff([]Field{{Name: "focusEventTrigger", Type: "*runtime.EventTrigger"}}, triggers.Fields); diff != "" {
		t.Errorf("trigger slots (-want +got):\n%s", diff)
	}

	injected, _ := genInjected(s)
	if len(injected.Fields) != 1 || injected.Fields[0].Tag != `inject:"wire"` {
		t.Errorf("injected fields = %+v", injected.Fields)
	}
	none, _ := genInjected(testkit.FullSection())
	if !none.IsEmpty() {
		t.Errorf("injected fields without descriptor: %+v", none)
	}
}

func TestEquivalenceOrderAndStrategies(t *testing.T) {
	s := testkit.FullMount()
	f, err := genEquivalence(s)
	if err != nil {
		t.Fatal(err)
	}
	m := methodNamed(t, f, "IsEquivalentTo")
	if diff := cmp.Diff([]Param{{Name: "other", Type: "runtime.Component"}}, m.Params); diff != "" {
		t.Errorf("params (-want +got):\n%s", diff)
	}

	var conds []string
	for _, line := range m.Body {
		if strings.HasPrefix(line, "if ") {
			conds = append(conds, strings.TrimSuffix(strings.TrimPrefix(line, "if "), " {"))
		}
	}
	want := []string{
		"runtime.Component(c) == other",
		"!ok || badgeRef == nil",
		"c.ID() == badgeRef.ID()",
		"c.text != badgeRef.text",
		"math.Float32bits(c.size) != math.Float32bits(badgeRef.size)",
		"math.Float64bits(c.weight) != math.Float64bits(badgeRef.weight)",
		"!runtime.SlicesEqual(c.labels, badgeRef.labels)",
		"runtime.ShouldUpdateReference(c.icon, badgeRef.icon)",
		"!runtime.Equivalent(c.child, badgeRef.child)",
		"c.stateContainer.count != badgeRef.stateContainer.count",
		"c.stateContainer.selected != badgeRef.stateContainer.selected",
		"!runtime.Equal(c.theme, badgeRef.theme)",
	}
	if diff := cmp.Diff(want, conds); diff != "" {
		t.Errorf("comparison order (-want +got):\n%s", diff)
	}
	if m.Body[len(m.Body)-1] != "return true" {
		t.Errorf("last statement = %q", m.Body[len(m.Body)-1])
	}
	if diff := cmp.Diff([]string{"math"}, f.Imports); diff != "" {
		t.Errorf("imports (-want +got):\n%s", diff)
	}
}

func TestEquivalenceSectionSkipsIdentity(t *testing.T) {
	f, err := genEquivalence(testkit.FullSection())
	if err != nil {
		t.Fatal(err)
	}
	m := methodNamed(t, f, "IsEquivalentTo")
	body := strings.Join(m.Body, "\n")
	if strings.Contains(body, ".ID()") {
		t.Errorf("section compares identity:\n%s", body)
	}
	for _, want := range []string{
		"runtime.Section(c) == other",
		"fullGroupSectionRef, ok := other.(*FullGroupSection[T])",
		"!runtime.Equal(c.stateContainer.state1, fullGroupSectionRef.stateContainer.state1)",
		"!runtime.SlicesEqual(c.data, fullGroupSectionRef.data)",
		"!runtime.Equivalent(c.header, fullGroupSectionRef.header)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in:\n%s", want, body)
		}
	}
	if len(f.Imports) != 0 {
		t.Errorf("unexpected imports %v", f.Imports)
	}
}

func TestUpdateFactoryParameterFidelity(t *testing.T) {
	f, err := genUpdateFactories(testkit.FullMount())
	if err != nil {
		t.Fatal(err)
	}
	inc := methodNamed(t, f, "createIncrementStateUpdate")
	if diff := cmp.Diff([]Param{{Name: "delta", Type: "int"}, {Name: "reason", Type: "string"}}, inc.Params); diff != "" {
		t.Errorf("factory params (-want +got):\n%s", diff)
	}
	if inc.Results != "*BadgeIncrementStateUpdate" {
		t.Errorf("factory result = %q", inc.Results)
	}
	toggle := methodNamed(t, f, "createToggleSelectedStateUpdate")
	if len(toggle.Params) != 0 {
		t.Errorf("toggle params = %+v", toggle.Params)
	}
	lazy := methodNamed(t, f, "lazyUpdateSelected")
	if diff := cmp.Diff([]Param{{Name: "value", Type: "bool"}}, lazy.Params); diff != "" {
		t.Errorf("lazy params (-want +got):\n%s", diff)
	}
}

func TestConditionalTypes(t *testing.T) {
	tests := []struct {
		name       string
		spec       model.Spec
		state      bool
		renderData bool
	}{
		{"mount", testkit.FullMount(), true, true},
		{"section", testkit.FullSection(), true, true},
		{"plain", testkit.Plain(), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := genStateContainer(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			if got := sc.HasType(StateContainerName(tt.spec)); got != tt.state {
				t.Errorf("state container present = %t, want %t", got, tt.state)
			}
			rd, err := genRenderData(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			if got := rd.HasType(RenderDataName(tt.spec)); got != tt.renderData {
				t.Errorf("render data present = %t, want %t", got, tt.renderData)
			}
			if !tt.state && !sc.IsEmpty() {
				t.Errorf("stateless spec got state fragment %+v", sc)
			}
		})
	}
}

func TestStateContainerDispatch(t *testing.T) {
	f, err := genStateContainer(testkit.FullMount())
	if err != nil {
		t.Fatal(err)
	}
	decl := f.Types[0]
	if diff := cmp.Diff([]string{"count", "selected"}, fieldNames(decl.Fields)); diff != "" {
		t.Errorf("state fields (-want +got):\n%s", diff)
	}
	var apply Method
	for _, m := range decl.Methods {
		if m.Name == "ApplyStateUpdate" {
			apply = m
		}
	}
	want := []string{
		"switch u := update.(type) {",
		"case *BadgeIncrementStateUpdate:",
		"\tincrement(&s.count, u.delta, &s.selected, u.reason)",
		"case *BadgeToggleSelectedStateUpdate:",
		"\ttoggleSelected(&s.selected)",
		"case runtime.LazyStateUpdate:",
		"\tswitch u.Name {",
		"\tcase \"selected\":",
		"\t\ts.selected = u.Value.(bool)",
		"\t}",
		"}",
	}
	if diff := cmp.Diff(want, apply.Body); diff != "" {
		t.Errorf("dispatch (-want +got):\n%s", diff)
	}
	if f.Fields[0].Init != "&BadgeStateContainer{}" {
		t.Errorf("container init = %q", f.Fields[0].Init)
	}
}

func TestRenderData(t *testing.T) {
	f, err := genRenderData(testkit.FullSection())
	if err != nil {
		t.Fatal(err)
	}
	decl := f.Types[0]
	if diff := cmp.Diff([]Field{
		{Name: "prop1", Type: "int", Tag: `diff:"prop"`},
		{Name: "state1", Type: "T", Tag: `diff:"state"`},
	}, decl.Fields); diff != "" {
		t.Errorf("snapshot fields (-want +got):\n%s", diff)
	}
	var record Method
	for _, m := range decl.Methods {
		if m.Name == "Record" {
			record = m
		}
	}
	if diff := cmp.Diff([]string{
		"d.prop1 = component.prop1",
		"d.state1 = component.stateContainer.state1",
	}, record.Body); diff != "" {
		t.Errorf("record body (-want +got):\n%s", diff)
	}
	if record.Params[0].Type != "*FullGroupSection[T]" {
		t.Errorf("record param = %+v", record.Params[0])
	}
}

func TestDanglingDiffIsFault(t *testing.T) {
	d := testkit.MountDecl()
	d.Diffs = append(d.Diffs, model.RenderDiff{Name: "ghost"})
	s := model.NewMountSpec(d, model.MountFlags{})

	_, err := Run(s)
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %v, want *Fault", err)
	}
	if fault.Generator != "renderData" || fault.Spec != "BadgeSpec" || !strings.Contains(fault.Detail, `"ghost"`) {
		t.Fatalf("fault lacks context: %+v", fault)
	}
}

func TestShallowCopy(t *testing.T) {
	t.Run("mount clears caches unconditionally", func(t *testing.T) {
		f, err := genShallowCopy(testkit.FullMount())
		if err != nil {
			t.Fatal(err)
		}
		m := methodNamed(t, f, "MakeShallowCopy")
		if len(m.Params) != 0 || m.Results != "runtime.Component" {
			t.Fatalf("signature = %+v -> %s", m.Params, m.Results)
		}
		want := []string{
			"component := *c",
			"if component.child != nil {",
			"\tcomponent.child = runtime.ShallowCopy(component.child)",
			"}",
			"runtime.Reset(&component.measuredWidth)",
			"component.stateContainer = &BadgeStateContainer{}",
			"return &component",
		}
		if diff := cmp.Diff(want, m.Body); diff != "" {
			t.Errorf("body (-want +got):\n%s", diff)
		}
	})
	t.Run("section guards reset with deepCopy", func(t *testing.T) {
		f, err := genShallowCopy(testkit.FullSection())
		if err != nil {
			t.Fatal(err)
		}
		m := methodNamed(t, f, "MakeShallowCopy")
		if diff := cmp.Diff([]Param{{Name: "deepCopy", Type: "bool"}}, m.Params); diff != "" {
			t.Fatalf("params (-want +got):\n%s", diff)
		}
		want := []string{
			"component := *c",
			"if component.header != nil {",
			"\tcomponent.header = runtime.ShallowCopy(component.header)",
			"}",
			"if !deepCopy {",
			"\truntime.Reset(&component.cache)",
			"\tcomponent.stateContainer = &FullGroupSectionStateContainer[T]{}",
			"}",
			"return &component",
		}
		if diff := cmp.Diff(want, m.Body); diff != "" {
			t.Errorf("body (-want +got):\n%s", diff)
		}
	})
	t.Run("plain spec needs none", func(t *testing.T) {
		f, err := genShallowCopy(testkit.Plain())
		if err != nil {
			t.Fatal(err)
		}
		if !f.IsEmpty() {
			t.Fatalf("unexpected shallow copy: %+v", f)
		}
	})
}

func TestInterStageCopy(t *testing.T) {
	f, err := genInterStageCopy(testkit.FullMount())
	if err != nil {
		t.Fatal(err)
	}
	m := methodNamed(t, f, "CopyInterStageImpl")
	if m.Body[len(m.Body)-1] != "c.measuredWidth = badgeRef.measuredWidth" {
		t.Errorf("body = %q", m.Body)
	}
	empty, _ := genInterStageCopy(testkit.Plain())
	if !empty.IsEmpty() {
		t.Errorf("plain spec got %+v", empty)
	}
}

func TestFlags(t *testing.T) {
	f, err := genFlags(testkit.FullMount())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, m := range f.Methods {
		names = append(names, m.Name)
	}
	if diff := cmp.Diff([]string{"CanMountIncrementally", "ShouldUseDisplayList", "PoolSize", "CanPreallocate", "MountType"}, names); diff != "" {
		t.Errorf("flag methods (-want +got):\n%s", diff)
	}
	if got := methodNamed(t, f, "MountType").Body[0]; got != "return runtime.MountDrawable" {
		t.Errorf("mount type body = %q", got)
	}

	d := testkit.SectionDecl()
	d.PureRender = true
	rf, err := genFlags(model.NewRenderSpec(d, model.RenderFlags{Section: true}))
	if err != nil {
		t.Fatal(err)
	}
	if len(rf.Methods) != 1 || rf.Methods[0].Name != "IsPureRender" {
		t.Errorf("render spec flags = %+v", rf.Methods)
	}
}

func TestReservedCoversGeneratedMethods(t *testing.T) {
	for _, s := range []model.Spec{testkit.FullMount(), testkit.FullSection()} {
		frags, err := Run(s)
		if err != nil {
			t.Fatal(err)
		}
		factories := map[string]bool{}
		for _, m := range s.UpdateStateMethods() {
			factories[StateUpdateFactory(m)] = true
		}
		for _, m := range s.States() {
			factories[LazyUpdateFactory(m)] = true
		}
		for _, f := range frags {
			for _, m := range f.Methods {
				if !factories[m.Name] && !Reserved(ScopeComponent, m.Name) {
					t.Errorf("%s: component method %s is not reserved", s.SpecName(), m.Name)
				}
			}
			for _, d := range f.Types {
				scope := ScopeStateUpdate
				switch d.Name {
				case StateContainerName(s):
					scope = ScopeStateContainer
				case RenderDataName(s):
					scope = ScopeRenderData
				}
				for _, m := range d.Methods {
					if !Reserved(scope, m.Name) {
						t.Errorf("%s: %s.%s is not reserved", s.SpecName(), d.Name, m.Name)
					}
				}
			}
		}
	}
	if !Reserved(ScopeStateUpdate, recv) || Reserved(ScopeComponent, "text") {
		t.Error("receiver must be reserved for state-update arguments, ordinary names must not")
	}
}

func TestInjectedFieldOrder(t *testing.T) {
	d := testkit.MountDecl()
	d.Members = append(d.Members, model.Member{Role: model.RoleInjected, Name: "clock", Type: model.MustType("func() int64")})
	d.Members = append(d.Members, model.Member{Role: model.RoleInjected, Name: "tracer", Type: model.MustType("any")})
	i := slices.IndexFunc(d.Methods, func(m model.Method) bool { return m.Name == "onCreateService" })
	d.Methods[i].Params = append([]model.Param{{Role: model.ParamInjected, Name: "tracer", Type: model.MustType("any")}}, d.Methods[i].Params...)

	f, err := genInjected(model.NewMountSpec(d, model.MountFlags{MountType: "view"}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"tracer", "logger", "clock"}, fieldNames(f.Fields)); diff != "" {
		t.Errorf("injected fields (-want +got):\n%s", diff)
	}
}

func TestCodeBuilder(t *testing.T) {
	var c Code
	c.If("a > %d", 1).Stmt("x()").End()
	c.Block("switch v").Case("case 1").Stmt("y()").End().Stmt("return")
	want := []string{"if a > 1 {", "\tx()", "}", "switch v {", "case 1:", "\ty()", "}", "return"}
	if diff := cmp.Diff(want, c.Lines()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNaming(t *testing.T) {
	s := testkit.FullMount()
	upd := s.UpdateStateMethods()[1]
	if got := StateUpdateName(s, upd); got != "BadgeToggleSelectedStateUpdate" {
		t.Errorf("StateUpdateName = %q", got)
	}
	if got := StateUpdateFactory(upd); got != "createToggleSelectedStateUpdate" {
		t.Errorf("StateUpdateFactory = %q", got)
	}
	if got := ComponentType(testkit.FullSection()); got != "FullGroupSection[T]" {
		t.Errorf("ComponentType = %q", got)
	}
}
