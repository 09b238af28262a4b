package assemble

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/packages"

	"specc/internal/model"
	"specc/internal/testkit"
	"specc/internal/validate"
)

// support declares what the fixtures reference but do not generate: event
// and theme types, and the update-state delegates ApplyStateUpdate calls.
const support = `package gencheck

type Theme struct{ Name string }

type ClickEvent struct{ X int }

type FocusEvent struct{}

type TestEvent struct{ Arg int }

func increment(count *int, delta int, selected *bool, reason string) {
	*count += delta
	if reason == "select" {
		*selected = true
	}
}

func toggleSelected(selected *bool) { *selected = !*selected }

func updateState[T any](state1 *T, param T) { *state1 = param }
`

const behaviour = `package gencheck

import "testing"

func newBadge(text string) *Badge {
	b := NewBadge()
	b.text = text
	b.labels = []string{"new"}
	b.theme = &Theme{Name: "dark"}
	return b
}

func TestBadgeEquivalence(t *testing.T) {
	a, b := newBadge("hi"), newBadge("hi")
	if !a.IsEquivalentTo(a) {
		t.Fatal("IsEquivalentTo is not reflexive")
	}
	if !a.IsEquivalentTo(b) || !b.IsEquivalentTo(a) {
		t.Fatal("equal props and state are not equivalent")
	}
	b.labels = []string{"old"}
	if a.IsEquivalentTo(b) {
		t.Fatal("different labels are equivalent")
	}
	if a.IsEquivalentTo(NewBadge()) {
		t.Fatal("different text is equivalent")
	}
}

func TestBadgeCopyIsolation(t *testing.T) {
	a := newBadge("hi")
	a.measuredWidth = 40
	cp, ok := a.MakeShallowCopy().(*Badge)
	if !ok {
		t.Fatalf("MakeShallowCopy returned %T", a.MakeShallowCopy())
	}
	if cp.measuredWidth != 0 || a.measuredWidth != 40 {
		t.Errorf("measuredWidth = %d on the copy, %d on the original", cp.measuredWidth, a.measuredWidth)
	}
	if cp.stateContainer == a.stateContainer {
		t.Fatal("copy shares the state container")
	}
	cp.StateContainer().ApplyStateUpdate(cp.createIncrementStateUpdate(2, "select"))
	if cp.stateContainer.count != 2 || !cp.stateContainer.selected {
		t.Errorf("copy state = %+v", *cp.stateContainer)
	}
	if a.stateContainer.count != 0 || a.stateContainer.selected {
		t.Errorf("update leaked into the original: %+v", *a.stateContainer)
	}
}

func TestBadgeLazyUpdateAndRenderData(t *testing.T) {
	a := newBadge("hi")
	a.StateContainer().ApplyStateUpdate(a.lazyUpdateSelected(true))
	a.StateContainer().ApplyStateUpdate(a.createToggleSelectedStateUpdate())
	if a.stateContainer.selected {
		t.Error("toggle after lazy update left selected set")
	}

	snap, ok := a.RecordRenderData(nil).(*BadgeRenderData)
	if !ok || snap.text != "hi" || snap.count != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
	b := NewBadge()
	b.ApplyPreviousRenderData(snap)
	if b.previousRenderData == nil || b.previousRenderData == snap || b.previousRenderData.text != "hi" {
		t.Errorf("applied snapshot = %+v", b.previousRenderData)
	}
}

func TestSectionDeepCopy(t *testing.T) {
	s := newFullGroupSection[int]()
	s.cache = 7
	s.StateContainer().ApplyStateUpdate(s.createUpdateStateStateUpdate(5))
	if s.stateContainer.state1 != 5 {
		t.Fatalf("state1 = %d", s.stateContainer.state1)
	}
	deep := s.MakeShallowCopy(true).(*FullGroupSection[int])
	if deep.cache != 7 || deep.stateContainer.state1 != 5 {
		t.Errorf("deep copy lost caches or state: cache=%d state1=%d", deep.cache, deep.stateContainer.state1)
	}
	shallow := s.MakeShallowCopy(false).(*FullGroupSection[int])
	if shallow.cache != 0 || shallow.stateContainer == s.stateContainer {
		t.Errorf("shallow copy kept caches or state: cache=%d", shallow.cache)
	}
	if !s.IsEquivalentTo(s) {
		t.Error("IsEquivalentTo is not reflexive")
	}
}
`

// writeGeneratedPackage renders every valid fixture into a fresh package
// inside the module, so specc/runtime resolves.
func writeGeneratedPackage(t *testing.T, withTests bool) string {
	t.Helper()
	dir, err := os.MkdirTemp(".", "gencheck")
	if err != nil {
		t.Fatal(err)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	files := map[string]string{"support.go": support}
	if withTests {
		files["behaviour_test.go"] = behaviour
	}
	for _, s := range []model.Spec{testkit.FullMount(), testkit.FullSection(), testkit.Plain()} {
		if ds := validate.Spec(s); !validate.Valid(ds) {
			t.Fatalf("%s does not validate", s.SpecName())
		}
		name := filepath.Join(dir, s.ComponentName()+"_gen.go")
		out, err := Render(mustGenerate(t, s), RenderOptions{Package: "gencheck", Filename: name})
		if err != nil {
			t.Fatalf("render %s: %v", s.SpecName(), err)
		}
		files[filepath.Base(name)] = string(out)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func goCommand(t *testing.T) string {
	t.Helper()
	bin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}
	return bin
}

func TestGeneratedCodeTypeChecks(t *testing.T) {
	goCommand(t)
	dir := writeGeneratedPackage(t, true)
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:   dir,
		Tests: true,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		t.Fatal(err)
	}
	if len(pkgs) == 0 {
		t.Fatal("no packages loaded")
	}
	for _, p := range pkgs {
		for _, e := range p.Errors {
			t.Errorf("%s: %v", p.ID, e)
		}
		if p.Types != nil && p.Name == "gencheck" && p.Types.Scope().Lookup("Badge") == nil {
			t.Errorf("%s: Badge not declared", p.ID)
		}
	}
}

func TestGeneratedCodeBehaviour(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the generated package")
	}
	bin := goCommand(t)
	dir := writeGeneratedPackage(t, true)
	cmd := exec.Command(bin, "test", "-count=1", ".")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go test on the generated package: %v\n%s", err, out)
	}
}
