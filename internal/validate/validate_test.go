package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"specc/internal/diag"
	"specc/internal/model"
	"specc/internal/testkit"
)

func codes(ds []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}
	return out
}

func TestFixturesAreValid(t *testing.T) {
	for name, s := range map[string]model.Spec{
		"mount":   testkit.FullMount(),
		"section": testkit.FullSection(),
		"plain":   testkit.Plain(),
	} {
		t.Run(name, func(t *testing.T) {
			if got := Spec(s); len(got) != 0 {
				t.Fatalf("unexpected diagnostics:\n%s", diag.FormatShortDiagnostics(got, true))
			}
		})
	}
}

func TestNilSpec(t *testing.T) {
	got := Spec(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Spec(nil) = %#v, want empty non-nil", got)
	}
}

func mutateMount(fn func(d *model.Decl, f *model.MountFlags)) model.Spec {
	d := testkit.MountDecl()
	f := model.MountFlags{PoolSize: 3, CanPreallocate: true}
	fn(&d, &f)
	return model.NewMountSpec(d, f)
}

func mutateSection(fn func(d *model.Decl)) model.Spec {
	d := testkit.SectionDecl()
	fn(&d)
	return model.NewRenderSpec(d, model.RenderFlags{Section: true})
}

func methodIndex(d *model.Decl, name string) int {
	for i, m := range d.Methods {
		if m.Name == name {
			return i
		}
	}
	panic("no method " + name)
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		spec model.Spec
		want []diag.Code
	}{
		{
			name: "dangling diff",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Diffs = append(d.Diffs, model.RenderDiff{Name: "ghost"})
			}),
			want: []diag.Code{diag.SpecUnresolvedDiff},
		},
		{
			name: "diff on tree prop",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Diffs = []model.RenderDiff{{Name: "theme"}}
			}),
			want: []diag.Code{diag.SpecUnresolvedDiff},
		},
		{
			name: "duplicate field across roles",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleState, Name: "text", Type: model.MustType("string")})
			}),
			want: []diag.Code{diag.SpecDuplicateField},
		},
		{
			name: "prop and event slot share a name",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleProp, Name: "ClickEvent", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecDuplicateField},
		},
		{
			name: "prop collides with event slot field",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleProp, Name: "clickEventHandler", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecDuplicateField},
		},
		{
			name: "reserved field",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleProp, Name: "stateContainer", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecReservedName},
		},
		{
			name: "prop named after a generated method",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members,
					model.Member{Role: model.RoleProp, Name: "SimpleName", Type: model.MustType("string")},
					model.Member{Role: model.RoleTreeProp, Name: "ID", Type: model.MustType("int")},
				)
			}),
			want: []diag.Code{diag.SpecReservedName, diag.SpecReservedName},
		},
		{
			name: "state named after a container method",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleState, Name: "StateNames", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecReservedName},
		},
		{
			name: "prop shadows a state-update factory",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleProp, Name: "createIncrementStateUpdate", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecReservedName},
		},
		{
			name: "duplicate render diff",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Diffs = append(d.Diffs, model.RenderDiff{Name: "text"})
			}),
			want: []diag.Code{diag.SpecDuplicateDiff},
		},
		{
			name: "render diff named after a snapshot method",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleProp, Name: "Copy", Type: model.MustType("int")})
				d.Diffs = append(d.Diffs, model.RenderDiff{Name: "Copy"})
			}),
			want: []diag.Code{diag.SpecReservedName},
		},
		{
			name: "state-update argument named like the receiver",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "toggleSelected")
				d.Methods[i].Params = append(d.Methods[i].Params, model.Param{Role: model.ParamParam, Name: "c", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecReservedName},
		},
		{
			name: "update-state names differing only in case",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Methods = append(d.Methods, model.Method{Kind: model.MethodUpdateState, Name: "Increment"})
			}),
			want: []diag.Code{diag.SpecDuplicateMethodName},
		},
		{
			name: "update-state named after a dispatch local",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Methods = append(d.Methods, model.Method{Kind: model.MethodUpdateState, Name: "update"})
			}),
			want: []diag.Code{diag.SpecReservedName},
		},
		{
			name: "lazy states differing only in case",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members = append(d.Members, model.Member{Role: model.RoleState, Name: "Selected", Type: model.MustType("bool"), CanUpdateLazily: true})
			}),
			want: []diag.Code{diag.SpecDuplicateField},
		},
		{
			name: "invalid member name",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Members[0].Name = "1text"
				d.Diffs = nil
				d.Methods = nil
				d.Members = d.Members[:1]
			}),
			want: []diag.Code{diag.SpecInvalidName},
		},
		{
			name: "duplicate singleton",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Methods = append(d.Methods, model.Method{Kind: model.MethodCreateLayout, Name: "onMountAgain"})
			}),
			want: []diag.Code{diag.SpecDuplicateSingleton},
		},
		{
			name: "duplicate update-state name",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Methods = append(d.Methods, model.Method{Kind: model.MethodUpdateState, Name: "increment"})
			}),
			want: []diag.Code{diag.SpecDuplicateMethodName},
		},
		{
			name: "from-event outside event handler",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "onMount")
				d.Methods[i].Params = append(d.Methods[i].Params, model.Param{Role: model.ParamFromEvent, Name: "x", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecParamRoleNotAllowed},
		},
		{
			name: "prop on update-state",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "increment")
				d.Methods[i].Params = append(d.Methods[i].Params, model.Param{Role: model.ParamProp, Name: "text", Type: model.MustType("string")})
			}),
			want: []diag.Code{diag.SpecParamRoleNotAllowed},
		},
		{
			name: "unknown member",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "onMount")
				d.Methods[i].Params = append(d.Methods[i].Params, model.Param{Role: model.ParamProp, Name: "missing", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecParamUnknownMember},
		},
		{
			name: "state value on prop",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "increment")
				d.Methods[i].Params = append(d.Methods[i].Params, model.Param{Role: model.ParamStateValue, Name: "text", Type: model.MustType("*string")})
			}),
			want: []diag.Code{diag.SpecParamUnknownMember},
		},
		{
			name: "type mismatch",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "onMount")
				d.Methods[i].Params[1].Type = model.MustType("int")
			}),
			want: []diag.Code{diag.SpecParamTypeMismatch},
		},
		{
			name: "trigger takes lazy state",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "onFocus")
				d.Methods[i].Params = append(d.Methods[i].Params, model.Param{Role: model.ParamState, Name: "selected", Type: model.MustType("bool")})
			}),
			want: []diag.Code{diag.SpecTriggerLazyState},
		},
		{
			name: "trigger without slot and slot without trigger",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "onFocus")
				d.Methods[i].Event = model.MustType("BlurEvent")
			}),
			want: []diag.Code{diag.SpecTriggerWithoutSlot, diag.SpecSlotWithoutTrigger},
		},
		{
			name: "event type missing",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				i := methodIndex(d, "onClick")
				d.Methods[i].Event = model.Type{}
			}),
			want: []diag.Code{diag.SpecEventTypeMissing},
		},
		{
			name: "injected member without descriptor",
			spec: mutateMount(func(d *model.Decl, _ *model.MountFlags) {
				d.Injection = nil
			}),
			want: []diag.Code{diag.SpecInjectionMissing},
		},
		{
			name: "negative pool",
			spec: mutateMount(func(_ *model.Decl, f *model.MountFlags) {
				f.PoolSize = -1
				f.CanPreallocate = false
			}),
			want: []diag.Code{diag.SpecNegativePoolSize},
		},
		{
			name: "preallocate without pool",
			spec: mutateMount(func(_ *model.Decl, f *model.MountFlags) {
				f.PoolSize = 0
			}),
			want: []diag.Code{diag.SpecPreallocateNoPool},
		},
		{
			name: "unknown mount type",
			spec: mutateMount(func(_ *model.Decl, f *model.MountFlags) {
				f.MountType = "texture"
			}),
			want: []diag.Code{diag.SpecInvalidMountType},
		},
		{
			name: "default on required prop",
			spec: mutateSection(func(d *model.Decl) {
				d.Members[1].Optional = false
			}),
			want: []diag.Code{diag.SpecDefaultOnRequiredProp},
		},
		{
			name: "duplicate type variable",
			spec: mutateSection(func(d *model.Decl) {
				d.TypeVariables = []string{"T", "T"}
			}),
			want: []diag.Code{diag.SpecDuplicateTypeVar},
		},
		{
			name: "param on create layout",
			spec: mutateSection(func(d *model.Decl) {
				i := methodIndex(d, "onCreateChildren")
				d.Methods[i].Params = append(d.Methods[i].Params, model.Param{Role: model.ParamParam, Name: "p", Type: model.MustType("int")})
			}),
			want: []diag.Code{diag.SpecParamRoleNotAllowed},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spec(tt.spec)
			if diff := cmp.Diff(tt.want, codes(got)); diff != "" {
				t.Fatalf("codes mismatch (-want +got):\n%s\n%s", diff, diag.FormatShortDiagnostics(got, true))
			}
		})
	}
}

func TestDiffDiagnosticNamesDiff(t *testing.T) {
	s := mutateMount(func(d *model.Decl, _ *model.MountFlags) {
		d.Diffs = append(d.Diffs, model.RenderDiff{Name: "ghost"})
	})
	got := Spec(s)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics", len(got))
	}
	if got[0].Primary.Member != "ghost" || got[0].Severity != diag.SevError {
		t.Fatalf("diagnostic does not name the diff: %+v", got[0])
	}
	if Valid(got) {
		t.Fatal("dangling diff must block generation")
	}
}

func TestCollectsAllFindings(t *testing.T) {
	s := mutateMount(func(d *model.Decl, f *model.MountFlags) {
		d.Diffs = append(d.Diffs, model.RenderDiff{Name: "ghost"}, model.RenderDiff{Name: "phantom"})
		d.Injection = nil
		f.PoolSize = -2
	})
	want := []diag.Code{
		diag.SpecUnresolvedDiff,
		diag.SpecUnresolvedDiff,
		diag.SpecInjectionMissing,
		diag.SpecNegativePoolSize,
		diag.SpecPreallocateNoPool,
	}
	got := Spec(s)
	if diff := cmp.Diff(want, codes(got)); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(got, Spec(s)); diff != "" {
		t.Fatalf("validation is not deterministic:\n%s", diff)
	}
}

func TestWarningsDoNotBlock(t *testing.T) {
	s := mutateSection(func(d *model.Decl) {
		d.Members[1].Optional = false
	})
	if !Valid(Spec(s)) {
		t.Fatal("a warning alone must not block generation")
	}
}

func TestGoldenReport(t *testing.T) {
	s := mutateMount(func(d *model.Decl, _ *model.MountFlags) {
		d.Diffs = append(d.Diffs, model.RenderDiff{Name: "ghost"})
		d.Methods = append(d.Methods, model.Method{Kind: model.MethodUpdateState, Name: "Increment"})
	})
	got := Spec(s)
	for i := range got {
		got[i] = got[i].InFile("widgets/badge.spec.toml")
	}
	want := `error SPEC1005 widgets/badge.spec.toml:BadgeSpec.Increment update-state methods "increment" and "Increment" both generate BadgeIncrementStateUpdate
note SPEC1005 widgets/badge.spec.toml:BadgeSpec.increment first declared here
error SPEC1003 widgets/badge.spec.toml:BadgeSpec.ghost render diff "ghost" references no prop or state`
	if diff := cmp.Diff(want, diag.FormatGoldenDiagnostics(got, true)); diff != "" {
		t.Fatalf("golden report (-want +got):\n%s", diff)
	}
}
