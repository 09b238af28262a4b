package gen

import (
	"fmt"

	"specc/internal/model"
)

type diffTarget struct {
	diff   model.RenderDiff
	member model.Member
}

func resolveDiffs(s model.Spec) ([]diffTarget, error) {
	diffs := s.RenderDiffs()
	out := make([]diffTarget, 0, len(diffs))
	for _, d := range diffs {
		m, ok := model.ReferencedMemberForDiff(s, d)
		if !ok {
			return nil, fault(s.SpecName(), "renderData", "render diff %q references no prop or state", d.Name)
		}
		out = append(out, diffTarget{diff: d, member: m})
	}
	return out, nil
}

// genRenderData emits the previous-render-data snapshot: the field holding
// it, the record/apply methods on the component and the snapshot type with
// Copy and Record.
func genRenderData(s model.Spec) (Fragment, error) {
	f := Empty()
	if !s.NeedsRenderData() {
		return f, nil
	}
	targets, err := resolveDiffs(s)
	if err != nil {
		return Fragment{}, err
	}
	bare := RenderDataName(s)
	name := instance(s, bare)

	f.Fields = append(f.Fields, Field{Name: RenderDataField, Type: "*" + name})

	var record Code
	record.Stmt("data, _ := toRecycle.(*%s)", name)
	record.If("data == nil").Stmt("data = &%s{}", name).End()
	record.Stmt("data.Record(%s)", recv)
	record.Stmt("return data")

	var apply Code
	apply.Stmt("data, _ := previous.(*%s)", name)
	apply.If("data == nil").
		Stmt("%s.%s = nil", recv, RenderDataField).
		Stmt("return").
		End()
	apply.If("%s.%s == nil", recv, RenderDataField).
		Stmt("%s.%s = &%s{}", recv, RenderDataField, name).
		End()
	apply.Stmt("%s.%s.Copy(data)", recv, RenderDataField)

	f.Methods = append(f.Methods,
		Method{
			Recv:    recv,
			Name:    "RecordRenderData",
			Params:  []Param{{Name: "toRecycle", Type: runtimePkg + ".RenderData"}},
			Results: runtimePkg + ".RenderData",
			Body:    record.Lines(),
		},
		Method{
			Recv:   recv,
			Name:   "ApplyPreviousRenderData",
			Params: []Param{{Name: "previous", Type: runtimePkg + ".RenderData"}},
			Body:   apply.Lines(),
		},
	)

	decl := TypeDecl{
		Name: bare,
		Doc:  fmt.Sprintf("%s records the props and state %s compares across renders.", bare, s.ComponentName()),
	}
	var cp, rec Code
	for _, t := range targets {
		decl.Fields = append(decl.Fields, Field{
			Name: t.diff.Name,
			Type: t.member.Type.Expr,
			Tag:  fmt.Sprintf(`diff:"%s"`, t.member.Role),
		})
		cp.Stmt("d.%s = info.%s", t.diff.Name, t.diff.Name)
		rec.Stmt("d.%s = %s", t.diff.Name, fieldRef("component", t.member))
	}
	decl.Methods = append(decl.Methods,
		Method{
			Recv:     "d",
			RecvType: bare,
			Name:     "Copy",
			Params:   []Param{{Name: "info", Type: "*" + name}},
			Body:     cp.Lines(),
		},
		Method{
			Recv:     "d",
			RecvType: bare,
			Name:     "Record",
			Params:   []Param{{Name: "component", Type: "*" + ComponentType(s)}},
			Body:     rec.Lines(),
		},
	)
	f.Types = append(f.Types, decl)
	return f, nil
}
