package specfile

import "specc/internal/model"

// FromSpec renders s back into the file layout. Decode(Encode(FromSpec(s)))
// yields a spec equal to s.
func FromSpec(s model.Spec) *File {
	f := &File{
		Spec: SpecTable{
			Name:       s.QualifiedName(),
			Variant:    s.Variant().String(),
			TypeVars:   s.TypeVariables(),
			Public:     s.IsPublic(),
			Doc:        s.Doc(),
			Tags:       s.Tags(),
			Imports:    s.Imports(),
			PureRender: s.IsPureRender(),
		},
	}
	if s.ComponentName() != defaultComponentName(s.QualifiedName()) {
		f.Spec.Component = s.ComponentName()
	}
	for _, d := range s.RenderDiffs() {
		f.Spec.Diffs = append(f.Spec.Diffs, d.Name)
	}
	if inj, ok := s.Injection(); ok {
		f.Spec.Injection = inj.Framework
	}

	switch spec := s.(type) {
	case *model.MountSpec:
		fl := spec.Flags()
		f.Mount = &MountTable{
			Incremental: fl.CanMountIncrementally,
			DisplayList: fl.ShouldUseDisplayList,
			PoolSize:    int64(fl.PoolSize),
			Preallocate: fl.CanPreallocate,
			MountType:   fl.MountType,
		}
	case *model.RenderSpec:
		if spec.IsSection() {
			f.Render = &RenderTable{Section: true}
		}
	}

	for _, m := range s.Members() {
		mt := MemberTable{
			Name:     m.Name,
			Role:     m.Role.String(),
			Type:     m.Type.Expr,
			Doc:      m.Doc,
			Optional: m.Optional,
			Default:  m.Default,
			Lazy:     m.CanUpdateLazily,
		}
		if m.ResType != model.ResNone {
			mt.ResType = m.ResType.String()
		}
		f.Members = append(f.Members, mt)
	}
	for _, m := range s.Methods() {
		mt := MethodTable{
			Name:    m.Name,
			Kind:    m.Kind.String(),
			Returns: m.Returns.Expr,
			Event:   m.Event.Expr,
		}
		for _, p := range m.Params {
			pt := ParamTable{Name: p.Name, Type: p.Type.Expr}
			if p.Role != model.ParamContext {
				pt.Role = p.Role.String()
			}
			mt.Params = append(mt.Params, pt)
		}
		f.Methods = append(f.Methods, mt)
	}
	return f
}

func defaultComponentName(qualified string) string {
	name := model.SimpleName(qualified)
	if len(name) > len("Spec") && name[len(name)-len("Spec"):] == "Spec" {
		return name[:len(name)-len("Spec")]
	}
	return name
}
