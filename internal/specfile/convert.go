package specfile

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"specc/internal/diag"
	"specc/internal/model"
)

type converter struct {
	file     string
	spec     string
	typeVars []string
	// rep drops repeats: the same problem in several [[member]] tables of
	// one spec is reported once per origin.
	rep diag.Reporter
}

func newConverter(file string, rep diag.Reporter) *converter {
	return &converter{file: file, rep: diag.NewDedupReporter(rep)}
}

func (c *converter) errorf(o diag.Origin, format string, args ...any) {
	o.File = c.file
	o.Spec = c.spec
	diag.ReportError(c.rep, diag.IOBadValue, o, fmt.Sprintf(format, args...)).Emit()
}

func (c *converter) warnf(o diag.Origin, format string, args ...any) {
	o.File = c.file
	o.Spec = c.spec
	diag.ReportWarning(c.rep, diag.IOBadValue, o, fmt.Sprintf(format, args...)).Emit()
}

// ident normalises a declared name so that visually identical identifiers
// written with different code point sequences compare equal.
func ident(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func idents(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = ident(s)
	}
	return out
}

func (c *converter) convert(f *File) model.Spec {
	name := ident(f.Spec.Name)
	c.spec = model.SimpleName(name)
	if name == "" {
		c.errorf(diag.Origin{}, "[spec].name is required")
		return nil
	}
	c.typeVars = idents(f.Spec.TypeVars)

	d := model.Decl{
		QualifiedName: name,
		ComponentName: ident(f.Spec.Component),
		TypeVariables: c.typeVars,
		Public:        f.Spec.Public,
		Doc:           f.Spec.Doc,
		Tags:          f.Spec.Tags,
		Imports:       f.Spec.Imports,
		PureRender:    f.Spec.PureRender,
	}
	for _, m := range f.Members {
		if member, ok := c.member(m); ok {
			d.Members = append(d.Members, member)
		}
	}
	for _, m := range f.Methods {
		if method, ok := c.method(m); ok {
			d.Methods = append(d.Methods, method)
		}
	}
	for _, diff := range f.Spec.Diffs {
		d.Diffs = append(d.Diffs, model.RenderDiff{Name: ident(diff)})
	}
	if fw := strings.TrimSpace(f.Spec.Injection); fw != "" {
		d.Injection = &model.Injection{Framework: fw}
	}

	switch c.variant(f) {
	case model.VariantMount:
		if f.Render != nil {
			c.warnf(diag.Origin{}, "[render] is ignored for a mount spec")
		}
		return model.NewMountSpec(d, c.mountFlags(f.Mount))
	case model.VariantRender:
		if f.Mount != nil {
			c.warnf(diag.Origin{}, "[mount] is ignored for a render spec")
		}
		var flags model.RenderFlags
		if f.Render != nil {
			flags.Section = f.Render.Section
		}
		return model.NewRenderSpec(d, flags)
	default:
		return nil
	}
}

// variant reads [spec].variant; without it the presence of a [mount] table
// decides.
func (c *converter) variant(f *File) model.Variant {
	switch strings.ToLower(strings.TrimSpace(f.Spec.Variant)) {
	case "mount":
		return model.VariantMount
	case "render":
		return model.VariantRender
	case "":
		if f.Mount != nil {
			return model.VariantMount
		}
		return model.VariantRender
	default:
		c.errorf(diag.Origin{}, "unknown variant %q, want mount or render", f.Spec.Variant)
		return 0
	}
}

func (c *converter) mountFlags(t *MountTable) model.MountFlags {
	if t == nil {
		return model.MountFlags{}
	}
	pool, err := safecast.Conv[int32](t.PoolSize)
	if err != nil {
		c.errorf(diag.Origin{}, "pool_size %d is out of range", t.PoolSize)
	}
	return model.MountFlags{
		CanMountIncrementally: t.Incremental,
		ShouldUseDisplayList:  t.DisplayList,
		PoolSize:              int(pool),
		CanPreallocate:        t.Preallocate,
		MountType:             strings.ToLower(strings.TrimSpace(t.MountType)),
	}
}

// typ parses a type expression. An empty expression yields the zero type,
// which the validator reports.
func (c *converter) typ(o diag.Origin, expr string) (model.Type, bool) {
	if strings.TrimSpace(expr) == "" {
		return model.Type{}, true
	}
	t, err := model.ParseType(expr, c.typeVars...)
	if err != nil {
		c.errorf(o, "%v", err)
		return model.Type{}, false
	}
	return t, true
}

func (c *converter) member(t MemberTable) (model.Member, bool) {
	name := ident(t.Name)
	o := diag.Origin{Member: name}
	role, ok := model.ParseRole(strings.TrimSpace(t.Role))
	if !ok {
		c.errorf(o, "unknown member role %q", t.Role)
		return model.Member{}, false
	}
	res, ok := model.ParseResType(strings.TrimSpace(t.ResType))
	if !ok {
		c.errorf(o, "unknown res_type %q", t.ResType)
		return model.Member{}, false
	}
	typ, ok := c.typ(o, t.Type)
	if !ok {
		return model.Member{}, false
	}

	if role != model.RoleProp && (t.Optional || t.Default != "" || res != model.ResNone) {
		c.warnf(o, "optional, default and res_type only apply to props")
	}
	if role != model.RoleState && t.Lazy {
		c.warnf(o, "lazy only applies to state")
	}
	m := model.Member{
		Role: role,
		Name: name,
		Type: typ,
		Doc:  t.Doc,
	}
	if role == model.RoleProp {
		m.ResType = res
		m.Optional = t.Optional
		m.Default = t.Default
	}
	if role == model.RoleState {
		m.CanUpdateLazily = t.Lazy
	}
	return m, true
}

func (c *converter) method(t MethodTable) (model.Method, bool) {
	name := ident(t.Name)
	o := diag.Origin{Method: name}
	kind, ok := model.ParseMethodKind(strings.TrimSpace(t.Kind))
	if !ok {
		c.errorf(o, "unknown method kind %q", t.Kind)
		return model.Method{}, false
	}
	m := model.Method{Kind: kind, Name: name, Params: []model.Param{}}

	valid := true
	if m.Returns, ok = c.typ(o, t.Returns); !ok {
		valid = false
	}
	if m.Event, ok = c.typ(o, t.Event); !ok {
		valid = false
	}
	if !m.Event.IsZero() && kind != model.MethodEvent && kind != model.MethodTrigger {
		c.warnf(o, "event only applies to event and trigger methods")
	}
	for _, pt := range t.Params {
		p, ok := c.param(name, pt)
		if !ok {
			valid = false
			continue
		}
		m.Params = append(m.Params, p)
	}
	return m, valid
}

func (c *converter) param(method string, t ParamTable) (model.Param, bool) {
	name := ident(t.Name)
	o := diag.Origin{Method: method, Param: name}
	role := model.ParamContext
	if r := strings.TrimSpace(t.Role); r != "" {
		var ok bool
		if role, ok = model.ParseParamRole(r); !ok {
			c.errorf(o, "unknown parameter role %q", t.Role)
			return model.Param{}, false
		}
	}
	typ, ok := c.typ(o, t.Type)
	if !ok {
		return model.Param{}, false
	}
	return model.Param{Name: name, Type: typ, Role: role}, true
}
