package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"specc/internal/model"
)

// FormatSpecPretty prints the IR of one spec as a tree.
func FormatSpecPretty(w io.Writer, s model.Spec) error {
	if s == nil {
		return fmt.Errorf("nil spec")
	}
	fmt.Fprintf(w, "%s %s -> %s", s.Variant(), s.QualifiedName(), s.ComponentName())
	if tv := s.TypeVariables(); len(tv) > 0 {
		fmt.Fprintf(w, "[%s]", strings.Join(tv, ", "))
	}
	fmt.Fprintln(w)

	sections := specSections(s)
	for i, sec := range sections {
		last := i == len(sections)-1
		head, prefix := "├─", "│  "
		if last {
			head, prefix = "└─", "   "
		}
		fmt.Fprintf(w, "%s %s\n", head, sec.title)
		for j, line := range sec.lines {
			mark := "├─"
			if j == len(sec.lines)-1 {
				mark = "└─"
			}
			fmt.Fprintf(w, "%s%s %s\n", prefix, mark, line)
		}
	}
	return nil
}

type treeSection struct {
	title string
	lines []string
}

func specSections(s model.Spec) []treeSection {
	var out []treeSection

	flags := []string{
		fmt.Sprintf("public: %t", s.IsPublic()),
		fmt.Sprintf("pure_render: %t", s.IsPureRender()),
		fmt.Sprintf("check_id: %t", s.ShouldCheckID()),
		fmt.Sprintf("deep_copy: %t", s.HasDeepCopy()),
	}
	if ms, ok := s.(*model.MountSpec); ok {
		f := ms.Flags()
		flags = append(flags,
			fmt.Sprintf("incremental: %t", f.CanMountIncrementally),
			fmt.Sprintf("display_list: %t", f.ShouldUseDisplayList),
			fmt.Sprintf("pool_size: %d", f.PoolSize),
			fmt.Sprintf("preallocate: %t", f.CanPreallocate),
			fmt.Sprintf("mount_type: %s", f.MountType),
		)
	}
	if inj, ok := s.Injection(); ok {
		flags = append(flags, "injection: "+inj.Framework)
	}
	out = append(out, treeSection{title: "Flags", lines: flags})

	for _, role := range model.Roles {
		var lines []string
		for _, m := range s.Members() {
			if m.Role == role {
				lines = append(lines, formatMember(m))
			}
		}
		if len(lines) > 0 {
			out = append(out, treeSection{title: "Members(" + role.String() + ")", lines: lines})
		}
	}

	if methods := s.Methods(); len(methods) > 0 {
		lines := make([]string, 0, len(methods))
		for _, m := range methods {
			lines = append(lines, formatMethod(m))
		}
		out = append(out, treeSection{title: "Methods", lines: lines})
	}

	if diffs := s.RenderDiffs(); len(diffs) > 0 {
		lines := make([]string, 0, len(diffs))
		for _, d := range diffs {
			lines = append(lines, d.Name)
		}
		out = append(out, treeSection{title: "Diffs", lines: lines})
	}
	return out
}

func formatMember(m model.Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)", m.Name, m.Type.Expr, m.Type.Kind)
	if m.ResType != model.ResNone {
		fmt.Fprintf(&b, " res=%s", m.ResType)
	}
	if m.Optional {
		b.WriteString(" optional")
	}
	if m.Default != "" {
		fmt.Fprintf(&b, " default=%s", m.Default)
	}
	if m.CanUpdateLazily {
		b.WriteString(" lazy")
	}
	return b.String()
}

func formatMethod(m model.Method) string {
	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, fmt.Sprintf("%s %s @%s", p.Name, p.Type.Expr, p.Role))
	}
	s := fmt.Sprintf("%s %s(%s)", m.Kind, m.Name, strings.Join(params, ", "))
	if !m.Returns.IsZero() {
		s += " " + m.Returns.Expr
	}
	if !m.Event.IsZero() {
		s += " on " + m.Event.Expr
	}
	return s
}

// SpecJSON is the serialisable form of a spec's IR.
type SpecJSON struct {
	Variant       string       `json:"variant"`
	QualifiedName string       `json:"qualified_name"`
	Component     string       `json:"component"`
	TypeVariables []string     `json:"type_variables"`
	Public        bool         `json:"public"`
	PureRender    bool         `json:"pure_render"`
	CheckID       bool         `json:"check_id"`
	DeepCopy      bool         `json:"deep_copy"`
	Mount         *MountJSON   `json:"mount,omitempty"`
	Injection     string       `json:"injection,omitempty"`
	Members       []MemberJSON `json:"members"`
	Methods       []MethodJSON `json:"methods"`
	Diffs         []string     `json:"diffs"`
}

type MountJSON struct {
	Incremental bool   `json:"incremental"`
	DisplayList bool   `json:"display_list"`
	PoolSize    int    `json:"pool_size"`
	Preallocate bool   `json:"preallocate"`
	MountType   string `json:"mount_type"`
}

type MemberJSON struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Kind     string `json:"kind"`
	ResType  string `json:"res_type,omitempty"`
	Optional bool   `json:"optional,omitempty"`
	Default  string `json:"default,omitempty"`
	Lazy     bool   `json:"lazy,omitempty"`
}

type MethodJSON struct {
	Kind    string      `json:"kind"`
	Name    string      `json:"name"`
	Params  []ParamJSON `json:"params"`
	Returns string      `json:"returns,omitempty"`
	Event   string      `json:"event,omitempty"`
}

type ParamJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Role string `json:"role"`
}

// BuildSpecJSON converts the IR without serialising it.
func BuildSpecJSON(s model.Spec) SpecJSON {
	out := SpecJSON{
		Variant:       s.Variant().String(),
		QualifiedName: s.QualifiedName(),
		Component:     s.ComponentName(),
		TypeVariables: s.TypeVariables(),
		Public:        s.IsPublic(),
		PureRender:    s.IsPureRender(),
		CheckID:       s.ShouldCheckID(),
		DeepCopy:      s.HasDeepCopy(),
		Members:       []MemberJSON{},
		Methods:       []MethodJSON{},
		Diffs:         []string{},
	}
	if ms, ok := s.(*model.MountSpec); ok {
		f := ms.Flags()
		out.Mount = &MountJSON{
			Incremental: f.CanMountIncrementally,
			DisplayList: f.ShouldUseDisplayList,
			PoolSize:    f.PoolSize,
			Preallocate: f.CanPreallocate,
			MountType:   f.MountType,
		}
	}
	if inj, ok := s.Injection(); ok {
		out.Injection = inj.Framework
	}
	for _, m := range s.Members() {
		mj := MemberJSON{
			Role:     m.Role.String(),
			Name:     m.Name,
			Type:     m.Type.Expr,
			Kind:     m.Type.Kind.String(),
			Optional: m.Optional,
			Default:  m.Default,
			Lazy:     m.CanUpdateLazily,
		}
		if m.ResType != model.ResNone {
			mj.ResType = m.ResType.String()
		}
		out.Members = append(out.Members, mj)
	}
	for _, m := range s.Methods() {
		mj := MethodJSON{
			Kind:    m.Kind.String(),
			Name:    m.Name,
			Params:  make([]ParamJSON, 0, len(m.Params)),
			Returns: m.Returns.Expr,
			Event:   m.Event.Expr,
		}
		for _, p := range m.Params {
			mj.Params = append(mj.Params, ParamJSON{Name: p.Name, Type: p.Type.Expr, Role: p.Role.String()})
		}
		out.Methods = append(out.Methods, mj)
	}
	for _, d := range s.RenderDiffs() {
		out.Diffs = append(out.Diffs, d.Name)
	}
	return out
}

// FormatSpecJSON writes the IR of one spec as indented JSON.
func FormatSpecJSON(w io.Writer, s model.Spec) error {
	if s == nil {
		return fmt.Errorf("nil spec")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildSpecJSON(s))
}
