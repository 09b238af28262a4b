package specfile

// Ext is the extension spec files are discovered by.
const Ext = ".spec.toml"

// File mirrors the TOML layout of a spec file.
type File struct {
	Spec    SpecTable     `toml:"spec"`
	Mount   *MountTable   `toml:"mount,omitempty"`
	Render  *RenderTable  `toml:"render,omitempty"`
	Members []MemberTable `toml:"member,omitempty"`
	Methods []MethodTable `toml:"method,omitempty"`
}

type SpecTable struct {
	Name       string   `toml:"name"`
	Variant    string   `toml:"variant,omitempty"` // "mount" or "render"
	Component  string   `toml:"component,omitempty"`
	TypeVars   []string `toml:"type_vars,omitempty"`
	Public     bool     `toml:"public,omitempty"`
	Doc        string   `toml:"doc,omitempty"`
	Tags       []string `toml:"tags,omitempty"`
	Imports    []string `toml:"imports,omitempty"`
	Diffs      []string `toml:"diffs,omitempty"`
	Injection  string   `toml:"injection,omitempty"`
	PureRender bool     `toml:"pure_render,omitempty"`
}

type MountTable struct {
	Incremental bool   `toml:"incremental,omitempty"`
	DisplayList bool   `toml:"display_list,omitempty"`
	PoolSize    int64  `toml:"pool_size,omitempty"`
	Preallocate bool   `toml:"preallocate,omitempty"`
	MountType   string `toml:"mount_type,omitempty"`
}

type RenderTable struct {
	Section bool `toml:"section"`
}

type MemberTable struct {
	Name     string `toml:"name"`
	Role     string `toml:"role"`
	Type     string `toml:"type"`
	Doc      string `toml:"doc,omitempty"`
	ResType  string `toml:"res_type,omitempty"`
	Optional bool   `toml:"optional,omitempty"`
	Default  string `toml:"default,omitempty"`
	Lazy     bool   `toml:"lazy,omitempty"`
}

type MethodTable struct {
	Name    string       `toml:"name"`
	Kind    string       `toml:"kind"`
	Returns string       `toml:"returns,omitempty"`
	Event   string       `toml:"event,omitempty"`
	Params  []ParamTable `toml:"param,omitempty"`
}

type ParamTable struct {
	Name string `toml:"name"`
	// Role defaults to "context".
	Role string `toml:"role,omitempty"`
	Type string `toml:"type"`
}
