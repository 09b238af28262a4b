package model

// MountFlags carries the settings only a mount spec has.
type MountFlags struct {
	CanMountIncrementally bool
	ShouldUseDisplayList  bool
	// PoolSize is the number of preallocated content instances kept by the
	// mount pool; 0 disables pooling.
	PoolSize       int
	CanPreallocate bool
	// MountType is "view", "drawable" or "none".
	MountType string
}

// MountSpec is a spec that mounts content directly. It always compares by
// identity first and never deep-copies.
type MountSpec struct {
	Base
	flags MountFlags
}

var _ Spec = (*MountSpec)(nil)

// NewMountSpec freezes d into a mount spec.
func NewMountSpec(d Decl, flags MountFlags) *MountSpec {
	if flags.MountType == "" {
		flags.MountType = "none"
	}
	return &MountSpec{Base: newBase(d), flags: flags}
}

func (s *MountSpec) Variant() Variant { return VariantMount }

func (s *MountSpec) ShouldCheckID() bool { return true }
func (s *MountSpec) HasDeepCopy() bool   { return false }

func (s *MountSpec) ComponentClass() Type {
	return Type{Expr: RuntimePackage + ".Component", Kind: KindComponent}
}

func (s *MountSpec) CanMountIncrementally() bool { return s.flags.CanMountIncrementally }
func (s *MountSpec) ShouldUseDisplayList() bool  { return s.flags.ShouldUseDisplayList }
func (s *MountSpec) PoolSize() int               { return s.flags.PoolSize }
func (s *MountSpec) CanPreallocate() bool        { return s.flags.CanPreallocate }
func (s *MountSpec) MountType() string           { return s.flags.MountType }

// Flags returns a copy of the mount settings.
func (s *MountSpec) Flags() MountFlags { return s.flags }
