package runtime

// Generated components only declare the flag accessors whose value differs
// from the default; the helpers below read a flag with its default applied.

type (
	poolSizer     interface{ PoolSize() int }
	preallocator  interface{ CanPreallocate() bool }
	incremental   interface{ CanMountIncrementally() bool }
	displayLister interface{ ShouldUseDisplayList() bool }
	mountTyper    interface{ MountType() MountType }
	pureRenderer  interface{ IsPureRender() bool }
)

// DefaultPoolSize is used for mount components that do not declare one.
const DefaultPoolSize = 3

func PoolSize(c Component) int {
	if p, ok := c.(poolSizer); ok {
		return p.PoolSize()
	}
	return DefaultPoolSize
}

func CanPreallocate(c Component) bool {
	p, ok := c.(preallocator)
	return ok && p.CanPreallocate()
}

func CanMountIncrementally(c Component) bool {
	p, ok := c.(incremental)
	return ok && p.CanMountIncrementally()
}

func ShouldUseDisplayList(c Component) bool {
	p, ok := c.(displayLister)
	return ok && p.ShouldUseDisplayList()
}

// MountTypeOf is MountNone for components that mount nothing.
func MountTypeOf(c Component) MountType {
	if p, ok := c.(mountTyper); ok {
		return p.MountType()
	}
	return MountNone
}

func IsPureRender(c any) bool {
	p, ok := c.(pureRenderer)
	return ok && p.IsPureRender()
}
