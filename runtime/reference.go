package runtime

// Reference is a copy-on-write handle to an external resource such as an
// image or a drawable.
type Reference[T any] interface {
	Get() T
	// ShouldUpdate reports whether switching from this handle to next needs
	// the mounted content refreshed.
	ShouldUpdate(next Reference[T]) bool
}

// ShouldUpdateReference is the null-safe form of Reference.ShouldUpdate.
func ShouldUpdateReference[T any](prev, next Reference[T]) bool {
	if isNil(prev) || isNil(next) {
		return isNil(prev) != isNil(next)
	}
	return prev.ShouldUpdate(next)
}

// ValueReference is a Reference to an immutable value compared with Equal.
type ValueReference[T any] struct {
	Value T
}

func (r ValueReference[T]) Get() T { return r.Value }

func (r ValueReference[T]) ShouldUpdate(next Reference[T]) bool {
	return !Equal(r.Value, next.Get())
}
