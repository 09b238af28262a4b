package runtime

import "reflect"

// ShallowCopy clones a nested component or section. Values implementing
// ComponentCopier or SectionCopier copy themselves; sections are asked for a
// non-deep copy. Anything else that is a pointer to a struct is cloned with
// a plain struct copy. Nil stays nil.
func ShallowCopy[C any](c C) C {
	if isNil(c) {
		return c
	}
	switch v := any(c).(type) {
	case ComponentCopier:
		if out, ok := v.MakeShallowCopy().(C); ok {
			return out
		}
	case SectionCopier:
		if out, ok := v.MakeShallowCopy(false).(C); ok {
			return out
		}
	}
	rv := reflect.ValueOf(c)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return c
	}
	clone := reflect.New(rv.Elem().Type())
	clone.Elem().Set(rv.Elem())
	if out, ok := clone.Interface().(C); ok {
		return out
	}
	return c
}

// Reset sets *v to its zero value; generated copies use it to drop
// inter-stage caches.
func Reset[T any](v *T) {
	var zero T
	*v = zero
}
