package runtime

import "reflect"

// Equaler is implemented by values with their own structural equality.
type Equaler interface {
	Equals(other any) bool
}

// Equal is the null-safe structural comparison used for reference-typed
// members without a dedicated strategy.
func Equal(a, b any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equals(b)
	}
	return reflect.DeepEqual(a, b)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// SlicesEqual compares element-wise with Equal. A nil slice equals an empty
// one.
func SlicesEqual[S ~[]E, E any](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Equivalent compares nested components with their own structural
// predicate. Two nil components are equivalent.
func Equivalent[C interface{ IsEquivalentTo(C) bool }](a, b C) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return a.IsEquivalentTo(b)
}
