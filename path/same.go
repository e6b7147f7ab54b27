package path

import "reflect"

// Same reports whether a and b are the same value by reference.
//
// Maps, pointers, funcs and chans are Same when they point at the same
// object. Slices are Same when they share data pointer, length and capacity.
// Other values are Same when they are comparable at runtime and ==. Values
// that cannot be compared, such as structs holding slices, are never Same.
//
// Go gives zero-size allocations no identity of their own: every empty,
// non-nil slice of capacity zero may share one data pointer, as may pointers
// to zero-size values. Such values are Same whenever their types match, so
// replacing an empty slice with another empty slice reads as no change.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
