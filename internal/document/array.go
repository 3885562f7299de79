package document

// The containers serialize list-typed fields in two shapes: a bare list, or
// an object holding the list under a single "Array" key. Read paths accept
// both; fields the codec rebuilds are always written back as a bare list,
// which is the only shape the external writer accepts for new content.

const arrayKey = "Array"

// AsArray normalizes a list-typed field to its elements. It accepts a bare
// list, an object wrapping the list under "Array", and returns nil for
// anything else (including null).
func AsArray(v *Value) []*Value {
	switch v.Kind() {
	case KindList:
		return v.Elems()
	case KindObject:
		if inner, ok := v.Object().Get(arrayKey); ok && inner.Kind() == KindList {
			return inner.Elems()
		}
	}
	return nil
}

// IsWrappedArray reports whether the field arrived in the Object{"Array"}
// shape. Untouched fields keep whatever shape they arrived in on write-back.
func IsWrappedArray(v *Value) bool {
	if v.Kind() != KindObject {
		return false
	}
	inner, ok := v.Object().Get(arrayKey)
	return ok && inner.Kind() == KindList
}

// RewrapArray re-emits elems in the same shape the original field used.
// Side-table rows are replaced in place but must not change shape, or the
// external reader rejects the object.
func RewrapArray(original *Value, elems []*Value) *Value {
	if IsWrappedArray(original) {
		wrapped := NewObject()
		wrapped.Object().Set(arrayKey, List(elems...))
		return wrapped
	}
	return List(elems...)
}

// ToAny converts a Value into plain Go values (map[string]any, []any,
// float64, string, bool, nil) for tooling that expects generic JSON trees,
// such as JSONPath evaluation. Object key order is not preserved.
func ToAny(v *Value) any {
	switch v.Kind() {
	case KindBool:
		b, _ := v.Bool()
		return b
	case KindNumber:
		if v.intNum {
			i, _ := v.Int()
			return i
		}
		f, _ := v.Float()
		return f
	case KindString:
		s, _ := v.Str()
		return s
	case KindObject:
		m := make(map[string]any, v.Object().Len())
		for _, key := range v.Object().Keys() {
			field, _ := v.Object().Get(key)
			m[key] = ToAny(field)
		}
		return m
	case KindList:
		elems := v.Elems()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = ToAny(e)
		}
		return out
	default:
		return nil
	}
}
