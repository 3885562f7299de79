// Package document models the weakly-typed serialized trees found inside the
// game's asset containers. A Value is one node of such a tree: null, bool,
// number, string, ordered-key object, or list. The container layer produces a
// Value per named object; the codec layer reads and rebuilds them.
package document

import "strconv"

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is one node of a serialized tree. The zero value is null.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	intNum  bool // numVal carries an integer, emit without a fraction
	strVal  string
	obj     *Object
	list    []*Value
}

func Null() *Value { return &Value{kind: KindNull} }

func Bool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

func Int(i int64) *Value {
	return &Value{kind: KindNumber, numVal: float64(i), intNum: true}
}

func Float(f float64) *Value { return &Value{kind: KindNumber, numVal: f} }

func String(s string) *Value { return &Value{kind: KindString, strVal: s} }

// List wraps the given elements. The slice is owned by the Value afterwards.
func List(elems ...*Value) *Value { return &Value{kind: KindList, list: elems} }

func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool { return v.Kind() == KindNull }

func (v *Value) Bool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.boolVal, true
}

func (v *Value) Float() (float64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	return v.numVal, true
}

func (v *Value) Int() (int64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	return int64(v.numVal), true
}

func (v *Value) Str() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.strVal, true
}

// Object returns the object payload, or nil if the value is not an object.
func (v *Value) Object() *Object {
	if v.Kind() != KindObject {
		return nil
	}
	return v.obj
}

// Elems returns the list payload, or nil if the value is not a list.
func (v *Value) Elems() []*Value {
	if v.Kind() != KindList {
		return nil
	}
	return v.list
}

// Append adds elements to a list value.
func (v *Value) Append(elems ...*Value) {
	if v.Kind() == KindList {
		v.list = append(v.list, elems...)
	}
}

// FloatOr reads a numeric value with a fallback, for optional fields.
func (v *Value) FloatOr(def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

// Clone deep-copies the value. Used when threading untouched subtrees of an
// original document into a rebuilt one.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	switch v.kind {
	case KindObject:
		out := NewObject()
		for _, key := range v.obj.Keys() {
			field, _ := v.obj.Get(key)
			out.obj.Set(key, field.Clone())
		}
		return out
	case KindList:
		elems := make([]*Value, len(v.list))
		for i, e := range v.list {
			elems[i] = e.Clone()
		}
		return List(elems...)
	default:
		c := *v
		return &c
	}
}

// Object is an insertion-ordered set of key/value fields. The serialized
// formats the codec handles are order-sensitive, so a plain map is not enough.
type Object struct {
	keys   []string
	fields map[string]*Value
}

// NewObject returns an empty object value.
func NewObject() *Value {
	return &Value{
		kind: KindObject,
		obj:  &Object{fields: make(map[string]*Value)},
	}
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Set adds or replaces a field. A new key is appended; an existing key keeps
// its position.
func (o *Object) Set(key string, v *Value) {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// Field is a Get that tolerates a nil receiver and missing keys, returning
// null for both. Decode paths use it to probe optional fields.
func (o *Object) Field(key string) *Value {
	if v, ok := o.Get(key); ok {
		return v
	}
	return Null()
}
