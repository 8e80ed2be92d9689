package dict

import (
	"container/list"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Value is the recursive variant cell. It holds exactly one of six
// variants at any moment; the zero Value and New() are null.
//
// The payload of the string, array and object variants lives behind a
// per-instance pointer, so every holder of the cell observes mutation and
// the diagnostic formatter has a stable identity token for containers.
//
// Values are built from Go data with NewValue or mutated in place:
//
//	v := dict.New()
//	v.SetIndex(3, "x")      // null promotes to array, pads with nulls
//	child, _ := v.At(3)     // checked read
//
// Every guarded operation returns an AccessError, ChildError or
// MethodError instead of mutating; successful mutation is all-or-nothing.
type Value struct {
	data any // nil, bool, float64, *textData, *arrayData or *objectData
}

type textData struct {
	buf []byte
}

type arrayData struct {
	items []*Value
}

type objectData struct {
	entries map[string]*Value
}

// New returns a fresh null Value.
func New() *Value {
	return &Value{}
}

// NewValue converts an arbitrary Go value into a Value. Recognized shapes:
//
//   - nil -> null
//   - bool -> boolean
//   - any integer, unsigned or float type -> number (stored as float64)
//   - string, []byte -> string
//   - *Value, Value -> deep copy
//   - slices and arrays -> array (elements converted recursively)
//   - string-keyed maps -> object
//   - integer-keyed maps -> array, keys used as indices with null padding
//   - *container/list.List -> array (front to back)
//
// Unrecognized types yield a null Value.
func NewValue(src any) *Value {
	v := &Value{}
	v.data = convert(src)
	return v
}

func convert(src any) any {
	switch d := src.(type) {
	case nil:
		return nil
	case bool:
		return d
	case int:
		return float64(d)
	case int8:
		return float64(d)
	case int16:
		return float64(d)
	case int32:
		return float64(d)
	case int64:
		return float64(d)
	case uint:
		return float64(d)
	case uint8:
		return float64(d)
	case uint16:
		return float64(d)
	case uint32:
		return float64(d)
	case uint64:
		return float64(d)
	case float32:
		return float64(d)
	case float64:
		return d
	case string:
		return &textData{buf: []byte(d)}
	case []byte:
		return &textData{buf: append([]byte(nil), d...)}
	case *Value:
		if d == nil {
			return nil
		}
		return d.cloneData()
	case Value:
		return d.cloneData()
	case []*Value:
		a := &arrayData{items: make([]*Value, 0, len(d))}
		for _, item := range d {
			a.items = append(a.items, item.Clone())
		}
		return a
	case []any:
		a := &arrayData{items: make([]*Value, 0, len(d))}
		for _, item := range d {
			a.items = append(a.items, NewValue(item))
		}
		return a
	case map[string]*Value:
		o := &objectData{entries: make(map[string]*Value, len(d))}
		for k, item := range d {
			o.entries[k] = item.Clone()
		}
		return o
	case map[string]any:
		o := &objectData{entries: make(map[string]*Value, len(d))}
		for k, item := range d {
			o.entries[k] = NewValue(item)
		}
		return o
	case map[int]any:
		a := &arrayData{}
		for k, item := range d {
			a.place(k, NewValue(item))
		}
		return a
	case *list.List:
		a := &arrayData{items: make([]*Value, 0, d.Len())}
		for e := d.Front(); e != nil; e = e.Next() {
			a.items = append(a.items, NewValue(e.Value))
		}
		return a
	}
	return convertReflect(reflect.ValueOf(src))
}

// convertReflect handles typed slices and maps ([]string, map[string]int,
// map[int64]float64, ...) that the direct switch cannot name.
func convertReflect(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return &textData{buf: []byte(rv.String())}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return &textData{buf: append([]byte(nil), rv.Bytes()...)}
		}
		a := &arrayData{items: make([]*Value, 0, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			a.items = append(a.items, NewValue(rv.Index(i).Interface()))
		}
		return a
	case reflect.Map:
		switch rv.Type().Key().Kind() {
		case reflect.String:
			o := &objectData{entries: make(map[string]*Value, rv.Len())}
			iter := rv.MapRange()
			for iter.Next() {
				o.entries[iter.Key().String()] = NewValue(iter.Value().Interface())
			}
			return o
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			a := &arrayData{}
			iter := rv.MapRange()
			for iter.Next() {
				a.place(int(iter.Key().Int()), NewValue(iter.Value().Interface()))
			}
			return a
		}
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return convert(rv.Elem().Interface())
	}
	return nil
}

// place sets slot i, padding intervening slots with nulls.
func (a *arrayData) place(i int, v *Value) {
	if i < 0 {
		return
	}
	for len(a.items) <= i {
		a.items = append(a.items, &Value{})
	}
	a.items[i] = v
}

// Kind returns the active variant of the cell.
func (v *Value) Kind() Kind {
	switch v.data.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64:
		return KindNumber
	case *textData:
		return KindString
	case *arrayData:
		return KindArray
	case *objectData:
		return KindObject
	}
	return KindNull
}

// IsNull reports whether the cell currently holds the null variant.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// IsBoolean reports whether the cell currently holds a boolean.
func (v *Value) IsBoolean() bool { return v.Kind() == KindBoolean }

// IsNumber reports whether the cell currently holds a number.
func (v *Value) IsNumber() bool { return v.Kind() == KindNumber }

// IsString reports whether the cell currently holds a string.
func (v *Value) IsString() bool { return v.Kind() == KindString }

// IsArray reports whether the cell currently holds an array.
func (v *Value) IsArray() bool { return v.Kind() == KindArray }

// IsObject reports whether the cell currently holds an object.
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// NewNull installs the null variant. It succeeds only when the cell is
// already null.
func (v *Value) NewNull() error {
	if v.Kind() != KindNull {
		return errNotA(v, KindNull)
	}
	return nil
}

// NewBoolean installs the boolean variant. A null cell becomes false, or
// the supplied seed. On a boolean cell the seed overwrites the stored
// value; without a seed the call is a no-op. Any other variant is
// rejected.
func (v *Value) NewBoolean(seed ...bool) error {
	switch v.Kind() {
	case KindNull:
		if len(seed) > 0 {
			v.data = seed[0]
		} else {
			v.data = false
		}
	case KindBoolean:
		if len(seed) > 0 {
			v.data = seed[0]
		}
	default:
		return errNotA(v, KindBoolean)
	}
	return nil
}

// NewNumber installs the number variant. A null cell becomes 0, or the
// supplied seed. On a number cell the seed overwrites the stored value;
// without a seed the call is a no-op. Any other variant is rejected.
func (v *Value) NewNumber(seed ...float64) error {
	switch v.Kind() {
	case KindNull:
		if len(seed) > 0 {
			v.data = seed[0]
		} else {
			v.data = float64(0)
		}
	case KindNumber:
		if len(seed) > 0 {
			v.data = seed[0]
		}
	default:
		return errNotA(v, KindNumber)
	}
	return nil
}

// NewString installs the string variant. A null cell becomes empty, or a
// copy of the seed. On a string cell the seed replaces the contents.
func (v *Value) NewString(seed ...string) error {
	switch v.Kind() {
	case KindNull:
		t := &textData{}
		if len(seed) > 0 {
			t.buf = []byte(seed[0])
		}
		v.data = t
	case KindString:
		if len(seed) > 0 {
			v.data.(*textData).buf = []byte(seed[0])
		}
	default:
		return errNotA(v, KindString)
	}
	return nil
}

// NewArray installs the array variant. A null cell becomes empty, or a
// deep copy of the seed. On an array cell the seed replaces the contents.
func (v *Value) NewArray(seed ...[]*Value) error {
	switch v.Kind() {
	case KindNull:
		a := &arrayData{}
		if len(seed) > 0 {
			for _, item := range seed[0] {
				a.items = append(a.items, item.Clone())
			}
		}
		v.data = a
	case KindArray:
		if len(seed) > 0 {
			a := v.data.(*arrayData)
			a.items = a.items[:0]
			for _, item := range seed[0] {
				a.items = append(a.items, item.Clone())
			}
		}
	default:
		return errNotA(v, KindArray)
	}
	return nil
}

// NewObject installs the object variant. A null cell becomes empty, or a
// deep copy of the seed. On an object cell the seed entries replace the
// contents.
func (v *Value) NewObject(seed ...map[string]*Value) error {
	switch v.Kind() {
	case KindNull:
		o := &objectData{entries: map[string]*Value{}}
		if len(seed) > 0 {
			for k, item := range seed[0] {
				o.entries[k] = item.Clone()
			}
		}
		v.data = o
	case KindObject:
		if len(seed) > 0 {
			o := v.data.(*objectData)
			o.entries = make(map[string]*Value, len(seed[0]))
			for k, item := range seed[0] {
				o.entries[k] = item.Clone()
			}
		}
	default:
		return errNotA(v, KindObject)
	}
	return nil
}

// Set replaces the cell's contents with a deep copy of src, whatever the
// cell currently holds. Assigning a cell to itself is a no-op.
func (v *Value) Set(src any) {
	if s, ok := src.(*Value); ok && s == v {
		return
	}
	v.data = convert(src)
}

// SetIfNull performs the same deep copy as Set but only into a null cell.
// A non-null destination is rejected with an AccessError; this is the one
// way to enforce write-once semantics.
func (v *Value) SetIfNull(src any) error {
	if v.Kind() != KindNull {
		return errNotNull(v)
	}
	v.Set(src)
	return nil
}

// Clear resets the cell to null from any variant.
func (v *Value) Clear() {
	v.data = nil
}

// Clone returns a deep copy of the cell. Kind and contents are preserved
// exactly; the copy shares nothing with the original.
func (v *Value) Clone() *Value {
	if v == nil {
		return &Value{}
	}
	return &Value{data: v.cloneData()}
}

func (v *Value) cloneData() any {
	switch d := v.data.(type) {
	case *textData:
		return &textData{buf: append([]byte(nil), d.buf...)}
	case *arrayData:
		a := &arrayData{items: make([]*Value, 0, len(d.items))}
		for _, item := range d.items {
			a.items = append(a.items, item.Clone())
		}
		return a
	case *objectData:
		o := &objectData{entries: make(map[string]*Value, len(d.entries))}
		for k, item := range d.entries {
			o.entries[k] = item.Clone()
		}
		return o
	default:
		return d
	}
}

// ToAny converts the cell into plain Go data: nil, bool, float64, string,
// []any or map[string]any, recursively.
func (v *Value) ToAny() any {
	switch d := v.data.(type) {
	case *textData:
		return string(d.buf)
	case *arrayData:
		out := make([]any, 0, len(d.items))
		for _, item := range d.items {
			out = append(out, item.ToAny())
		}
		return out
	case *objectData:
		m := make(map[string]any, len(d.entries))
		for k, item := range d.entries {
			m[k] = item.ToAny()
		}
		return m
	default:
		return d
	}
}

// String renders a one-line description of the cell for diagnostic and
// log display. It is not a serializer and does not round-trip: booleans
// render as 0 or 1, strings as their raw bytes and containers as their
// variant name plus a stable per-instance identity token.
func (v *Value) String() string {
	switch d := v.data.(type) {
	case nil:
		return "null"
	case bool:
		if d {
			return "1"
		}
		return "0"
	case float64:
		return strconv.FormatFloat(d, 'g', -1, 64)
	case *textData:
		return string(d.buf)
	case *arrayData:
		return fmt.Sprintf("<array %p>", d)
	case *objectData:
		return fmt.Sprintf("<object %p>", d)
	}
	return "null"
}

// sortedKeys returns the object's keys in lexicographic order.
func (o *objectData) sortedKeys() []string {
	keys := make([]string, 0, len(o.entries))
	for k := range o.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
