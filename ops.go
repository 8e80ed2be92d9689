package dict

import (
	"container/list"
	"math"
	"sort"
	"strconv"
)

// numericOperand reads the receiver of an arithmetic operator: booleans
// count as 0 or 1, numbers as themselves. Anything else rejects the
// operator with a MethodError carrying its name.
func (v *Value) numericOperand(op string) (float64, error) {
	switch d := v.data.(type) {
	case bool:
		if d {
			return 1, nil
		}
		return 0, nil
	case float64:
		return d, nil
	}
	return 0, errNoMethod(v, op)
}

// rhsNumeric reads the right-hand side of an arithmetic operator under
// the access contract: booleans and numbers pass, everything else is an
// AccessError against the operand.
func rhsNumeric(rhs *Value) (float64, error) {
	switch d := rhs.data.(type) {
	case bool:
		if d {
			return 1, nil
		}
		return 0, nil
	case float64:
		return d, nil
	}
	return 0, errNotA(rhs, KindNumber)
}

// Add returns receiver + rhs. On a boolean or number receiver this is
// numeric addition (booleans count as 0 or 1); on a string receiver with
// a string operand it is concatenation into a new string value. The
// receiver's own variant is never changed. Other receivers reject the
// operator.
func (v *Value) Add(rhs *Value) (*Value, error) {
	if t, ok := v.data.(*textData); ok {
		rt, ok := rhs.data.(*textData)
		if !ok {
			return nil, errNoMethod(v, "operator+")
		}
		return NewValue(string(t.buf) + string(rt.buf)), nil
	}
	l, err := v.numericOperand("operator+")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(l + r), nil
}

// Sub returns receiver - rhs on boolean and number receivers.
func (v *Value) Sub(rhs *Value) (*Value, error) {
	l, err := v.numericOperand("operator-")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(l - r), nil
}

// Mul returns receiver * rhs on boolean and number receivers.
func (v *Value) Mul(rhs *Value) (*Value, error) {
	l, err := v.numericOperand("operator*")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(l * r), nil
}

// Div returns receiver / rhs on boolean and number receivers. Division by
// zero follows float64 semantics, unwrapped.
func (v *Value) Div(rhs *Value) (*Value, error) {
	l, err := v.numericOperand("operator/")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(l / r), nil
}

// Mod returns the remainder of receiver / rhs with the quotient truncated
// toward zero: x - trunc(x/y)*y.
func (v *Value) Mod(rhs *Value) (*Value, error) {
	l, err := v.numericOperand("operator%")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(l - math.Trunc(l/r)*r), nil
}

// Neg returns the numeric negation of a boolean or number receiver.
func (v *Value) Neg() (*Value, error) {
	l, err := v.numericOperand("operator-")
	if err != nil {
		return nil, err
	}
	return NewValue(-l), nil
}

// Pos passes the underlying numeric through unchanged.
func (v *Value) Pos() (*Value, error) {
	l, err := v.numericOperand("operator+")
	if err != nil {
		return nil, err
	}
	return NewValue(l), nil
}

// BitNot complements the receiver truncated to a signed 64-bit integer.
func (v *Value) BitNot() (*Value, error) {
	l, err := v.numericOperand("operator~")
	if err != nil {
		return nil, err
	}
	return NewValue(^int64(l)), nil
}

// BitAnd computes receiver & rhs over the int64 truncations.
func (v *Value) BitAnd(rhs *Value) (*Value, error) {
	l, err := v.numericOperand("operator&")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(int64(l) & int64(r)), nil
}

// BitOr computes receiver | rhs over the int64 truncations.
func (v *Value) BitOr(rhs *Value) (*Value, error) {
	l, err := v.numericOperand("operator|")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(int64(l) | int64(r)), nil
}

// BitXor computes receiver ^ rhs over the int64 truncations.
func (v *Value) BitXor(rhs *Value) (*Value, error) {
	l, err := v.numericOperand("operator^")
	if err != nil {
		return nil, err
	}
	r, err := rhsNumeric(rhs)
	if err != nil {
		return nil, err
	}
	return NewValue(int64(l) ^ int64(r)), nil
}

// Equal reports structural equality. Cells of unequal variants are never
// equal; equal variants compare their payloads recursively.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch d := v.data.(type) {
	case nil:
		return true
	case bool:
		return d == other.data.(bool)
	case float64:
		return d == other.data.(float64)
	case *textData:
		return string(d.buf) == string(other.data.(*textData).buf)
	case *arrayData:
		o := other.data.(*arrayData)
		if len(d.items) != len(o.items) {
			return false
		}
		for i := range d.items {
			if !d.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case *objectData:
		o := other.data.(*objectData)
		if len(d.entries) != len(o.entries) {
			return false
		}
		for k, item := range d.entries {
			oitem, ok := o.entries[k]
			if !ok || !item.Equal(oitem) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare orders two cells of the same variant and reports ok. Cells of
// unequal variants do not order: ok is false, and every derived relation
// (Less, Greater, ...) is false.
func (v *Value) Compare(other *Value) (int, bool) {
	if v.Kind() != other.Kind() {
		return 0, false
	}
	switch d := v.data.(type) {
	case nil:
		return 0, true
	case bool:
		o := other.data.(bool)
		switch {
		case d == o:
			return 0, true
		case !d:
			return -1, true
		default:
			return 1, true
		}
	case float64:
		o := other.data.(float64)
		switch {
		case d < o:
			return -1, true
		case d > o:
			return 1, true
		default:
			return 0, true
		}
	case *textData:
		s, o := string(d.buf), string(other.data.(*textData).buf)
		switch {
		case s < o:
			return -1, true
		case s > o:
			return 1, true
		default:
			return 0, true
		}
	case *arrayData:
		o := other.data.(*arrayData)
		n := min(len(d.items), len(o.items))
		for i := 0; i < n; i++ {
			if c, ok := d.items[i].Compare(o.items[i]); !ok {
				return 0, false
			} else if c != 0 {
				return c, true
			}
		}
		switch {
		case len(d.items) < len(o.items):
			return -1, true
		case len(d.items) > len(o.items):
			return 1, true
		default:
			return 0, true
		}
	case *objectData:
		o := other.data.(*objectData)
		dk := d.sortedKeys()
		oKeys := o.sortedKeys()
		n := min(len(dk), len(oKeys))
		for i := 0; i < n; i++ {
			switch {
			case dk[i] < oKeys[i]:
				return -1, true
			case dk[i] > oKeys[i]:
				return 1, true
			}
			if c, ok := d.entries[dk[i]].Compare(o.entries[oKeys[i]]); !ok {
				return 0, false
			} else if c != 0 {
				return c, true
			}
		}
		switch {
		case len(dk) < len(oKeys):
			return -1, true
		case len(dk) > len(oKeys):
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

// Less reports receiver < other; false for unequal variants.
func (v *Value) Less(other *Value) bool {
	c, ok := v.Compare(other)
	return ok && c < 0
}

// LessEqual reports receiver <= other; false for unequal variants.
func (v *Value) LessEqual(other *Value) bool {
	c, ok := v.Compare(other)
	return ok && c <= 0
}

// Greater reports receiver > other; false for unequal variants.
func (v *Value) Greater(other *Value) bool {
	c, ok := v.Compare(other)
	return ok && c > 0
}

// GreaterEqual reports receiver >= other; false for unequal variants.
func (v *Value) GreaterEqual(other *Value) bool {
	c, ok := v.Compare(other)
	return ok && c >= 0
}

// Size returns the element count of a string, array or object cell.
// Leaves reject the method.
func (v *Value) Size() (int, error) {
	switch d := v.data.(type) {
	case *textData:
		return len(d.buf), nil
	case *arrayData:
		return len(d.items), nil
	case *objectData:
		return len(d.entries), nil
	}
	return 0, errNoMethod(v, "size")
}

// Empty reports whether a string, array or object cell has no elements.
func (v *Value) Empty() (bool, error) {
	n, err := v.Size()
	if err != nil {
		return false, errNoMethod(v, "empty")
	}
	return n == 0, nil
}

// MaxSize returns the theoretical element capacity of a string, array or
// object cell.
func (v *Value) MaxSize() (int, error) {
	switch v.data.(type) {
	case *textData, *arrayData, *objectData:
		return math.MaxInt, nil
	}
	return 0, errNoMethod(v, "max_size")
}

// Capacity returns the allocated slot count of a string or array cell.
func (v *Value) Capacity() (int, error) {
	switch d := v.data.(type) {
	case *textData:
		return cap(d.buf), nil
	case *arrayData:
		return cap(d.items), nil
	}
	return 0, errNoMethod(v, "capacity")
}

// Resize grows or shrinks a string (zero-byte fill) or array (null fill)
// cell to n elements.
func (v *Value) Resize(n int) error {
	switch v.data.(type) {
	case *textData:
		return v.ResizeStringWith(n, 0)
	case *arrayData:
		return v.ResizeArrayWith(n, nil)
	}
	return errNoMethod(v, "resize")
}

// Reserve pre-allocates capacity for at least n elements of a string or
// array cell. Length is unchanged.
func (v *Value) Reserve(n int) error {
	switch d := v.data.(type) {
	case *textData:
		if cap(d.buf) < n {
			grown := make([]byte, len(d.buf), n)
			copy(grown, d.buf)
			d.buf = grown
		}
		return nil
	case *arrayData:
		if cap(d.items) < n {
			grown := make([]*Value, len(d.items), n)
			copy(grown, d.items)
			d.items = grown
		}
		return nil
	}
	return errNoMethod(v, "reserve")
}

// ToSlice coerces the cell into a sequence of child cells: a string
// yields one number cell per byte, an array its children, an object its
// values in lexicographic key order. Leaves reject the coercion. The
// result shares children with the cell for containers.
//
// Queue and stack shapes are order contracts over this sequence: queue
// front is element 0, stack top is the last element.
func (v *Value) ToSlice() ([]*Value, error) {
	switch d := v.data.(type) {
	case *textData:
		out := make([]*Value, 0, len(d.buf))
		for _, c := range d.buf {
			out = append(out, NewValue(c))
		}
		return out, nil
	case *arrayData:
		return append([]*Value(nil), d.items...), nil
	case *objectData:
		keys := d.sortedKeys()
		out := make([]*Value, 0, len(keys))
		for _, k := range keys {
			out = append(out, d.entries[k])
		}
		return out, nil
	}
	return nil, errNoMethod(v, "ToSlice")
}

// ToList coerces the cell into a container/list.List with the ToSlice
// contract, front at element 0.
func (v *Value) ToList() (*list.List, error) {
	items, err := v.ToSlice()
	if err != nil {
		return nil, errNoMethod(v, "ToList")
	}
	l := list.New()
	for _, item := range items {
		l.PushBack(item)
	}
	return l, nil
}

// ToMap coerces the cell into a string-keyed map: an object enumerates
// its entries, an array and a string use the integer positions "0", "1",
// ... as keys. Leaves reject the coercion.
func (v *Value) ToMap() (map[string]*Value, error) {
	switch d := v.data.(type) {
	case *objectData:
		out := make(map[string]*Value, len(d.entries))
		for k, item := range d.entries {
			out[k] = item
		}
		return out, nil
	case *arrayData, *textData:
		items, _ := v.ToSlice()
		out := make(map[string]*Value, len(items))
		for i, item := range items {
			out[strconv.Itoa(i)] = item
		}
		return out, nil
	}
	return nil, errNoMethod(v, "ToMap")
}

// Extend is the concatenation-assignment family. The effect depends on
// the receiver:
//
//   - null or array receiver: slices, arrays and lists append their
//     elements; integer-keyed maps place entries by key with null
//     padding; string-keyed maps append their values in lexicographic
//     key order. A null receiver promotes to an array.
//   - object receiver: a string-keyed map inserts entries whose keys are
//     absent; existing keys are left untouched.
//
// A right-hand side no clause accepts is rejected with a MethodError and
// the receiver is left exactly as it was, a null receiver included.
func (v *Value) Extend(rhs any) error {
	if v.Kind() == KindObject {
		return v.extendObject(rhs)
	}
	if _, err := v.arrayCheck(); err != nil {
		return err
	}
	if d, ok := rhs.(map[int]any); ok {
		a, err := v.arrayMut()
		if err != nil {
			return err
		}
		for _, k := range sortedIntKeys(d) {
			a.place(k, NewValue(d[k]))
		}
		return nil
	}
	items, err := v.extendItems(rhs)
	if err != nil {
		return err
	}
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	a.items = append(a.items, items...)
	return nil
}

// extendItems resolves rhs into the cells an array Extend appends. The
// receiver is untouched, so a rejected shape cannot leave partial state.
func (v *Value) extendItems(rhs any) ([]*Value, error) {
	switch d := rhs.(type) {
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]*Value, 0, len(keys))
		for _, k := range keys {
			items = append(items, NewValue(d[k]))
		}
		return items, nil
	case map[string]*Value:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]*Value, 0, len(keys))
		for _, k := range keys {
			items = append(items, d[k].Clone())
		}
		return items, nil
	case *Value:
		src, err := d.ToSlice()
		if err != nil {
			return nil, err
		}
		items := make([]*Value, 0, len(src))
		for _, item := range src {
			items = append(items, item.Clone())
		}
		return items, nil
	case []*Value:
		items := make([]*Value, 0, len(d))
		for _, item := range d {
			items = append(items, item.Clone())
		}
		return items, nil
	case []any:
		items := make([]*Value, 0, len(d))
		for _, item := range d {
			items = append(items, NewValue(item))
		}
		return items, nil
	case *list.List:
		items := make([]*Value, 0, d.Len())
		for e := d.Front(); e != nil; e = e.Next() {
			items = append(items, NewValue(e.Value))
		}
		return items, nil
	}
	// Fall back on the converting constructor for typed slices and maps.
	tmp := NewValue(rhs)
	switch tmp.Kind() {
	case KindArray:
		return tmp.data.(*arrayData).items, nil
	case KindObject:
		o := tmp.data.(*objectData)
		items := make([]*Value, 0, len(o.entries))
		for _, k := range o.sortedKeys() {
			items = append(items, o.entries[k])
		}
		return items, nil
	}
	return nil, errNoMethod(v, "operator+=")
}

func (v *Value) extendObject(rhs any) error {
	o, err := v.objectMut()
	if err != nil {
		return err
	}
	merge := func(k string, val *Value) {
		if _, ok := o.entries[k]; !ok {
			o.entries[k] = val
		}
	}
	switch d := rhs.(type) {
	case map[string]any:
		for k, item := range d {
			merge(k, NewValue(item))
		}
		return nil
	case map[string]*Value:
		for k, item := range d {
			merge(k, item.Clone())
		}
		return nil
	case *Value:
		entries, err := d.objectConst()
		if err != nil {
			return err
		}
		for k, item := range entries.entries {
			merge(k, item.Clone())
		}
		return nil
	}
	tmp := NewValue(rhs)
	if entries, ok := tmp.data.(*objectData); ok {
		for k, item := range entries.entries {
			merge(k, item)
		}
		return nil
	}
	return errNoMethod(v, "operator+=")
}

func sortedIntKeys(m map[int]any) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
