package dict

import "iter"

// arrayMut gates a structural array operation: a null cell promotes to an
// empty array, any variant other than array is rejected.
func (v *Value) arrayMut() (*arrayData, error) {
	switch d := v.data.(type) {
	case nil:
		a := &arrayData{}
		v.data = a
		return a, nil
	case *arrayData:
		return d, nil
	}
	return nil, errNotA(v, KindArray)
}

// arrayConst gates a read-only array operation: only an array cell
// passes.
func (v *Value) arrayConst() (*arrayData, error) {
	if d, ok := v.data.(*arrayData); ok {
		return d, nil
	}
	return nil, errNotA(v, KindArray)
}

// arrayCheck reports the length a structural array operation would see
// without promoting, so argument checks can run before a null cell
// transitions. A failing operation must leave a null cell null.
func (v *Value) arrayCheck() (int, error) {
	switch d := v.data.(type) {
	case nil:
		return 0, nil
	case *arrayData:
		return len(d.items), nil
	}
	return 0, errNotA(v, KindArray)
}

// SetIndex writes val into slot i. A null cell promotes to an empty
// array; slots between the current length and i are padded with nulls.
func (v *Value) SetIndex(i int, val any) error {
	cell, err := v.Index(i)
	if err != nil {
		return err
	}
	cell.Set(val)
	return nil
}

// Index returns the cell at slot i for mutation, extending the array with
// null slots up to and including i when needed. Repeated reads of an
// existing slot return the same cell.
func (v *Value) Index(i int) (*Value, error) {
	if _, err := v.arrayCheck(); err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, errOutOfRange(v, i)
	}
	a, err := v.arrayMut()
	if err != nil {
		return nil, err
	}
	for len(a.items) <= i {
		a.items = append(a.items, &Value{})
	}
	return a.items[i], nil
}

// At returns the cell at slot i without extending. A non-array cell is an
// AccessError; an index at or beyond the length is a ChildError carrying
// the index.
func (v *Value) At(i int) (*Value, error) {
	a, err := v.arrayConst()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(a.items) {
		return nil, errOutOfRange(v, i)
	}
	return a.items[i], nil
}

// ContainsIndex reports whether slot i exists.
func (v *Value) ContainsIndex(i int) (bool, error) {
	a, err := v.arrayConst()
	if err != nil {
		return false, err
	}
	return i >= 0 && i < len(a.items), nil
}

// ContainsIndexKind reports whether slot i exists and holds the given
// variant.
func (v *Value) ContainsIndexKind(i int, k Kind) (bool, error) {
	a, err := v.arrayConst()
	if err != nil {
		return false, err
	}
	return i >= 0 && i < len(a.items) && a.items[i].Kind() == k, nil
}

// PushBack appends val as a new trailing slot. A null cell promotes to an
// empty array.
func (v *Value) PushBack(val any) error {
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	a.items = append(a.items, NewValue(val))
	return nil
}

// PopBack removes the trailing slot. An empty array is a ChildError.
func (v *Value) PopBack() error {
	length, err := v.arrayCheck()
	if err != nil {
		return err
	}
	if length == 0 {
		return errOutOfRange(v, 0)
	}
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	a.items = a.items[:len(a.items)-1]
	return nil
}

// Front returns the first slot.
func (v *Value) Front() (*Value, error) {
	return v.At(0)
}

// Back returns the last slot.
func (v *Value) Back() (*Value, error) {
	a, err := v.arrayConst()
	if err != nil {
		return nil, err
	}
	if len(a.items) == 0 {
		return nil, errOutOfRange(v, 0)
	}
	return a.items[len(a.items)-1], nil
}

// EraseIndex removes the slot at pos, shifting later slots down.
func (v *Value) EraseIndex(pos int) error {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the slots in [first, last).
func (v *Value) EraseRange(first, last int) error {
	length, err := v.arrayCheck()
	if err != nil {
		return err
	}
	if first < 0 || first > length {
		return errOutOfRange(v, first)
	}
	if last < first || last > length {
		return errOutOfRange(v, last)
	}
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	a.items = append(a.items[:first], a.items[last:]...)
	return nil
}

// InsertIndex inserts val before slot pos.
func (v *Value) InsertIndex(pos int, val any) error {
	return v.InsertN(pos, 1, val)
}

// InsertN inserts n copies of val before slot pos.
func (v *Value) InsertN(pos, n int, val any) error {
	length, err := v.arrayCheck()
	if err != nil {
		return err
	}
	if pos < 0 || pos > length {
		return errOutOfRange(v, pos)
	}
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	fresh := make([]*Value, 0, n)
	for i := 0; i < n; i++ {
		fresh = append(fresh, NewValue(val))
	}
	a.items = append(a.items[:pos], append(fresh, a.items[pos:]...)...)
	return nil
}

// InsertValues inserts deep copies of vals before slot pos.
func (v *Value) InsertValues(pos int, vals []*Value) error {
	length, err := v.arrayCheck()
	if err != nil {
		return err
	}
	if pos < 0 || pos > length {
		return errOutOfRange(v, pos)
	}
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	fresh := make([]*Value, 0, len(vals))
	for _, item := range vals {
		fresh = append(fresh, item.Clone())
	}
	a.items = append(a.items[:pos], append(fresh, a.items[pos:]...)...)
	return nil
}

// ResizeArrayWith grows or shrinks the array to n slots, filling new
// slots with copies of fill.
func (v *Value) ResizeArrayWith(n int, fill any) error {
	if _, err := v.arrayCheck(); err != nil {
		return err
	}
	if n < 0 {
		return errOutOfRange(v, n)
	}
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	for len(a.items) < n {
		a.items = append(a.items, NewValue(fill))
	}
	a.items = a.items[:n]
	return nil
}

// AssignN replaces the contents with n copies of val.
func (v *Value) AssignN(n int, val any) error {
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	a.items = a.items[:0]
	for i := 0; i < n; i++ {
		a.items = append(a.items, NewValue(val))
	}
	return nil
}

// AssignValues replaces the contents with deep copies of vals.
func (v *Value) AssignValues(vals []*Value) error {
	a, err := v.arrayMut()
	if err != nil {
		return err
	}
	a.items = a.items[:0]
	for _, item := range vals {
		a.items = append(a.items, item.Clone())
	}
	return nil
}

// Each iterates the array's cells front to back.
func (v *Value) Each() (iter.Seq[*Value], error) {
	a, err := v.arrayConst()
	if err != nil {
		return nil, err
	}
	return func(yield func(*Value) bool) {
		for _, item := range a.items {
			if !yield(item) {
				return
			}
		}
	}, nil
}

// EachBackward iterates the array's cells back to front.
func (v *Value) EachBackward() (iter.Seq[*Value], error) {
	a, err := v.arrayConst()
	if err != nil {
		return nil, err
	}
	return func(yield func(*Value) bool) {
		for i := len(a.items) - 1; i >= 0; i-- {
			if !yield(a.items[i]) {
				return
			}
		}
	}, nil
}
