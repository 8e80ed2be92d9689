package dict

import "iter"

// objectMut gates a structural object operation: a null cell promotes to
// an empty object, any variant other than object is rejected.
func (v *Value) objectMut() (*objectData, error) {
	switch d := v.data.(type) {
	case nil:
		o := &objectData{entries: map[string]*Value{}}
		v.data = o
		return o, nil
	case *objectData:
		return d, nil
	}
	return nil, errNotA(v, KindObject)
}

// objectConst gates a read-only object operation: only an object cell
// passes.
func (v *Value) objectConst() (*objectData, error) {
	if d, ok := v.data.(*objectData); ok {
		return d, nil
	}
	return nil, errNotA(v, KindObject)
}

// SetKey writes val under key k, inserting or overwriting. A null cell
// promotes to an empty object.
func (v *Value) SetKey(k string, val any) error {
	cell, err := v.Key(k)
	if err != nil {
		return err
	}
	cell.Set(val)
	return nil
}

// Key returns the cell under k for mutation, inserting a fresh null cell
// when the key is absent. Repeated reads of an existing key return the
// same cell.
func (v *Value) Key(k string) (*Value, error) {
	o, err := v.objectMut()
	if err != nil {
		return nil, err
	}
	cell, ok := o.entries[k]
	if !ok {
		cell = &Value{}
		o.entries[k] = cell
	}
	return cell, nil
}

// AtKey returns the cell under k without inserting. A non-object cell is
// an AccessError; an absent key is a ChildError carrying the key.
func (v *Value) AtKey(k string) (*Value, error) {
	o, err := v.objectConst()
	if err != nil {
		return nil, err
	}
	cell, ok := o.entries[k]
	if !ok {
		return nil, errNoKey(v, k)
	}
	return cell, nil
}

// ContainsKey reports whether k is present.
func (v *Value) ContainsKey(k string) (bool, error) {
	o, err := v.objectConst()
	if err != nil {
		return false, err
	}
	_, ok := o.entries[k]
	return ok, nil
}

// ContainsKeyKind reports whether k is present and holds the given
// variant.
func (v *Value) ContainsKeyKind(k string, kind Kind) (bool, error) {
	o, err := v.objectConst()
	if err != nil {
		return false, err
	}
	cell, ok := o.entries[k]
	return ok && cell.Kind() == kind, nil
}

// InsertKey inserts val under k only when the key is absent. It reports
// whether an insertion happened.
func (v *Value) InsertKey(k string, val any) (bool, error) {
	o, err := v.objectMut()
	if err != nil {
		return false, err
	}
	if _, ok := o.entries[k]; ok {
		return false, nil
	}
	o.entries[k] = NewValue(val)
	return true, nil
}

// EraseKey removes k and returns the number of entries removed (0 or 1).
func (v *Value) EraseKey(k string) (int, error) {
	o, err := v.objectMut()
	if err != nil {
		return 0, err
	}
	if _, ok := o.entries[k]; !ok {
		return 0, nil
	}
	delete(o.entries, k)
	return 1, nil
}

// FindKey returns the cell under k and whether it is present, without
// inserting and without a key-miss error.
func (v *Value) FindKey(k string) (*Value, bool, error) {
	o, err := v.objectConst()
	if err != nil {
		return nil, false, err
	}
	cell, ok := o.entries[k]
	return cell, ok, nil
}

// Keys returns the object's keys in lexicographic order.
func (v *Value) Keys() ([]string, error) {
	o, err := v.objectConst()
	if err != nil {
		return nil, err
	}
	return o.sortedKeys(), nil
}

// LowerBound returns the first entry whose key is not less than k, in
// lexicographic order. ok is false when every key is less than k.
func (v *Value) LowerBound(k string) (key string, cell *Value, ok bool, err error) {
	o, err := v.objectConst()
	if err != nil {
		return "", nil, false, err
	}
	for _, key := range o.sortedKeys() {
		if key >= k {
			return key, o.entries[key], true, nil
		}
	}
	return "", nil, false, nil
}

// UpperBound returns the first entry whose key is greater than k, in
// lexicographic order. ok is false when no key is greater than k.
func (v *Value) UpperBound(k string) (key string, cell *Value, ok bool, err error) {
	o, err := v.objectConst()
	if err != nil {
		return "", nil, false, err
	}
	for _, key := range o.sortedKeys() {
		if key > k {
			return key, o.entries[key], true, nil
		}
	}
	return "", nil, false, nil
}

// Entries iterates the object's entries in lexicographic key order.
func (v *Value) Entries() (iter.Seq2[string, *Value], error) {
	o, err := v.objectConst()
	if err != nil {
		return nil, err
	}
	return func(yield func(string, *Value) bool) {
		for _, k := range o.sortedKeys() {
			if !yield(k, o.entries[k]) {
				return
			}
		}
	}, nil
}

// EntriesBackward iterates the object's entries in reverse lexicographic
// key order.
func (v *Value) EntriesBackward() (iter.Seq2[string, *Value], error) {
	o, err := v.objectConst()
	if err != nil {
		return nil, err
	}
	return func(yield func(string, *Value) bool) {
		keys := o.sortedKeys()
		for i := len(keys) - 1; i >= 0; i-- {
			if !yield(keys[i], o.entries[keys[i]]) {
				return
			}
		}
	}, nil
}
