package dict

// Boolean returns the stored boolean, promoting a null cell to false
// first. Any other variant is rejected with an AccessError.
func (v *Value) Boolean() (bool, error) {
	switch d := v.data.(type) {
	case nil:
		v.data = false
		return false, nil
	case bool:
		return d, nil
	}
	return false, errNotA(v, KindBoolean)
}

// GetBoolean returns the stored boolean without promoting. A non-boolean
// cell, null included, is rejected with an AccessError.
func (v *Value) GetBoolean() (bool, error) {
	if d, ok := v.data.(bool); ok {
		return d, nil
	}
	return false, errNotA(v, KindBoolean)
}

// SetBoolean writes b into the cell under the install precondition: the
// cell must be null or boolean.
func (v *Value) SetBoolean(b bool) error {
	return v.NewBoolean(b)
}

// EqualBool reports whether the cell is a boolean equal to b. A
// mismatched variant compares unequal, never errors.
func (v *Value) EqualBool(b bool) bool {
	d, ok := v.data.(bool)
	return ok && d == b
}

// LessBool orders the cell against a raw boolean (false sorts before
// true). False whenever the cell is not a boolean.
func (v *Value) LessBool(b bool) bool {
	d, ok := v.data.(bool)
	return ok && !d && b
}

// GreaterBool is the strict inverse ordering of LessBool.
func (v *Value) GreaterBool(b bool) bool {
	d, ok := v.data.(bool)
	return ok && d && !b
}
