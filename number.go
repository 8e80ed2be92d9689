package dict

// Number returns the stored number, promoting a null cell to 0 first.
// Any other variant is rejected with an AccessError.
func (v *Value) Number() (float64, error) {
	switch d := v.data.(type) {
	case nil:
		v.data = float64(0)
		return 0, nil
	case float64:
		return d, nil
	}
	return 0, errNotA(v, KindNumber)
}

// GetNumber returns the stored number without promoting. A non-number
// cell, null included, is rejected with an AccessError.
func (v *Value) GetNumber() (float64, error) {
	if d, ok := v.data.(float64); ok {
		return d, nil
	}
	return 0, errNotA(v, KindNumber)
}

// SetNumber writes f into the cell under the install precondition: the
// cell must be null or number.
func (v *Value) SetNumber(f float64) error {
	return v.NewNumber(f)
}

// Float64 returns the stored number as a float64.
func (v *Value) Float64() (float64, error) {
	return v.GetNumber()
}

// Int64 returns the stored number truncated toward zero.
func (v *Value) Int64() (int64, error) {
	d, err := v.GetNumber()
	if err != nil {
		return 0, err
	}
	return int64(d), nil
}

// Uint64 returns the stored number truncated toward zero as an unsigned
// integer. Conversion of negative values follows Go's float-to-unsigned
// semantics, unwrapped.
func (v *Value) Uint64() (uint64, error) {
	d, err := v.GetNumber()
	if err != nil {
		return 0, err
	}
	return uint64(d), nil
}

// EqualNumber reports whether the cell is a number equal to f. A
// mismatched variant compares unequal, never errors.
func (v *Value) EqualNumber(f float64) bool {
	d, ok := v.data.(float64)
	return ok && d == f
}

// LessNumber reports cell < f. False whenever the cell is not a number.
func (v *Value) LessNumber(f float64) bool {
	d, ok := v.data.(float64)
	return ok && d < f
}

// LessEqualNumber reports cell <= f. False whenever the cell is not a
// number.
func (v *Value) LessEqualNumber(f float64) bool {
	d, ok := v.data.(float64)
	return ok && d <= f
}

// GreaterNumber reports cell > f. False whenever the cell is not a
// number.
func (v *Value) GreaterNumber(f float64) bool {
	d, ok := v.data.(float64)
	return ok && d > f
}

// GreaterEqualNumber reports cell >= f. False whenever the cell is not a
// number.
func (v *Value) GreaterEqualNumber(f float64) bool {
	d, ok := v.data.(float64)
	return ok && d >= f
}
