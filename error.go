package dict

import "fmt"

// AccessError reports a type-mismatched operation attempted against a
// wrong-variant cell, for example reading a boolean out of a string.
type AccessError struct {
	Value   *Value // the offending cell
	Message string
}

func (e *AccessError) Error() string {
	return e.Message
}

// ChildError reports an array index out of range or an object key miss.
// Exactly one of Key or Index is meaningful, indicated by HasKey.
type ChildError struct {
	Value   *Value // the offending cell
	Key     string
	Index   int
	HasKey  bool
	Message string
}

func (e *ChildError) Error() string {
	return e.Message
}

// MethodError reports an operation invoked on a variant that does not
// expose it, for example size on a number. Method carries the name of the
// rejected operation.
type MethodError struct {
	Value   *Value // the offending cell
	Method  string
	Message string
}

func (e *MethodError) Error() string {
	return e.Message
}

// errNotA reports a transition or read that demands variant want against a
// cell currently holding something else.
func errNotA(v *Value, want Kind) *AccessError {
	return &AccessError{
		Value:   v,
		Message: fmt.Sprintf("is not a %s (is %s).", want, v.Kind()),
	}
}

// errNotNull reports the copy-if-null contract violation.
func errNotNull(v *Value) *AccessError {
	return &AccessError{
		Value:   v,
		Message: fmt.Sprintf("is not null (is %s).", v.Kind()),
	}
}

// errWrongChild reports a path step whose variant does not match the node
// it is resolved against.
func errWrongChild(v *Value, want Kind) *AccessError {
	return &AccessError{
		Value:   v,
		Message: fmt.Sprintf("wrong type of child: is not a %s (is %s).", want, v.Kind()),
	}
}

func errNoKey(v *Value, key string) *ChildError {
	return &ChildError{
		Value:   v,
		Key:     key,
		HasKey:  true,
		Message: fmt.Sprintf("%s has not a key.", key),
	}
}

func errOutOfRange(v *Value, index int) *ChildError {
	return &ChildError{
		Value:   v,
		Index:   index,
		Message: fmt.Sprintf("%d has out of range.", index),
	}
}

func errNoMethod(v *Value, method string) *MethodError {
	return &MethodError{
		Value:   v,
		Method:  method,
		Message: fmt.Sprintf("has not a method %s.", method),
	}
}
