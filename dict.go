// Package dict provides a dynamically typed recursive value container.
//
// Dict-Go is a Go port of the Dict C++ library. The central type is Value,
// a single cell that at any moment holds one of six variants: null, boolean,
// number, string, array or object. Values are built up dynamically, without
// a schema, and interoperate with ordinary Go containers.
//
// # Quick Start
//
// Basic usage:
//
//	v := dict.New()
//	v.SetKey("name", "Alice")
//	scores, _ := v.Key("scores")
//	scores.SetIndex(0, 42)
//	cell, _ := v.AtPath(dict.NewPath().Key("scores").Index(0))
//	fmt.Println(cell) // Output: 42
//
// # Variants
//
// A Value starts out null and transitions between variants through the
// install family (NewBoolean, NewNumber, NewString, NewArray, NewObject),
// through assignment (Set, SetIfNull) or through the mutating accessors,
// which promote a null cell to the variant they need. Reading through a
// wrong-variant cell never succeeds silently: every guarded operation
// returns one of three error categories (AccessError, ChildError,
// MethodError) that callers can discriminate with errors.As.
//
// # Ownership
//
// A Value exclusively owns its payload. Children of array and object cells
// are owned by their parent, assignment is a deep copy and there is no
// sharing between trees. Reference cycles are not representable: storing a
// value inside itself stores a copy taken at assignment time.
//
// The package performs no I/O, no parsing and no locking; concurrent
// mutation of the same Value is undefined.
package dict

// Kind describes the active variant of a Value.
type Kind int

const (
	// KindNull is the default variant of a fresh Value. It carries no
	// payload.
	KindNull Kind = iota

	// KindBoolean holds a bool.
	KindBoolean

	// KindNumber holds a float64. Integers are stored as their
	// floating-point representation.
	KindNumber

	// KindString holds an owned mutable string of bytes.
	KindString

	// KindArray holds an owned ordered sequence of child Values,
	// zero-indexed with insertion order preserved.
	KindArray

	// KindObject holds an owned mapping from string keys to child Values,
	// iterated in lexicographic key order.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}
