package dict

import (
	"strconv"
	"strings"
)

// Path is an ordered list of navigation steps resolved against a Value
// tree. Each step is itself a Value: a string step selects an object key,
// a number step (truncated toward zero) selects an array slot.
//
//	p := dict.NewPath().Key("foo").Index(3)
//	cell, err := v.AtPath(p)
//
// Paths are cheap, short-lived builders; appending returns the extended
// path.
type Path []*Value

// NewPath returns an empty path.
func NewPath() Path {
	return Path{}
}

// Key appends a string step.
func (p Path) Key(k string) Path {
	return append(p, NewValue(k))
}

// Index appends a number step.
func (p Path) Index(i int) Path {
	return append(p, NewValue(i))
}

// Step appends an arbitrary value as a step.
func (p Path) Step(v any) Path {
	return append(p, NewValue(v))
}

// P builds a path from a mixed list of steps: strings become key steps,
// integers become index steps.
func P(steps ...any) Path {
	p := Path{}
	for _, s := range steps {
		p = append(p, NewValue(s))
	}
	return p
}

// ParseDotPath builds a path from a dotted string such as "servers.0.host".
// Steps made only of digits become index steps, everything else a key
// step.
func ParseDotPath(path string) Path {
	p := Path{}
	if path == "" {
		return p
	}
	for _, part := range strings.Split(path, ".") {
		if i, err := strconv.Atoi(part); err == nil {
			p = p.Index(i)
		} else {
			p = p.Key(part)
		}
	}
	return p
}

// resolve walks one step from node. The step's variant decides how:
// string steps descend object keys, number steps descend array slots.
// Any other pairing of step and node is an AccessError.
func resolveStep(node *Value, step *Value) (*Value, error) {
	switch step.Kind() {
	case KindString:
		if node.Kind() != KindObject {
			return nil, errWrongChild(node, KindObject)
		}
		k, _ := step.GetString()
		return node.AtKey(k)
	case KindNumber:
		if node.Kind() != KindArray {
			return nil, errWrongChild(node, KindArray)
		}
		f, _ := step.GetNumber()
		return node.At(int(f))
	default:
		return nil, errWrongChild(node, KindObject)
	}
}

// AtPath navigates the path and returns the terminal cell. Resolution
// stops at the first failure: a key miss or out-of-range index is a
// ChildError, a step whose variant does not match the node is an
// AccessError.
func (v *Value) AtPath(p Path) (*Value, error) {
	node := v
	for _, step := range p {
		next, err := resolveStep(node, step)
		if err != nil {
			return nil, err
		}
		node = next
	}
	return node, nil
}

// AtDotPath is AtPath over ParseDotPath.
func (v *Value) AtDotPath(path string) (*Value, error) {
	return v.AtPath(ParseDotPath(path))
}

// ContainsPath reports whether the path resolves to a cell. Any failure
// along the way yields false, never an error.
func (v *Value) ContainsPath(p Path) bool {
	_, err := v.AtPath(p)
	return err == nil
}

// ContainsPathKind reports whether the path resolves to a cell of the
// given variant.
func (v *Value) ContainsPathKind(p Path, k Kind) bool {
	cell, err := v.AtPath(p)
	return err == nil && cell.Kind() == k
}
