package value

import "sort"

// Node is a single value in an owned, acyclic tree. Every node is owned by
// exactly one parent slot (or by a store entry for a root) and is immutable
// once built; replacement happens at the owner, never in place.
//
// The variant set is sealed: only types in this package implement Node.
type Node interface {
	// Type identifies the variant.
	Type() Type

	// Export materializes a brand-new value from this node and its
	// descendants, sharing no state with the tree.
	Export() any

	node()
}

// Undefined represents any input the converter does not recognize. The
// original value's identity and type are discarded.
type Undefined struct{}

func (Undefined) Type() Type  { return UndefinedType }
func (Undefined) Export() any { return nil }
func (Undefined) node()       {}

// String holds an owned copy of the source text as UTF-8 bytes together
// with its explicit byte length. No encoding validation is performed.
type String struct {
	buf []byte
}

// NewString copies s into an owned buffer.
func NewString(s string) String {
	return String{buf: []byte(s)}
}

// Text returns the stored text.
func (s String) Text() string { return string(s.buf) }

// Len returns the byte length of the stored text.
func (s String) Len() int { return len(s.buf) }

func (s String) Type() Type  { return StringType }
func (s String) Export() any { return string(s.buf) }
func (String) node()         {}

// Number is a double-precision floating value.
type Number float64

func (Number) Type() Type    { return NumberType }
func (n Number) Export() any { return float64(n) }
func (Number) node()         {}

// Int32 holds a numeric input recognized as an exact integer within
// signed 32-bit range.
type Int32 int32

func (Int32) Type() Type    { return Int32Type }
func (n Int32) Export() any { return int32(n) }
func (Int32) node()         {}

// Uint32 is representable in the node model but never produced by Import.
// Export handles it so trees built by hand stay round-trippable.
type Uint32 uint32

func (Uint32) Type() Type    { return Uint32Type }
func (n Uint32) Export() any { return uint32(n) }
func (Uint32) node()         {}

// Array is an ordered sequence of owned children with contiguous indices.
type Array struct {
	elems []Node
}

// NewArray takes ownership of elems. Every element must be non-nil.
func NewArray(elems []Node) Array {
	return Array{elems: elems}
}

// Len returns the number of children.
func (a Array) Len() int { return len(a.elems) }

// Index returns the child at i. Index order is significant and preserved.
func (a Array) Index(i int) Node { return a.elems[i] }

func (a Array) Type() Type { return ArrayType }

func (a Array) Export() any {
	out := make([]any, len(a.elems))
	for i, e := range a.elems {
		out[i] = e.Export()
	}
	return out
}

func (Array) node() {}

// Object maps unique string keys to owned children. Key order is not
// preserved across an import/export round trip.
type Object struct {
	members map[string]Node
}

// NewObject takes ownership of members. Every mapped node must be non-nil.
func NewObject(members map[string]Node) Object {
	return Object{members: members}
}

// Len returns the number of members.
func (o Object) Len() int { return len(o.members) }

// Member returns the child mapped to key, if any.
func (o Object) Member(key string) (Node, bool) {
	n, ok := o.members[key]
	return n, ok
}

// Keys returns the member keys in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o.members))
	for k := range o.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o Object) Type() Type { return ObjectType }

func (o Object) Export() any {
	out := make(map[string]any, len(o.members))
	for k, m := range o.members {
		out[k] = m.Export()
	}
	return out
}

func (Object) node() {}
