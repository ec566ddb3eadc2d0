// Package types implements the storage-agnostic type representation for the
// Fen expression language.
//
// Types are immutable nodes allocated through a Builder, the capability that
// decides how nodes, identifiers, and lists are stored. Two builders are
// provided: ArenaBuilder (bump allocation with structural interning, for the
// hot compilation path) and HeapBuilder (independently-lived GC allocations,
// for types that outlive a compilation). Every algorithm over types is
// written once against the Builder interface and behaves identically over
// both.
package types

// Type is an opaque, copyable handle to an allocated type node. It is valid
// for as long as the builder that produced it. Handles compare with ==; for
// an interning builder, structurally identical types are guaranteed to be
// the same handle, making equality O(1).
type Type struct {
	n *node
}

// node is the allocated representation: the variant plus its cached flags.
type node struct {
	flags Flags
	kind  Kind

	// id is a builder-local sequence number used by interning builders to
	// key structural lookups. Zero for non-interned nodes.
	id uint32
}

// Kind returns the node's tagged variant.
func (t Type) Kind() Kind {
	return t.n.kind
}

// Flags returns the property bitset cached at construction.
func (t Type) Flags() Flags {
	return t.n.flags
}

// IsZero reports whether t is the zero handle (no node).
func (t Type) IsZero() bool {
	return t.n == nil
}

// Ident is a handle to an interned identifier. Identifiers are deduplicated
// per builder, so two Idents from the same builder with the same text
// compare equal with ==.
type Ident struct {
	name *internedName
}

type internedName struct {
	text string
	id   uint32
}

func (i Ident) String() string {
	return i.name.text
}

// IsZero reports whether i is the zero handle.
func (i Ident) IsZero() bool {
	return i.name == nil
}

// Field is a named record field.
type Field struct {
	Name Ident
	Type Type
}

// TypeList is an ordered sequence of types (function parameters).
type TypeList []Type

// FieldList is an ordered sequence of named fields, preserving declaration
// order.
type FieldList []Field

// IdentList is an ordered sequence of interned identifiers.
type IdentList []Ident

// Lookup finds a field by name. Lookup is linear by design: record arities
// are small, and scanning avoids hashing overhead.
func (fs FieldList) Lookup(name string) (Type, bool) {
	for _, f := range fs {
		if f.Name.String() == name {
			return f.Type, true
		}
	}
	return Type{}, false
}
