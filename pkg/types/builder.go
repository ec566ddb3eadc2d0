package types

// Builder is the allocation capability behind every type node. It decouples
// how a type is stored from what algorithms do with it: algorithms take a
// Builder parameter and never know which strategy backs it.
//
// The choice of builder is a construction-time decision made by the
// embedding application; there is no global switch.
type Builder interface {
	// Alloc stores a type node for the given variant, computing and caching
	// its flags from the variant's children. Children referenced by k must
	// have been allocated by this builder.
	Alloc(k Kind) Type

	// AllocIdent interns an identifier. The text is normalized to NFC, so
	// canonically-equivalent spellings intern to the same handle.
	AllocIdent(name string) Ident

	// AllocTypeList, AllocFieldList, and AllocIdentList copy the given
	// elements into builder-owned storage and return the stored list.
	AllocTypeList(ts []Type) TypeList
	AllocFieldList(fs []Field) FieldList
	AllocIdentList(ids []Ident) IdentList
}
