package types

import "golang.org/x/text/unicode/norm"

// HeapBuilder is the shared-ownership allocation strategy: every Alloc call
// heap-allocates independently and the garbage collector keeps a node alive
// exactly as long as some handle (or reachable ancestor) refers to it. No
// structural interning is performed beyond scalars and identifiers, so it
// suits types that must outlive a single compilation and cross ownership
// boundaries.
//
// Construction is not synchronized; handles to already-built nodes may be
// shared and read concurrently, since nodes are immutable.
type HeapBuilder struct {
	scalars [5]Type
	idents  map[string]Ident
	nextID  uint32
}

var _ Builder = (*HeapBuilder)(nil)

func NewHeapBuilder() *HeapBuilder {
	return &HeapBuilder{
		idents: make(map[string]Ident),
	}
}

func (b *HeapBuilder) Alloc(k Kind) Type {
	// Scalars are interned once per builder and reused.
	if s, ok := k.(Scalar); ok {
		if cached := b.scalars[s.Kind]; !cached.IsZero() {
			return cached
		}
		t := Type{&node{flags: computeFlags(k), kind: k}}
		b.scalars[s.Kind] = t
		return t
	}
	return Type{&node{flags: computeFlags(k), kind: k}}
}

func (b *HeapBuilder) AllocIdent(name string) Ident {
	name = norm.NFC.String(name)
	if id, ok := b.idents[name]; ok {
		return id
	}
	b.nextID++
	id := Ident{&internedName{text: name, id: b.nextID}}
	b.idents[name] = id
	return id
}

func (b *HeapBuilder) AllocTypeList(ts []Type) TypeList {
	if len(ts) == 0 {
		return nil
	}
	out := make(TypeList, len(ts))
	copy(out, ts)
	return out
}

func (b *HeapBuilder) AllocFieldList(fs []Field) FieldList {
	if len(fs) == 0 {
		return nil
	}
	out := make(FieldList, len(fs))
	copy(out, fs)
	return out
}

func (b *HeapBuilder) AllocIdentList(ids []Ident) IdentList {
	if len(ids) == 0 {
		return nil
	}
	out := make(IdentList, len(ids))
	copy(out, ids)
	return out
}
