package types

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

const defaultChunkSize = 256

// ArenaBuilder is the bump-allocation strategy for the hot compilation path.
// Nodes, identifiers, and list storage are allocated from chunked blocks and
// never individually freed; everything becomes unreachable together when the
// builder is discarded.
//
// The arena interns structurally: allocating the same shape twice yields the
// identical handle, so == on handles is a complete structural equality check
// in O(1).
//
// An ArenaBuilder is a single mutable bump region and is not safe for
// concurrent use.
type ArenaBuilder struct {
	chunkSize int
	limit     int

	nodes  []node
	count  int
	nextID uint32

	types  map[string]Type
	idents map[string]Ident

	typeBuf  []Type
	fieldBuf []Field
	identBuf []Ident
	keyBuf   []byte
}

var _ Builder = (*ArenaBuilder)(nil)

// ArenaOption configures an ArenaBuilder at construction.
type ArenaOption func(*ArenaBuilder)

// WithChunkSize sets the number of nodes allocated per block.
func WithChunkSize(n int) ArenaOption {
	return func(b *ArenaBuilder) {
		if n > 0 {
			b.chunkSize = n
		}
	}
}

// WithNodeLimit bounds the total node count. Exceeding the limit panics:
// continuing with an exhausted arena is unsound, so exhaustion is
// intentionally fatal.
func WithNodeLimit(n int) ArenaOption {
	return func(b *ArenaBuilder) {
		b.limit = n
	}
}

func NewArenaBuilder(opts ...ArenaOption) *ArenaBuilder {
	b := &ArenaBuilder{
		chunkSize: defaultChunkSize,
		types:     make(map[string]Type),
		idents:    make(map[string]Ident),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of distinct nodes allocated so far.
func (b *ArenaBuilder) Len() int {
	return b.count
}

func (b *ArenaBuilder) Alloc(k Kind) Type {
	b.keyBuf = appendKindKey(b.keyBuf[:0], k)
	if t, ok := b.types[string(b.keyBuf)]; ok {
		return t
	}

	if b.limit > 0 && b.count >= b.limit {
		panic(fmt.Sprintf("types: arena exhausted: node limit %d reached", b.limit))
	}

	if len(b.nodes) == cap(b.nodes) {
		b.nodes = make([]node, 0, b.chunkSize)
	}
	b.nextID++
	b.nodes = append(b.nodes, node{flags: computeFlags(k), kind: k, id: b.nextID})
	t := Type{&b.nodes[len(b.nodes)-1]}
	b.count++
	b.types[string(b.keyBuf)] = t
	return t
}

func (b *ArenaBuilder) AllocIdent(name string) Ident {
	name = norm.NFC.String(name)
	if id, ok := b.idents[name]; ok {
		return id
	}
	b.nextID++
	id := Ident{&internedName{text: name, id: b.nextID}}
	b.idents[name] = id
	return id
}

func (b *ArenaBuilder) AllocTypeList(ts []Type) TypeList {
	if len(ts) == 0 {
		return nil
	}
	if cap(b.typeBuf)-len(b.typeBuf) < len(ts) {
		b.typeBuf = make([]Type, 0, max(b.chunkSize, len(ts)))
	}
	start := len(b.typeBuf)
	b.typeBuf = append(b.typeBuf, ts...)
	end := len(b.typeBuf)
	return TypeList(b.typeBuf[start:end:end])
}

func (b *ArenaBuilder) AllocFieldList(fs []Field) FieldList {
	if len(fs) == 0 {
		return nil
	}
	if cap(b.fieldBuf)-len(b.fieldBuf) < len(fs) {
		b.fieldBuf = make([]Field, 0, max(b.chunkSize, len(fs)))
	}
	start := len(b.fieldBuf)
	b.fieldBuf = append(b.fieldBuf, fs...)
	end := len(b.fieldBuf)
	return FieldList(b.fieldBuf[start:end:end])
}

func (b *ArenaBuilder) AllocIdentList(ids []Ident) IdentList {
	if len(ids) == 0 {
		return nil
	}
	if cap(b.identBuf)-len(b.identBuf) < len(ids) {
		b.identBuf = make([]Ident, 0, max(b.chunkSize, len(ids)))
	}
	start := len(b.identBuf)
	b.identBuf = append(b.identBuf, ids...)
	end := len(b.identBuf)
	return IdentList(b.identBuf[start:end:end])
}

// Structural key encoding for the intern table. Children are referenced by
// their builder-local ids, which is sound because children are interned
// before their parents: identical subtrees share an id.
const (
	keyVar byte = iota + 1
	keyScalar
	keyArray
	keyMap
	keyRecord
	keyFunc
	keySymbol
)

func appendKindKey(dst []byte, k Kind) []byte {
	switch k := k.(type) {
	case Var:
		dst = append(dst, keyVar)
		dst = binary.AppendUvarint(dst, uint64(k.ID))
	case Scalar:
		dst = append(dst, keyScalar, byte(k.Kind))
	case Array:
		dst = append(dst, keyArray)
		dst = binary.AppendUvarint(dst, uint64(k.Elem.n.id))
	case Map:
		dst = append(dst, keyMap)
		dst = binary.AppendUvarint(dst, uint64(k.Key.n.id))
		dst = binary.AppendUvarint(dst, uint64(k.Value.n.id))
	case Record:
		dst = append(dst, keyRecord)
		dst = binary.AppendUvarint(dst, uint64(len(k.Fields)))
		for _, f := range k.Fields {
			dst = binary.AppendUvarint(dst, uint64(f.Name.name.id))
			dst = binary.AppendUvarint(dst, uint64(f.Type.n.id))
		}
	case Func:
		dst = append(dst, keyFunc)
		dst = binary.AppendUvarint(dst, uint64(len(k.Params)))
		for _, p := range k.Params {
			dst = binary.AppendUvarint(dst, uint64(p.n.id))
		}
		dst = binary.AppendUvarint(dst, uint64(k.Ret.n.id))
	case Symbol:
		dst = append(dst, keySymbol)
		dst = binary.AppendUvarint(dst, uint64(len(k.Parts)))
		for _, p := range k.Parts {
			dst = binary.AppendUvarint(dst, uint64(p.name.id))
		}
	default:
		panic("types: unknown kind")
	}
	return dst
}
