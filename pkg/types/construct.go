package types

import "sort"

// Construction helpers for host code describing function signatures and for
// the analyzer building types from syntax. Each helper works with any
// Builder.

func NewVar(b Builder, id VarID) Type {
	return b.Alloc(Var{ID: id})
}

func NewScalar(b Builder, k ScalarKind) Type {
	return b.Alloc(Scalar{Kind: k})
}

func NewArray(b Builder, elem Type) Type {
	return b.Alloc(Array{Elem: elem})
}

func NewMap(b Builder, key, value Type) Type {
	return b.Alloc(Map{Key: key, Value: value})
}

// FieldOf interns name through b and pairs it with t.
func FieldOf(b Builder, name string, t Type) Field {
	return Field{Name: b.AllocIdent(name), Type: t}
}

// NewRecord builds a record type. Declaration order of fields is preserved.
func NewRecord(b Builder, fields ...Field) Type {
	return b.Alloc(Record{Fields: b.AllocFieldList(fields)})
}

func NewFunc(b Builder, params []Type, ret Type) Type {
	return b.Alloc(Func{Params: b.AllocTypeList(params), Ret: ret})
}

// NewSymbol builds a symbol type from its part names. Parts are sorted and
// deduplicated so the representation is canonical regardless of source
// order.
func NewSymbol(b Builder, parts ...string) Type {
	sorted := make([]string, len(parts))
	copy(sorted, parts)
	sort.Strings(sorted)

	ids := make([]Ident, 0, len(sorted))
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			continue
		}
		ids = append(ids, b.AllocIdent(p))
	}
	return b.Alloc(Symbol{Parts: b.AllocIdentList(ids)})
}

// Equal reports deep structural equality. It works across builders, falling
// back to recursion only when handle identity does not already decide the
// answer.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	if a.IsZero() || b.IsZero() {
		return false
	}
	switch ka := a.Kind().(type) {
	case Var:
		kb, ok := b.Kind().(Var)
		return ok && ka.ID == kb.ID
	case Scalar:
		kb, ok := b.Kind().(Scalar)
		return ok && ka.Kind == kb.Kind
	case Array:
		kb, ok := b.Kind().(Array)
		return ok && Equal(ka.Elem, kb.Elem)
	case Map:
		kb, ok := b.Kind().(Map)
		return ok && Equal(ka.Key, kb.Key) && Equal(ka.Value, kb.Value)
	case Record:
		kb, ok := b.Kind().(Record)
		if !ok || len(ka.Fields) != len(kb.Fields) {
			return false
		}
		for i, f := range ka.Fields {
			other := kb.Fields[i]
			if f.Name.String() != other.Name.String() || !Equal(f.Type, other.Type) {
				return false
			}
		}
		return true
	case Func:
		kb, ok := b.Kind().(Func)
		if !ok || len(ka.Params) != len(kb.Params) {
			return false
		}
		for i, p := range ka.Params {
			if !Equal(p, kb.Params[i]) {
				return false
			}
		}
		return Equal(ka.Ret, kb.Ret)
	case Symbol:
		kb, ok := b.Kind().(Symbol)
		if !ok || len(ka.Parts) != len(kb.Parts) {
			return false
		}
		for i, p := range ka.Parts {
			if p.String() != kb.Parts[i].String() {
				return false
			}
		}
		return true
	default:
		return false
	}
}
