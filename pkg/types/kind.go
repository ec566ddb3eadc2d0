package types

// VarID identifies a unification variable.
type VarID uint32

// ScalarKind is the sub-tag carried by the Scalar variant. Numeric and
// non-numeric scalars share the variant so algorithms only have to handle
// one scalar case.
type ScalarKind uint8

const (
	Bool ScalarKind = iota
	Int
	Float
	Str
	Bytes
)

// Numeric reports whether the scalar kind supports arithmetic.
func (k ScalarKind) Numeric() bool {
	return k == Int || k == Float
}

func (k ScalarKind) String() string {
	switch k {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Str:
		return "Str"
	case Bytes:
		return "Bytes"
	default:
		return "Scalar(?)"
	}
}

// Kind is the tagged variant of a type node. Composite variants carry their
// children by handle; copying a Kind never copies a subtree.
type Kind interface {
	isKind()
}

// Var is a unification variable standing for a not-yet-known type.
type Var struct {
	ID VarID
}

// Scalar is a primitive type (Bool, Int, Float, Str, Bytes).
type Scalar struct {
	Kind ScalarKind
}

// Array is a homogeneous sequence type.
type Array struct {
	Elem Type
}

// Map is a key/value collection type.
type Map struct {
	Key   Type
	Value Type
}

// Record is a set of named fields in declaration order.
type Record struct {
	Fields FieldList
}

// Func is a function type with positional parameters.
type Func struct {
	Params TypeList
	Ret    Type
}

// Symbol is a tagged-union type identified by its sorted part names.
type Symbol struct {
	Parts IdentList
}

func (Var) isKind()    {}
func (Scalar) isKind() {}
func (Array) isKind()  {}
func (Map) isKind()    {}
func (Record) isKind() {}
func (Func) isKind()   {}
func (Symbol) isKind() {}

// AppendChildren appends t's direct child types to dst in canonical order:
// Array yields its element; Map its key then value; Record its field types
// in declaration order; Func its parameters then return type. Leaves (Var,
// Scalar, Symbol) yield nothing.
func AppendChildren(dst []Type, t Type) []Type {
	switch k := t.Kind().(type) {
	case Array:
		return append(dst, k.Elem)
	case Map:
		return append(dst, k.Key, k.Value)
	case Record:
		for _, f := range k.Fields {
			dst = append(dst, f.Type)
		}
		return dst
	case Func:
		dst = append(dst, k.Params...)
		return append(dst, k.Ret)
	default:
		return dst
	}
}

// Rebuild allocates a node shaped like t with its direct children replaced.
// children must match AppendChildren's order and count for t. Identifiers
// are re-interned through b, so the result may live in a different builder
// than t does.
func Rebuild(b Builder, t Type, children []Type) Type {
	switch k := t.Kind().(type) {
	case Var:
		return b.Alloc(k)
	case Scalar:
		return b.Alloc(k)
	case Symbol:
		parts := make([]Ident, len(k.Parts))
		for i, p := range k.Parts {
			parts[i] = b.AllocIdent(p.String())
		}
		return b.Alloc(Symbol{Parts: b.AllocIdentList(parts)})
	case Array:
		return b.Alloc(Array{Elem: children[0]})
	case Map:
		return b.Alloc(Map{Key: children[0], Value: children[1]})
	case Record:
		fields := make([]Field, len(k.Fields))
		for i, f := range k.Fields {
			fields[i] = Field{Name: b.AllocIdent(f.Name.String()), Type: children[i]}
		}
		return b.Alloc(Record{Fields: b.AllocFieldList(fields)})
	case Func:
		n := len(k.Params)
		return b.Alloc(Func{Params: b.AllocTypeList(children[:n]), Ret: children[n]})
	default:
		panic("types: unknown kind")
	}
}
