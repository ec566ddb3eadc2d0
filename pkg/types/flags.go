package types

// Flags is a bitset of structural properties cached on every node. It is
// computed once at allocation time; nodes are immutable afterwards, so it is
// never recomputed.
type Flags uint16

const (
	// FlagHasVars is set when the subtree contains at least one
	// unification variable.
	FlagHasVars Flags = 1 << iota
)

// HasVars reports whether the subtree contains a unification variable.
func (f Flags) HasVars() bool {
	return f&FlagHasVars != 0
}

// Concrete reports whether the subtree is fully concrete (variable-free).
func (f Flags) Concrete() bool {
	return f&FlagHasVars == 0
}

// computeFlags derives a node's flags from its variant. A composite node's
// flags are the union of its direct children's flags; children carry their
// own cached flags, so this never walks more than one level.
func computeFlags(k Kind) Flags {
	switch k := k.(type) {
	case Var:
		return FlagHasVars
	case Array:
		return k.Elem.Flags()
	case Map:
		return k.Key.Flags() | k.Value.Flags()
	case Record:
		var f Flags
		for _, field := range k.Fields {
			f |= field.Type.Flags()
		}
		return f
	case Func:
		f := k.Ret.Flags()
		for _, p := range k.Params {
			f |= p.Flags()
		}
		return f
	default: // Scalar, Symbol
		return 0
	}
}
