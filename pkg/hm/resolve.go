package hm

import (
	"github.com/pkg/errors"

	"github.com/fen-lang/fen/pkg/types"
)

// ErrBindingCycle reports a self-referential binding chain in the variable
// store. Bindings made through Unify cannot cycle (the occurs check rejects
// them), so hitting this means the store was populated by hand.
var ErrBindingCycle = errors.New("binding cycle in variable store")

// Resolve follows a variable's binding chain to its eventual value: the
// first non-variable type, or the last unbound variable in the chain.
// Non-variable types resolve to themselves. Resolve reads the store but
// never writes it.
func Resolve(t types.Type, s *Store) (types.Type, error) {
	var seen map[types.VarID]bool
	for {
		v, ok := t.Kind().(types.Var)
		if !ok {
			return t, nil
		}
		bound, ok := s.Lookup(v.ID)
		if !ok {
			return t, nil
		}
		if seen[v.ID] {
			return types.Type{}, errors.Wrapf(ErrBindingCycle, "resolving t%d", v.ID)
		}
		if seen == nil {
			seen = make(map[types.VarID]bool)
		}
		seen[v.ID] = true
		t = bound
	}
}

// Apply resolves every bound variable in t transitively, producing a type
// that mentions only unbound variables (or none at all, once inference has
// succeeded). This is what the evaluator consumes: fully resolved handles
// attached to syntax nodes.
func Apply(b types.Builder, t types.Type, s *Store) (types.Type, error) {
	return apply(b, t, s, nil)
}

func apply(b types.Builder, t types.Type, s *Store, expanding map[types.VarID]bool) (types.Type, error) {
	// Concrete subtrees cannot mention variables; share them as-is.
	if t.Flags().Concrete() {
		return t, nil
	}

	if v, ok := t.Kind().(types.Var); ok {
		bound, ok := s.Lookup(v.ID)
		if !ok {
			return t, nil
		}
		if expanding[v.ID] {
			return types.Type{}, errors.Wrapf(ErrBindingCycle, "expanding t%d", v.ID)
		}
		if expanding == nil {
			expanding = make(map[types.VarID]bool)
		}
		expanding[v.ID] = true
		out, err := apply(b, bound, s, expanding)
		delete(expanding, v.ID)
		return out, err
	}

	children := types.AppendChildren(nil, t)
	changed := false
	for i, c := range children {
		nc, err := apply(b, c, s, expanding)
		if err != nil {
			return types.Type{}, err
		}
		if nc != c {
			changed = true
		}
		children[i] = nc
	}
	if !changed {
		return t, nil
	}
	return types.Rebuild(b, t, children), nil
}
