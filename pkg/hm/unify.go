package hm

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/fen-lang/fen/pkg/types"
)

const debugUnify = false

// MismatchError reports that two types cannot be made equal. It carries
// both sides' shapes; the analyzer attaches source spans, which this core
// has no notion of.
type MismatchError struct {
	Left  types.Type
	Right types.Type
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}

// OccursError reports that binding Var to Type would create an infinite
// type.
type OccursError struct {
	Var  types.VarID
	Type types.Type
}

func (e OccursError) Error() string {
	return fmt.Sprintf("infinite type: t%d occurs in %s", e.Var, e.Type)
}

// Unify makes a and b equal by binding unbound variables in s, or reports
// why it cannot. On failure the store is left exactly as it was: bindings
// made by the failing call are rolled back.
func Unify(b types.Builder, x, y types.Type, s *Store) error {
	mark := s.mark()
	if err := unify(b, x, y, s); err != nil {
		s.rollback(mark)
		return err
	}
	return nil
}

func unify(b types.Builder, x, y types.Type, s *Store) error {
	x, err := Resolve(x, s)
	if err != nil {
		return err
	}
	y, err = Resolve(y, s)
	if err != nil {
		return err
	}

	// Interned handles make this the common O(1) exit.
	if x == y {
		return nil
	}

	xv, xIsVar := x.Kind().(types.Var)
	yv, yIsVar := y.Kind().(types.Var)
	switch {
	case xIsVar && yIsVar && xv.ID == yv.ID:
		return nil
	case xIsVar:
		return bindVar(xv.ID, y, s)
	case yIsVar:
		return bindVar(yv.ID, x, s)
	}

	switch xk := x.Kind().(type) {
	case types.Scalar:
		if yk, ok := y.Kind().(types.Scalar); ok && xk.Kind == yk.Kind {
			return nil
		}

	case types.Array:
		if yk, ok := y.Kind().(types.Array); ok {
			return errors.Wrap(unify(b, xk.Elem, yk.Elem, s), "array element")
		}

	case types.Map:
		if yk, ok := y.Kind().(types.Map); ok {
			if err := unify(b, xk.Key, yk.Key, s); err != nil {
				return errors.Wrap(err, "map key")
			}
			return errors.Wrap(unify(b, xk.Value, yk.Value, s), "map value")
		}

	case types.Record:
		if yk, ok := y.Kind().(types.Record); ok {
			return unifyRecords(b, x, y, xk, yk, s)
		}

	case types.Func:
		if yk, ok := y.Kind().(types.Func); ok {
			if len(xk.Params) != len(yk.Params) {
				return errors.Wrapf(MismatchError{Left: x, Right: y},
					"arity mismatch: %d parameters vs %d", len(xk.Params), len(yk.Params))
			}
			for i := range xk.Params {
				if err := unify(b, xk.Params[i], yk.Params[i], s); err != nil {
					return errors.Wrapf(err, "parameter %d", i)
				}
			}
			return errors.Wrap(unify(b, xk.Ret, yk.Ret, s), "return type")
		}

	case types.Symbol:
		if yk, ok := y.Kind().(types.Symbol); ok && symbolPartsEqual(xk, yk) {
			return nil
		}
	}

	if debugUnify {
		spew.Dump(x, y)
	}
	return MismatchError{Left: x, Right: y}
}

func unifyRecords(b types.Builder, x, y types.Type, xk, yk types.Record, s *Store) error {
	if len(xk.Fields) != len(yk.Fields) {
		return errors.Wrapf(MismatchError{Left: x, Right: y},
			"field set mismatch: %d fields vs %d", len(xk.Fields), len(yk.Fields))
	}
	// Fields match by name, not position; declaration order is free to
	// differ between the two sides.
	for _, f := range xk.Fields {
		other, ok := yk.Fields.Lookup(f.Name.String())
		if !ok {
			return errors.Wrapf(MismatchError{Left: x, Right: y},
				"field set mismatch: missing field %q", f.Name)
		}
		if err := unify(b, f.Type, other, s); err != nil {
			return errors.Wrapf(err, "field %q", f.Name)
		}
	}
	return nil
}

func symbolPartsEqual(x, y types.Symbol) bool {
	if len(x.Parts) != len(y.Parts) {
		return false
	}
	for i, p := range x.Parts {
		if p.String() != y.Parts[i].String() {
			return false
		}
	}
	return true
}

// bindVar binds an unbound variable after the occurs check.
func bindVar(id types.VarID, t types.Type, s *Store) error {
	if occursIn(id, t, s) {
		return OccursError{Var: id, Type: t}
	}
	return s.Bind(id, t)
}

// occursIn reports whether id occurs in t, following bindings through the
// store. Concrete subtrees are skipped via the cached flag.
func occursIn(id types.VarID, t types.Type, s *Store) bool {
	if t.Flags().Concrete() {
		return false
	}
	if v, ok := t.Kind().(types.Var); ok {
		if v.ID == id {
			return true
		}
		if bound, isBound := s.Lookup(v.ID); isBound {
			return occursIn(id, bound, s)
		}
		return false
	}
	for _, c := range types.AppendChildren(nil, t) {
		if occursIn(id, c, s) {
			return true
		}
	}
	return false
}
