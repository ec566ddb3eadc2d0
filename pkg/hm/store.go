// Package hm implements Hindley-Milner inference mechanics over the fen
// type representation: resolution, substitution, free-variable collection,
// and unification. All algorithms are generic over any types.Builder.
package hm

import (
	"github.com/pkg/errors"

	"github.com/fen-lang/fen/pkg/types"
)

// Store maps unification variables to their bindings for the duration of
// one inference pass. It is the single mutable structure in the otherwise
// immutable type model; the analyzer owns it and exactly one inference pass
// holds it at a time, so no locking is involved.
//
// Bindings are journaled: Unify marks the journal on entry and rolls back
// on failure, so a failed unification never leaves partial bindings behind.
type Store struct {
	bindings map[types.VarID]types.Type
	journal  []types.VarID
	next     types.VarID
}

func NewStore() *Store {
	return &Store{
		bindings: make(map[types.VarID]types.Type),
	}
}

// FreshID returns a previously unused variable id.
func (s *Store) FreshID() types.VarID {
	id := s.next
	s.next++
	return id
}

// Fresh allocates a fresh, unbound variable type in b.
func (s *Store) Fresh(b types.Builder) types.Type {
	return types.NewVar(b, s.FreshID())
}

// Lookup returns the binding for id, if any.
func (s *Store) Lookup(id types.VarID) (types.Type, bool) {
	t, ok := s.bindings[id]
	return t, ok
}

// Len returns the number of bound variables.
func (s *Store) Len() int {
	return len(s.bindings)
}

// Bind records id ↦ t. Variables bind at most once; rebinding indicates a
// bug in the caller and is rejected.
func (s *Store) Bind(id types.VarID, t types.Type) error {
	if prev, ok := s.bindings[id]; ok {
		return errors.Errorf("variable t%d is already bound to %s", id, prev)
	}
	s.bindings[id] = t
	s.journal = append(s.journal, id)
	return nil
}

func (s *Store) mark() int {
	return len(s.journal)
}

func (s *Store) rollback(mark int) {
	for _, id := range s.journal[mark:] {
		delete(s.bindings, id)
	}
	s.journal = s.journal[:mark]
}
