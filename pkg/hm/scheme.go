package hm

import (
	"fmt"
	"strings"

	"github.com/fen-lang/fen/pkg/types"
)

// Scheme is a quantified type: a type together with the variables the
// analyzer generalized over. A scheme with no quantified variables is
// monomorphic.
type Scheme struct {
	vars []types.VarID
	t    types.Type
}

func NewScheme(vars []types.VarID, t types.Type) *Scheme {
	return &Scheme{vars: vars, t: t}
}

// Type returns the underlying type and whether the scheme is monomorphic.
func (s *Scheme) Type() (types.Type, bool) {
	return s.t, len(s.vars) == 0
}

// TypeVars returns the quantified variable ids.
func (s *Scheme) TypeVars() []types.VarID {
	return s.vars
}

// FreeTypeVars returns the type's free variables minus the quantified ones.
func (s *Scheme) FreeTypeVars(b types.Builder) VarSet {
	ftv := FreeTypeVars(b, s.t)
	if len(ftv) == 0 {
		return nil
	}
	out := make(VarSet, len(ftv))
	for id := range ftv {
		out[id] = true
	}
	for _, id := range s.vars {
		delete(out, id)
	}
	return out
}

func (s *Scheme) String() string {
	if len(s.vars) == 0 {
		return s.t.String()
	}
	parts := make([]string, len(s.vars))
	for i, id := range s.vars {
		parts[i] = fmt.Sprintf("t%d", id)
	}
	return fmt.Sprintf("forall %s. %s", strings.Join(parts, " "), s.t)
}

// Generalize quantifies the variables that are free in t but not free in
// the environment, after resolving t against the store. This is how the
// analyzer turns an inferred type into a reusable polymorphic scheme.
func Generalize(b types.Builder, env Env, t types.Type, s *Store) (*Scheme, error) {
	resolved, err := Apply(b, t, s)
	if err != nil {
		return nil, err
	}

	ftv := FreeTypeVars(b, resolved)
	if len(ftv) == 0 {
		return NewScheme(nil, resolved), nil
	}

	envFtv := env.FreeTypeVars(b)
	var quantified []types.VarID
	for _, id := range ftv.Sorted() {
		if !envFtv.Contains(id) {
			quantified = append(quantified, id)
		}
	}
	return NewScheme(quantified, resolved), nil
}

// Instantiate replaces a scheme's quantified variables with fresh unbound
// variables, yielding a type ready to unify against a use site.
func Instantiate(b types.Builder, s *Store, scheme *Scheme) types.Type {
	if len(scheme.vars) == 0 {
		return scheme.t
	}
	subs := make(Subs, len(scheme.vars))
	for _, id := range scheme.vars {
		subs[id] = s.Fresh(b)
	}
	return Substitute(b, scheme.t, subs)
}
