package hm

import (
	"sort"

	"github.com/fen-lang/fen/pkg/types"
)

// VarSet is a set of unification-variable ids.
type VarSet map[types.VarID]bool

func NewVarSet(ids ...types.VarID) VarSet {
	set := make(VarSet, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (vs VarSet) Contains(id types.VarID) bool {
	return vs[id]
}

func (vs VarSet) Add(id types.VarID) {
	vs[id] = true
}

// Union returns a new set containing both sets' members.
func (vs VarSet) Union(other VarSet) VarSet {
	out := make(VarSet, len(vs)+len(other))
	for id := range vs {
		out[id] = true
	}
	for id := range other {
		out[id] = true
	}
	return out
}

// Sorted returns the members in ascending order.
func (vs VarSet) Sorted() []types.VarID {
	ids := make([]types.VarID, 0, len(vs))
	for id := range vs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type collectFold struct{}

func (collectFold) Visit(b types.Builder, t types.Type) (types.FoldStep[VarSet], error) {
	if t.Flags().Concrete() {
		return types.Done[VarSet](nil), nil
	}
	if v, ok := t.Kind().(types.Var); ok {
		return types.Done(NewVarSet(v.ID)), nil
	}
	return types.Recurse[VarSet](), nil
}

func (collectFold) Combine(b types.Builder, t types.Type, children []VarSet) (VarSet, error) {
	var out VarSet
	for _, c := range children {
		if len(c) == 0 {
			continue
		}
		if out == nil {
			out = make(VarSet, len(c))
		}
		for id := range c {
			out[id] = true
		}
	}
	return out, nil
}

// FreeTypeVars collects the unification variables reachable from t. The
// cached flag short-circuits the walk: a concrete type answers empty
// without visiting a single child.
func FreeTypeVars(b types.Builder, t types.Type) VarSet {
	if t.Flags().Concrete() {
		return nil
	}
	set, err := types.Drive(b, t, collectFold{})
	if err != nil {
		// collectFold never produces an error.
		panic(err)
	}
	return set
}
