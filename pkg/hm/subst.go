package hm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fen-lang/fen/pkg/types"
)

// Subs is a substitution: a mapping from variable ids to replacement types.
type Subs map[types.VarID]types.Type

func NewSubs() Subs {
	return make(Subs)
}

func (s Subs) Clone() Subs {
	out := make(Subs, len(s))
	for id, t := range s {
		out[id] = t
	}
	return out
}

func (s Subs) String() string {
	ids := make([]types.VarID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	sb.WriteString("{")
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "t%d: %s", id, s[id])
	}
	sb.WriteString("}")
	return sb.String()
}

type substFolder struct {
	subs Subs
}

func (f substFolder) FoldType(b types.Builder, t types.Type) types.FoldStep[types.Type] {
	// Variable-free subtrees are shared by handle, not copied.
	if t.Flags().Concrete() {
		return types.Done(t)
	}
	if v, ok := t.Kind().(types.Var); ok {
		if r, ok := f.subs[v.ID]; ok {
			return types.Done(r)
		}
		return types.Done(t)
	}
	return types.Recurse[types.Type]()
}

// Substitute produces a type with every free occurrence of a mapped
// variable replaced by its mapping. Replacements are not re-substituted.
// Subtrees in which no mapped variable occurs come back as the identical
// handle: substitution over a mostly-concrete type is an O(1) no-op per
// untouched branch.
func Substitute(b types.Builder, t types.Type, subs Subs) types.Type {
	if len(subs) == 0 || t.Flags().Concrete() {
		return t
	}
	return types.FoldTypes(b, t, substFolder{subs: subs})
}
