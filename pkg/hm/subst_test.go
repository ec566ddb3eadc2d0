package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fen-lang/fen/pkg/types"
)

func TestSubstituteReplacesVariables(t *testing.T) {
	b := types.NewArenaBuilder()

	boolTy := types.NewScalar(b, types.Bool)
	ty := types.NewFunc(b, []types.Type{types.NewVar(b, 0)}, types.NewVar(b, 0))

	got := Substitute(b, ty, Subs{0: boolTy})
	assert.True(t, got == types.NewFunc(b, []types.Type{boolTy}, boolTy))
}

func TestSubstituteNoOpSharing(t *testing.T) {
	b := types.NewHeapBuilder()

	concrete := types.NewArray(b, types.NewScalar(b, types.Int))
	got := Substitute(b, concrete, Subs{0: types.NewScalar(b, types.Bool)})
	assert.True(t, got == concrete, "no mapped variable occurs: identical handle, not a copy")

	// A type with variables, none of which are mapped.
	withVar := types.NewArray(b, types.NewVar(b, 5))
	got = Substitute(b, withVar, Subs{0: types.NewScalar(b, types.Bool)})
	assert.True(t, got == withVar)
}

func TestSubstituteSharesUntouchedBranches(t *testing.T) {
	b := types.NewHeapBuilder()

	xTy := types.NewMap(b, types.NewScalar(b, types.Str), types.NewScalar(b, types.Int))
	rec := types.NewRecord(b,
		types.FieldOf(b, "x", xTy),
		types.FieldOf(b, "y", types.NewVar(b, 0)),
	)

	got := Substitute(b, rec, Subs{0: types.NewScalar(b, types.Bool)})
	require.False(t, got == rec)

	// The untouched branch is shared by handle, not rebuilt.
	gotX, ok := got.Kind().(types.Record).Fields.Lookup("x")
	require.True(t, ok)
	assert.True(t, gotX == xTy)

	gotY, ok := got.Kind().(types.Record).Fields.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, "Bool", gotY.String())
}

func TestSubstituteDoesNotChase(t *testing.T) {
	b := types.NewArenaBuilder()

	// t0 -> t1 while t1 is itself mapped: replacements are not
	// re-substituted.
	got := Substitute(b, types.NewVar(b, 0), Subs{
		0: types.NewVar(b, 1),
		1: types.NewScalar(b, types.Int),
	})
	v, ok := got.Kind().(types.Var)
	require.True(t, ok)
	assert.Equal(t, types.VarID(1), v.ID)
}

func TestSubsString(t *testing.T) {
	b := types.NewArenaBuilder()

	subs := Subs{
		2: types.NewScalar(b, types.Bool),
		0: types.NewScalar(b, types.Int),
	}
	assert.Equal(t, "{t0: Int, t2: Bool}", subs.String())
}
