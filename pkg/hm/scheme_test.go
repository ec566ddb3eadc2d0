package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fen-lang/fen/pkg/types"
)

func TestGeneralizeQuantifiesFreeVars(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()
	env := NewSimpleEnv()

	// id : (t0) => t0 generalizes to forall t0.
	v0 := s.Fresh(b)
	idTy := types.NewFunc(b, []types.Type{v0}, v0)

	scheme, err := Generalize(b, env, idTy, s)
	require.NoError(t, err)
	assert.Equal(t, []types.VarID{0}, scheme.TypeVars())
	assert.Equal(t, "forall t0. (t0) => t0", scheme.String())
}

func TestGeneralizeSkipsEnvVars(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()

	v0 := s.Fresh(b)
	v1 := s.Fresh(b)

	// t0 is free in the environment, so only t1 quantifies.
	env := NewSimpleEnv()
	env.Add("outer", NewScheme(nil, v0))

	ty := types.NewMap(b, v0, v1)
	scheme, err := Generalize(b, env, ty, s)
	require.NoError(t, err)
	assert.Equal(t, []types.VarID{1}, scheme.TypeVars())
}

func TestGeneralizeResolvesThroughStore(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()
	env := NewSimpleEnv()

	v0 := s.Fresh(b)
	require.NoError(t, Unify(b, v0, types.NewScalar(b, types.Int), s))

	scheme, err := Generalize(b, env, types.NewArray(b, v0), s)
	require.NoError(t, err)
	ty, mono := scheme.Type()
	assert.True(t, mono, "a fully bound type generalizes to a monomorphic scheme")
	assert.Equal(t, "Array[Int]", ty.String())
}

func TestInstantiateFreshens(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()
	env := NewSimpleEnv()

	v0 := s.Fresh(b)
	idTy := types.NewFunc(b, []types.Type{v0}, v0)
	scheme, err := Generalize(b, env, idTy, s)
	require.NoError(t, err)

	// Two use sites get independent variables: unifying one at Int and the
	// other at Bool must both succeed.
	use1 := Instantiate(b, s, scheme)
	use2 := Instantiate(b, s, scheme)
	assert.False(t, use1 == use2)

	intTy := types.NewScalar(b, types.Int)
	boolTy := types.NewScalar(b, types.Bool)
	require.NoError(t, Unify(b, use1, types.NewFunc(b, []types.Type{intTy}, intTy), s))
	require.NoError(t, Unify(b, use2, types.NewFunc(b, []types.Type{boolTy}, boolTy), s))
}

func TestInstantiateMonomorphic(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()

	intTy := types.NewScalar(b, types.Int)
	scheme := NewScheme(nil, intTy)
	assert.True(t, Instantiate(b, s, scheme) == intTy)
}

func TestSchemeFreeTypeVars(t *testing.T) {
	b := types.NewArenaBuilder()

	ty := types.NewMap(b, types.NewVar(b, 0), types.NewVar(b, 1))
	scheme := NewScheme([]types.VarID{0}, ty)

	free := scheme.FreeTypeVars(b)
	assert.Equal(t, []types.VarID{1}, free.Sorted())
}

func TestEnvCloneAndRemove(t *testing.T) {
	b := types.NewArenaBuilder()

	env := NewSimpleEnv()
	env.Add("x", NewScheme(nil, types.NewScalar(b, types.Int)))
	env.Add("y", NewScheme(nil, types.NewVar(b, 4)))

	clone := env.Clone()
	removed := clone.Remove("x")
	_, ok := removed.SchemeOf("x")
	assert.False(t, ok)
	_, ok = env.SchemeOf("x")
	assert.True(t, ok, "Remove does not mutate the source env")

	free := env.FreeTypeVars(b)
	assert.Equal(t, []types.VarID{4}, free.Sorted())
}
