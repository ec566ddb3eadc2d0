package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fen-lang/fen/pkg/types"
)

func TestStoreFresh(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()

	v0 := s.Fresh(b)
	v1 := s.Fresh(b)
	assert.Equal(t, types.VarID(0), v0.Kind().(types.Var).ID)
	assert.Equal(t, types.VarID(1), v1.Kind().(types.Var).ID)
	assert.False(t, v0 == v1)
}

func TestStoreBindLookup(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()

	id := s.FreshID()
	_, ok := s.Lookup(id)
	assert.False(t, ok)

	intTy := types.NewScalar(b, types.Int)
	require.NoError(t, s.Bind(id, intTy))

	got, ok := s.Lookup(id)
	require.True(t, ok)
	assert.True(t, got == intTy)
	assert.Equal(t, 1, s.Len())
}

func TestStoreRejectsRebinding(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()

	id := s.FreshID()
	require.NoError(t, s.Bind(id, types.NewScalar(b, types.Int)))
	assert.Error(t, s.Bind(id, types.NewScalar(b, types.Bool)))
}

func TestStoreRollback(t *testing.T) {
	b := types.NewArenaBuilder()
	s := NewStore()

	keep := s.FreshID()
	require.NoError(t, s.Bind(keep, types.NewScalar(b, types.Int)))

	mark := s.mark()
	a, c := s.FreshID(), s.FreshID()
	require.NoError(t, s.Bind(a, types.NewScalar(b, types.Bool)))
	require.NoError(t, s.Bind(c, types.NewScalar(b, types.Str)))
	require.Equal(t, 3, s.Len())

	s.rollback(mark)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Lookup(a)
	assert.False(t, ok)
	_, ok = s.Lookup(c)
	assert.False(t, ok)
	_, ok = s.Lookup(keep)
	assert.True(t, ok, "bindings before the mark survive rollback")
}
