package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsComputedAtConstruction(t *testing.T) {
	b := NewArenaBuilder()

	intTy := NewScalar(b, Int)
	assert.True(t, intTy.Flags().Concrete())
	assert.False(t, intTy.Flags().HasVars())

	v := NewVar(b, 0)
	assert.True(t, v.Flags().HasVars())

	// Composite flags are the union of the children's flags.
	concreteMap := NewMap(b, NewScalar(b, Str), intTy)
	assert.True(t, concreteMap.Flags().Concrete())

	varArray := NewArray(b, v)
	assert.True(t, varArray.Flags().HasVars())

	rec := NewRecord(b, FieldOf(b, "x", intTy), FieldOf(b, "y", varArray))
	assert.True(t, rec.Flags().HasVars())

	fn := NewFunc(b, []Type{intTy}, NewScalar(b, Bool))
	assert.True(t, fn.Flags().Concrete())

	fnVar := NewFunc(b, []Type{v}, NewScalar(b, Bool))
	assert.True(t, fnVar.Flags().HasVars())

	sym := NewSymbol(b, "ok", "error")
	assert.True(t, sym.Flags().Concrete())
}

func TestScalarKindNumeric(t *testing.T) {
	assert.True(t, Int.Numeric())
	assert.True(t, Float.Numeric())
	assert.False(t, Bool.Numeric())
	assert.False(t, Str.Numeric())
	assert.False(t, Bytes.Numeric())
}
