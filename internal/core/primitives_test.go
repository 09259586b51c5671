package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaver/internal/types"
)

func TestPrimitiveCatalog(t *testing.T) {
	for _, name := range PrimitiveNames() {
		t.Run(name, func(t *testing.T) {
			p, ok := Primitive(name)
			require.True(t, ok)
			assert.Equal(t, name, p.FQN())
			assert.True(t, p.IsPrimitive())
			assert.False(t, p.Framed())
			assert.Empty(t, p.Fields())
			assert.Equal(t, -1, p.FlagsField())
			assert.Equal(t, types.VersionRange{First: 1, Latest: 1}, p.Versions())
			assert.Equal(t, name == BooleanPrimitive, p.IsBoolean())
		})
	}
	_, ok := Primitive("@x/Foo")
	assert.False(t, ok)
}

func TestPrimitivesAreSharedAcrossRoots(t *testing.T) {
	first := mustRoot(t, geometryDocument(), nil)
	second := mustRoot(t, geometryDocument(), first)
	assert.Same(t, mustResolve(t, first, "double"), mustResolve(t, second, "double"))

	boolean, ok := Primitive(BooleanPrimitive)
	require.True(t, ok)
	assert.Equal(t, false, boolean.Default())
}
