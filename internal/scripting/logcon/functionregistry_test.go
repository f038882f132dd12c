package logcon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FunctionRegistry_DualAliasDispatch(t *testing.T) {
	// Arrange
	registry := NewFunctionRegistry()
	registry.RegisterFunction(&FunctionEntry{
		Name: "size", Aliases: []string{"length_of"}, MinArgs: 1, MaxArgs: 1, Category: "array",
		Fn: func(_ *Interpreter, a []Value) Value { return Number(float64(a[0].Len())) },
	})
	interp := NewInterpreter(registry)
	arr := NewArray([]Value{Number(1), Number(2), Number(3)})

	// Act
	viaName, okName := registry.CallFunction(interp, "size", []Value{arr})
	viaAlias, okAlias := registry.CallFunction(interp, "length_of", []Value{arr})

	// Assert
	assert.True(t, okName)
	assert.True(t, okAlias)
	assert.Equal(t, 3.0, viaName.AsNumber())
	assert.Equal(t, 3.0, viaAlias.AsNumber())
}

func Test_FunctionRegistry_ArgCountViolationReturnsNone(t *testing.T) {
	// Arrange
	registry := NewFunctionRegistry()
	registry.RegisterFunction(&FunctionEntry{
		Name: "clamp", MinArgs: 3, MaxArgs: 3, Category: "core",
		Fn: func(_ *Interpreter, a []Value) Value { return a[0] },
	})
	interp := NewInterpreter(registry)

	// Act
	_, ok := registry.CallFunction(interp, "clamp", []Value{Number(1), Number(2)})

	// Assert
	assert.False(t, ok)
}

func Test_FunctionRegistry_UnknownNameReturnsNone(t *testing.T) {
	// Arrange
	registry := NewFunctionRegistry()
	interp := NewInterpreter(registry)

	// Act
	_, ok := registry.CallFunction(interp, "doesNotExist", nil)

	// Assert
	assert.False(t, ok)
}

func Test_FunctionRegistry_UnregisterRemovesAliasesToo(t *testing.T) {
	// Arrange
	registry := NewFunctionRegistry()
	registry.RegisterFunction(&FunctionEntry{
		Name: "size", Aliases: []string{"length_of"}, MinArgs: 1, MaxArgs: 1, Category: "array",
		Fn: func(_ *Interpreter, a []Value) Value { return Number(float64(a[0].Len())) },
	})

	// Act
	registry.Unregister("size")

	// Assert
	_, ok := registry.FindFunction("size")
	assert.False(t, ok)
	_, ok = registry.FindFunction("length_of")
	assert.False(t, ok)
}

func Test_FunctionRegistry_ClearCategoryLeavesOthersIntact(t *testing.T) {
	// Arrange
	registry := NewFunctionRegistry()
	RegisterBuiltins(registry)

	// Act
	registry.ClearCategory("math")

	// Assert
	_, ok := registry.FindFunction("sqrt")
	assert.False(t, ok)
	_, ok = registry.FindFunction("print")
	assert.True(t, ok)
}

func Test_RegisterBuiltins_CoreMathAndArrayFamiliesArePresent(t *testing.T) {
	// Arrange
	registry := NewFunctionRegistry()

	// Act
	RegisterBuiltins(registry)

	// Assert
	for _, name := range []string{"sqrt", "upper", "size", "move", "damage", "jump", "shoot"} {
		_, ok := registry.FindFunction(name)
		assert.True(t, ok, "expected builtin %q to be registered", name)
	}
}
