package gameobject

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/scripting/logcon"
)

func Test_GameObject_NewHasLegacyDefaults(t *testing.T) {
	// Arrange & Act
	obj := New("Player")

	// Assert
	assert.Equal(t, "Player", obj.Name)
	assert.NotEmpty(t, obj.ID())
	assert.Equal(t, 32.0, obj.Width)
	assert.Equal(t, 32.0, obj.Height)
	assert.True(t, obj.Visible)
	assert.Equal(t, 1.0, obj.Alpha)
}

func Test_GameObject_IDIsStableAndUnique(t *testing.T) {
	// Arrange & Act
	a := New("A")
	b := New("B")

	// Assert
	assert.Equal(t, a.ID(), a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func Test_GameObject_GetFieldKnownNames(t *testing.T) {
	// Arrange
	obj := New("Enemy")
	obj.X, obj.Y = 10, 20
	obj.Layer = 3
	obj.Physics = true

	// Act & Assert
	x, ok := obj.GetField("x")
	assert.True(t, ok)
	assert.Equal(t, 10.0, x.AsNumber())

	layer, ok := obj.GetField("layer")
	assert.True(t, ok)
	assert.Equal(t, 3.0, layer.AsNumber())

	physics, ok := obj.GetField("physics")
	assert.True(t, ok)
	assert.True(t, physics.AsBool())
}

func Test_GameObject_GetFieldUnknownNameReportsFalse(t *testing.T) {
	// Arrange
	obj := New("Enemy")

	// Act
	v, ok := obj.GetField("nonexistent")

	// Assert
	assert.False(t, ok)
	assert.Equal(t, logcon.Unit, v)
}

func Test_GameObject_SetFieldWritesKnownFields(t *testing.T) {
	// Arrange
	obj := New("Enemy")

	// Act
	assert.True(t, obj.SetField("x", logcon.Number(5)))
	assert.True(t, obj.SetField("visible", logcon.Bool(false)))

	// Assert
	assert.Equal(t, 5.0, obj.X)
	assert.False(t, obj.Visible)
}

func Test_GameObject_SetFieldUnknownNameIsNoOp(t *testing.T) {
	// Arrange
	obj := New("Enemy")

	// Act
	ok := obj.SetField("madeUpField", logcon.Number(1))

	// Assert
	assert.False(t, ok)
}

func Test_GameObject_LifecycleHooksChain(t *testing.T) {
	// Arrange
	obj := New("Chained")
	var order []string
	prevCreate, _, _ := obj.InstallLifecycleHooks(
		func() { order = append(order, "native") },
		nil,
		nil,
	)
	assert.Nil(t, prevCreate)

	// Act: install a second layer that chains to the first.
	obj.InstallLifecycleHooks(
		func() {
			order = append(order, "script-before")
			prevCreate()
			order = append(order, "script-after")
		},
		nil,
		nil,
	)
	obj.OnCreate()

	// Assert
	assert.Equal(t, []string{"script-before", "native", "script-after"}, order)
}
