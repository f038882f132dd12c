package gameobject

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
)

func Test_Bridge_EnsureEntityCreatesTransformAndSprite(t *testing.T) {
	// Arrange
	registry := ecs.NewRegistry()
	bridge := NewBridge()
	obj := New("Player")
	obj.X, obj.Y = 42, 17
	obj.Angle = 90
	obj.Width, obj.Height = 64, 32
	obj.Color = "red"
	obj.Alpha = 0.5

	// Act
	id := bridge.EnsureEntity(registry, obj)
	bridge.Sync(registry, obj)

	// Assert
	assert.True(t, registry.ContainsEntity(id))

	transform, ok := ecs.GetComponent[components.TransformComponent](registry, id, ecs.ComponentTypeTransform)
	assert.True(t, ok)
	assert.Equal(t, ecs.Vector2{X: 42, Y: 17}, transform.Position)
	assert.Equal(t, 90.0, transform.Rotation)
	assert.Equal(t, ecs.Vector2{X: 64, Y: 32}, transform.Scale)

	sprite, ok := ecs.GetComponent[components.SpriteComponent](registry, id, ecs.ComponentTypeSprite)
	assert.True(t, ok)
	assert.Equal(t, uint8(127), sprite.Color.A) // 0.5 * 255, truncated
	assert.Equal(t, uint8(255), sprite.Color.R) // CSS "red" is #FF0000
	assert.Equal(t, uint8(0), sprite.Color.G)
}

func Test_Bridge_EnsureEntityIsIdempotent(t *testing.T) {
	// Arrange
	registry := ecs.NewRegistry()
	bridge := NewBridge()
	obj := New("Enemy")

	// Act
	first := bridge.EnsureEntity(registry, obj)
	second := bridge.EnsureEntity(registry, obj)

	// Assert
	assert.Equal(t, first, second)
	assert.Equal(t, 1, registry.GetEntityCount())
}

func Test_Bridge_RemoveDestroysShadowEntity(t *testing.T) {
	// Arrange
	registry := ecs.NewRegistry()
	bridge := NewBridge()
	obj := New("Temp")
	id := bridge.EnsureEntity(registry, obj)
	assert.True(t, registry.ContainsEntity(id))

	// Act
	bridge.Remove(obj)

	// Assert
	assert.False(t, registry.ContainsEntity(id))
	assert.Equal(t, 0, registry.GetEntityCount())
}

func Test_Bridge_SyncAddsPhysicsComponentWhenEnabled(t *testing.T) {
	// Arrange
	registry := ecs.NewRegistry()
	bridge := NewBridge()
	obj := New("Mover")
	obj.Physics = true
	obj.SpeedX, obj.SpeedY = 3, -4

	// Act
	bridge.Sync(registry, obj)
	id := bridge.EnsureEntity(registry, obj)

	// Assert
	physics, ok := ecs.GetComponent[components.PhysicsComponent](registry, id, ecs.ComponentTypePhysics)
	assert.True(t, ok)
	assert.Equal(t, ecs.Vector2{X: 3, Y: -4}, physics.Velocity)
}

func Test_ParseColor_NamedHexAndCSV(t *testing.T) {
	// Act & Assert
	named := ParseColor("white")
	assert.Equal(t, ecs.Color{R: 255, G: 255, B: 255, A: 255}, named)

	hex := ParseColor("#112233")
	assert.Equal(t, ecs.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}, hex)

	csv := ParseColor("10,20,30,40")
	assert.Equal(t, ecs.Color{R: 10, G: 20, B: 30, A: 40}, csv)

	fallback := ParseColor("not-a-real-color")
	assert.Equal(t, ecs.Color{R: 255, G: 255, B: 255, A: 255}, fallback)
}
