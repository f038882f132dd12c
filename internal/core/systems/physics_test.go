package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/systems"
)

func TestPhysicsSystem_Interface(t *testing.T) {
	var _ ecs.System = systems.NewPhysicsSystem()
}

func TestPhysicsSystem_GravityAppliesToVelocity(t *testing.T) {
	r := ecs.NewRegistry()
	system := systems.NewPhysicsSystem()
	system.SetGravity(ecs.Vector2{X: 0, Y: 100})
	require.NoError(t, system.Init(r))

	entity := newRegistryEntity(r,
		&components.TransformComponent{Position: ecs.Vector2{}, Scale: ecs.Vector2{X: 1, Y: 1}},
		&components.PhysicsComponent{Mass: 1.0, Gravity: true},
	)

	require.NoError(t, system.Update(r, 1.0))

	physics, ok := ecs.GetComponent[components.PhysicsComponent](r, entity, ecs.ComponentTypePhysics)
	require.True(t, ok)
	assert.Greater(t, physics.Velocity.Y, 0.0)
}

func TestPhysicsSystem_StaticBodyIgnoresGravity(t *testing.T) {
	r := ecs.NewRegistry()
	system := systems.NewPhysicsSystem()
	system.SetGravity(ecs.Vector2{X: 0, Y: 100})
	require.NoError(t, system.Init(r))

	entity := newRegistryEntity(r,
		&components.TransformComponent{Scale: ecs.Vector2{X: 1, Y: 1}},
		&components.PhysicsComponent{Mass: 1.0, Gravity: true, IsStatic: true},
	)

	require.NoError(t, system.Update(r, 1.0))

	physics, ok := ecs.GetComponent[components.PhysicsComponent](r, entity, ecs.ComponentTypePhysics)
	require.True(t, ok)
	assert.Equal(t, 0.0, physics.Velocity.Y)
}

func TestPhysicsSystem_DetectsOverlappingSprites(t *testing.T) {
	r := ecs.NewRegistry()
	system := systems.NewPhysicsSystem()
	require.NoError(t, system.Init(r))

	overlap := ecs.AABB{Min: ecs.Vector2{X: 0, Y: 0}, Max: ecs.Vector2{X: 10, Y: 10}}

	a := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, a, ecs.ComponentTypeTransform, components.TransformComponent{Position: ecs.Vector2{X: 0, Y: 0}, Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, a, ecs.ComponentTypePhysics, components.PhysicsComponent{Mass: 1.0}))
	require.NoError(t, ecs.AddComponent(r, a, ecs.ComponentTypeSprite, components.SpriteComponent{SourceRect: overlap, Visible: true}))

	b := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, b, ecs.ComponentTypeTransform, components.TransformComponent{Position: ecs.Vector2{X: 5, Y: 5}, Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, b, ecs.ComponentTypePhysics, components.PhysicsComponent{Mass: 1.0}))
	require.NoError(t, ecs.AddComponent(r, b, ecs.ComponentTypeSprite, components.SpriteComponent{SourceRect: overlap, Visible: true}))

	require.NoError(t, system.Update(r, 0.016))

	assert.Len(t, system.GetCollisions(), 1)
}
