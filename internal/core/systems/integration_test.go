package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/systems"
)

func TestPipeline_MovementThenPhysicsThenRendering(t *testing.T) {
	ctx := ecs.NewECSContext()

	require.NoError(t, ctx.AddSystem(systems.NewMovementSystem()))
	require.NoError(t, ctx.AddSystem(systems.NewPhysicsSystem()))
	require.NoError(t, ctx.AddSystem(systems.NewRenderingSystem()))
	require.NoError(t, ctx.AddSystem(systems.NewAudioSystem()))

	r := ctx.Registry()
	entity := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, entity, ecs.ComponentTypeTransform, components.TransformComponent{Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, entity, ecs.ComponentTypePhysics, components.PhysicsComponent{
		Velocity: ecs.Vector2{X: 10, Y: 0}, Mass: 1.0, Gravity: true,
	}))
	require.NoError(t, ecs.AddComponent(r, entity, ecs.ComponentTypeSprite, components.SpriteComponent{
		Visible: true, SourceRect: ecs.AABB{Max: ecs.Vector2{X: 4, Y: 4}},
	}))

	for i := 0; i < 5; i++ {
		require.NoError(t, ctx.Update(0.016))
	}

	transform, ok := ecs.GetComponent[components.TransformComponent](r, entity, ecs.ComponentTypeTransform)
	require.True(t, ok)
	assert.Greater(t, transform.Position.X, 0.0)

	rendering, ok := ctx.GetSystem(string(ecs.SystemTypeRendering))
	require.True(t, ok)
	renderingSystem, ok := rendering.(*systems.RenderingSystem)
	require.True(t, ok)
	assert.Len(t, renderingSystem.GetVisibleEntities(), 1)
}

func TestECSContext_SystemOrderIsAscendingPriority(t *testing.T) {
	ctx := ecs.NewECSContext()
	require.NoError(t, ctx.AddSystem(systems.NewAudioSystem()))
	require.NoError(t, ctx.AddSystem(systems.NewMovementSystem()))
	require.NoError(t, ctx.AddSystem(systems.NewRenderingSystem()))
	require.NoError(t, ctx.AddSystem(systems.NewPhysicsSystem()))

	order := ctx.Systems()
	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, order[i-1].GetPriority(), order[i].GetPriority())
	}
}
