package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/systems"
)

func TestRenderingSystem_Interface(t *testing.T) {
	var _ ecs.System = systems.NewRenderingSystem()
}

func TestRenderingSystem_CullsInvisibleAndOutOfViewport(t *testing.T) {
	r := ecs.NewRegistry()
	system := systems.NewRenderingSystem()
	system.SetViewport(0, 0, 100, 100)
	require.NoError(t, system.Init(r))

	visible := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, visible, ecs.ComponentTypeTransform, components.TransformComponent{Position: ecs.Vector2{X: 10, Y: 10}, Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, visible, ecs.ComponentTypeSprite, components.SpriteComponent{Visible: true, ZOrder: 1, SourceRect: ecs.AABB{Max: ecs.Vector2{X: 5, Y: 5}}}))

	hidden := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, hidden, ecs.ComponentTypeTransform, components.TransformComponent{Position: ecs.Vector2{X: 500, Y: 500}, Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, hidden, ecs.ComponentTypeSprite, components.SpriteComponent{Visible: true, ZOrder: 0, SourceRect: ecs.AABB{Max: ecs.Vector2{X: 5, Y: 5}}}))

	invisible := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, invisible, ecs.ComponentTypeTransform, components.TransformComponent{Position: ecs.Vector2{X: 20, Y: 20}, Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, invisible, ecs.ComponentTypeSprite, components.SpriteComponent{Visible: false, ZOrder: 0, SourceRect: ecs.AABB{Max: ecs.Vector2{X: 5, Y: 5}}}))

	require.NoError(t, system.Update(r, 0.016))

	visibleList := system.GetVisibleEntities()
	require.Len(t, visibleList, 1)
	assert.Equal(t, visible, visibleList[0].EntityID)
}

func TestRenderingSystem_SortsByZOrder(t *testing.T) {
	r := ecs.NewRegistry()
	system := systems.NewRenderingSystem()
	require.NoError(t, system.Init(r))

	back := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, back, ecs.ComponentTypeTransform, components.TransformComponent{Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, back, ecs.ComponentTypeSprite, components.SpriteComponent{Visible: true, ZOrder: 5}))

	front := r.CreateEntity()
	require.NoError(t, ecs.AddComponent(r, front, ecs.ComponentTypeTransform, components.TransformComponent{Scale: ecs.Vector2{X: 1, Y: 1}}))
	require.NoError(t, ecs.AddComponent(r, front, ecs.ComponentTypeSprite, components.SpriteComponent{Visible: true, ZOrder: -1}))

	require.NoError(t, system.Update(r, 0.016))

	visibleList := system.GetVisibleEntities()
	require.Len(t, visibleList, 2)
	assert.Equal(t, front, visibleList[0].EntityID)
	assert.Equal(t, back, visibleList[1].EntityID)
}
