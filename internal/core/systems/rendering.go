package systems

import (
	"sort"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
)

// RenderingSystem collects entities with both TransformComponent and
// SpriteComponent into a viewport-culled, Z-order-sorted draw list each
// frame. It does not touch any rendering backend itself; cmd/sageconsole
// reads GetVisibleEntities() and draws with ebiten.
type RenderingSystem struct {
	*BaseSystem

	viewport *Rectangle
	camera   *Camera
	visible  []RenderableEntity
}

// Camera represents the rendering camera/viewport.
type Camera struct {
	Position ecs.Vector2
	Zoom     float64
	Rotation float64
}

// RenderableEntity holds the data a renderer needs to draw one entity.
type RenderableEntity struct {
	EntityID  ecs.EntityID
	Transform *components.TransformComponent
	Sprite    *components.SpriteComponent
	ZOrder    int
}

// NewRenderingSystem creates a new rendering system with an identity
// camera and no viewport culling until SetViewport is called.
func NewRenderingSystem() *RenderingSystem {
	return &RenderingSystem{
		BaseSystem: NewBaseSystem(string(ecs.SystemTypeRendering), RenderingSystemPriority),
		camera:     &Camera{Position: ecs.Vector2{X: 0, Y: 0}, Zoom: 1.0, Rotation: 0.0},
	}
}

// GetRequiredComponents returns the components this system operates on.
func (rs *RenderingSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeTransform, ecs.ComponentTypeSprite}
}

// Update rebuilds the visible, Z-ordered draw list for the frame. It does
// not advance simulation state, so it runs regardless of deltaTime.
func (rs *RenderingSystem) Update(r *ecs.Registry, _ float64) error {
	if !rs.IsActive() {
		return nil
	}

	return rs.Track(func() error {
		visible := rs.visible[:0]
		var processed int64
		ecs.ForEach(r, ecs.ComponentTypeSprite, func(entity ecs.EntityID, sprite *components.SpriteComponent) {
			if !sprite.Visible {
				return
			}
			transform, ok := ecs.GetComponent[components.TransformComponent](r, entity, ecs.ComponentTypeTransform)
			if !ok {
				return
			}
			if !rs.isInViewport(transform, sprite) {
				return
			}
			visible = append(visible, RenderableEntity{
				EntityID:  entity,
				Transform: transform,
				Sprite:    sprite,
				ZOrder:    sprite.ZOrder,
			})
			processed++
		})
		rs.sortByZOrder(visible)
		rs.visible = visible
		rs.AddProcessed(processed)
		return nil
	})
}

// GetVisibleEntities returns this frame's culled, Z-ordered draw list.
func (rs *RenderingSystem) GetVisibleEntities() []RenderableEntity {
	return rs.visible
}

// SetViewport sets the rendering viewport dimensions used for culling.
func (rs *RenderingSystem) SetViewport(x, y, width, height float64) {
	rs.viewport = &Rectangle{X: x, Y: y, Width: width, Height: height}
}

// GetViewport returns the current rendering viewport.
func (rs *RenderingSystem) GetViewport() *Rectangle {
	return rs.viewport
}

// SetCamera sets the camera position and properties.
func (rs *RenderingSystem) SetCamera(position ecs.Vector2, zoom, rotation float64) {
	rs.camera.Position = position
	rs.camera.Zoom = zoom
	rs.camera.Rotation = rotation
}

// GetCamera returns the current camera settings.
func (rs *RenderingSystem) GetCamera() *Camera {
	return rs.camera
}

// isInViewport checks if an entity is within the viewport bounds.
func (rs *RenderingSystem) isInViewport(transform *components.TransformComponent, sprite *components.SpriteComponent) bool {
	if rs.viewport == nil {
		return true // No culling if no viewport is set
	}

	spriteWidth := sprite.SourceRect.Max.X - sprite.SourceRect.Min.X
	spriteHeight := sprite.SourceRect.Max.Y - sprite.SourceRect.Min.Y

	entityLeft := transform.Position.X
	entityRight := transform.Position.X + spriteWidth
	entityTop := transform.Position.Y
	entityBottom := transform.Position.Y + spriteHeight

	viewportLeft := rs.viewport.X
	viewportRight := rs.viewport.X + rs.viewport.Width
	viewportTop := rs.viewport.Y
	viewportBottom := rs.viewport.Y + rs.viewport.Height

	return !(entityRight < viewportLeft ||
		entityLeft > viewportRight ||
		entityBottom < viewportTop ||
		entityTop > viewportBottom)
}

// sortByZOrder sorts renderable entities by their Z-order for proper layering.
func (rs *RenderingSystem) sortByZOrder(entities []RenderableEntity) {
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].ZOrder < entities[j].ZOrder
	})
}

// transformToScreen converts world coordinates to screen coordinates using
// the current camera (position offset, then zoom).
func (rs *RenderingSystem) transformToScreen(worldPos ecs.Vector2) ecs.Vector2 {
	screenX := (worldPos.X - rs.camera.Position.X) * rs.camera.Zoom
	screenY := (worldPos.Y - rs.camera.Position.Y) * rs.camera.Zoom
	return ecs.Vector2{X: screenX, Y: screenY}
}
