package systems

import (
	"math"
	"time"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
)

// PhysicsSystem handles physics simulation including collision detection,
// gravity, and drag for entities carrying both a TransformComponent and a
// PhysicsComponent.
type PhysicsSystem struct {
	*BaseSystem

	gravity         ecs.Vector2
	staticColliders []Collider
	collisions      []Collision
	fixedTimeStep   float64
}

// Collider represents a collision shape.
type Collider struct {
	Bounds    Rectangle
	IsTrigger bool
	Material  PhysicsMaterial
}

// PhysicsMaterial defines physics response properties.
type PhysicsMaterial struct {
	Friction    float64
	Restitution float64
	Density     float64
}

// Collision represents a collision event between two entities.
type Collision struct {
	EntityA      ecs.EntityID
	EntityB      ecs.EntityID
	ContactPoint ecs.Vector2
	Normal       ecs.Vector2
	Depth        float64
	Timestamp    int64
}

// NewPhysicsSystem creates a new physics system with default downward
// gravity and a 60Hz fixed timestep.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		BaseSystem:      NewBaseSystem(string(ecs.SystemTypePhysics), PhysicsSystemPriority),
		gravity:         ecs.Vector2{X: 0, Y: 9.8 * 100},
		staticColliders: make([]Collider, 0),
		collisions:      make([]Collision, 0),
		fixedTimeStep:   1.0 / 60.0,
	}
}

// GetRequiredComponents returns the components this system operates on.
func (ps *PhysicsSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeTransform, ecs.ComponentTypePhysics}
}

// Update applies gravity and drag to every non-static physics body, then
// runs broad-phase AABB collision detection against the frame's (already
// movement-integrated) positions.
func (ps *PhysicsSystem) Update(r *ecs.Registry, deltaTime float64) error {
	if !ps.IsActive() {
		return nil
	}

	return ps.Track(func() error {
		ps.ClearCollisions()

		var processed int64
		ecs.ForEach(r, ecs.ComponentTypePhysics, func(entity ecs.EntityID, physics *components.PhysicsComponent) {
			if physics.IsStatic {
				return
			}
			if physics.Gravity {
				ps.applyGravity(physics, deltaTime)
			}
			ps.applyDrag(physics, deltaTime)
			processed++
		})
		ps.AddProcessed(processed)

		ps.detectCollisions(r)
		return nil
	})
}

// SetGravity sets the global gravity vector.
func (ps *PhysicsSystem) SetGravity(gravity ecs.Vector2) {
	ps.gravity = gravity
}

// GetGravity returns the current gravity vector.
func (ps *PhysicsSystem) GetGravity() ecs.Vector2 {
	return ps.gravity
}

// AddStaticCollider adds a static collision shape to the world.
func (ps *PhysicsSystem) AddStaticCollider(bounds Rectangle) {
	ps.staticColliders = append(ps.staticColliders, Collider{
		Bounds:    bounds,
		IsTrigger: false,
		Material:  PhysicsMaterial{Friction: 0.5, Restitution: 0.3, Density: 1.0},
	})
}

// GetStaticColliders returns all static colliders.
func (ps *PhysicsSystem) GetStaticColliders() []Collider {
	return ps.staticColliders
}

// GetCollisions returns collisions detected in the last update.
func (ps *PhysicsSystem) GetCollisions() []Collision {
	return ps.collisions
}

// ClearCollisions clears the collision list.
func (ps *PhysicsSystem) ClearCollisions() {
	ps.collisions = ps.collisions[:0]
}

// SetFixedTimeStep sets the fixed physics timestep used by callers driving
// ECSContext.FixedUpdate.
func (ps *PhysicsSystem) SetFixedTimeStep(timeStep float64) {
	ps.fixedTimeStep = timeStep
}

// GetFixedTimeStep returns the current fixed timestep.
func (ps *PhysicsSystem) GetFixedTimeStep() float64 {
	return ps.fixedTimeStep
}

type physicsBody struct {
	entity ecs.EntityID
	bounds Rectangle
}

// detectCollisions runs O(n^2) broad-phase AABB testing over every entity
// that has both a SpriteComponent (for size) and a PhysicsComponent. Entities
// without a sprite have no known extent and are skipped, matching the
// source engine's reliance on the render bounds for collision shape.
func (ps *PhysicsSystem) detectCollisions(r *ecs.Registry) {
	var bodies []physicsBody
	ecs.ForEach(r, ecs.ComponentTypePhysics, func(entity ecs.EntityID, _ *components.PhysicsComponent) {
		transform, ok := ecs.GetComponent[components.TransformComponent](r, entity, ecs.ComponentTypeTransform)
		if !ok {
			return
		}
		sprite, ok := ecs.GetComponent[components.SpriteComponent](r, entity, ecs.ComponentTypeSprite)
		if !ok {
			return
		}
		width := sprite.SourceRect.Max.X - sprite.SourceRect.Min.X
		height := sprite.SourceRect.Max.Y - sprite.SourceRect.Min.Y
		bodies = append(bodies, physicsBody{
			entity: entity,
			bounds: Rectangle{X: transform.Position.X, Y: transform.Position.Y, Width: width, Height: height},
		})
	})

	now := time.Now().UnixNano()
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if ps.checkAABBCollision(bodies[i].bounds, bodies[j].bounds) {
				ps.collisions = append(ps.collisions, Collision{
					EntityA:   bodies[i].entity,
					EntityB:   bodies[j].entity,
					Timestamp: now,
				})
			}
		}
	}
}

// checkAABBCollision performs Axis-Aligned Bounding Box collision detection.
func (ps *PhysicsSystem) checkAABBCollision(boundsA, boundsB Rectangle) bool {
	return !(boundsA.X+boundsA.Width < boundsB.X ||
		boundsB.X+boundsB.Width < boundsA.X ||
		boundsA.Y+boundsA.Height < boundsB.Y ||
		boundsB.Y+boundsB.Height < boundsA.Y)
}

// resolveCollision applies collision response between two entities.
// TODO: positional correction by penetration depth; currently collisions
// are reported via GetCollisions but not separated.
func (ps *PhysicsSystem) resolveCollision(collision *Collision, r *ecs.Registry) {
	_ = collision
	_ = r
}

func (ps *PhysicsSystem) applyGravity(physics *components.PhysicsComponent, deltaTime float64) {
	if physics.Mass <= 0 || physics.IsStatic {
		return
	}
	physics.Velocity.X += ps.gravity.X * deltaTime
	physics.Velocity.Y += ps.gravity.Y * deltaTime
}

func (ps *PhysicsSystem) applyDrag(physics *components.PhysicsComponent, deltaTime float64) {
	const dragCoeff = 0.98
	physics.Velocity.X *= math.Pow(dragCoeff, deltaTime)
	physics.Velocity.Y *= math.Pow(dragCoeff, deltaTime)
}
