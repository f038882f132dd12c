package systems

import (
	"math"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
)

// MovementSystem handles entity movement and position updates.
// It processes entities with TransformComponent and PhysicsComponent to
// update positions based on velocity, acceleration, and boundary
// constraints.
type MovementSystem struct {
	*BaseSystem

	maxSpeed float64
	boundary *Rectangle
}

// Rectangle represents a bounding rectangle for movement constraints.
type Rectangle struct {
	X, Y, Width, Height float64
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{
		BaseSystem: NewBaseSystem(string(ecs.SystemTypeMovement), MovementSystemPriority),
		maxSpeed:   -1, // No limit by default
	}
}

// GetRequiredComponents returns the components this system operates on.
func (ms *MovementSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeTransform, ecs.ComponentTypePhysics}
}

// Update integrates acceleration into velocity, velocity into position,
// then clamps speed and position for every entity carrying both a
// TransformComponent and a PhysicsComponent.
func (ms *MovementSystem) Update(r *ecs.Registry, deltaTime float64) error {
	if !ms.IsActive() {
		return nil
	}

	return ms.Track(func() error {
		var processed int64
		ecs.ForEach(r, ecs.ComponentTypePhysics, func(entity ecs.EntityID, physics *components.PhysicsComponent) {
			transform, ok := ecs.GetComponent[components.TransformComponent](r, entity, ecs.ComponentTypeTransform)
			if !ok {
				return
			}
			if physics.IsStatic {
				return
			}

			physics.Velocity.X += physics.Acceleration.X * deltaTime
			physics.Velocity.Y += physics.Acceleration.Y * deltaTime

			ms.limitSpeed(&physics.Velocity)

			transform.Position.X += physics.Velocity.X * deltaTime
			transform.Position.Y += physics.Velocity.Y * deltaTime

			ms.clampToBoundary(&transform.Position)
			processed++
		})
		ms.AddProcessed(processed)
		return nil
	})
}

// SetMaxSpeed sets the maximum movement speed limit. A non-positive value
// disables the limit.
func (ms *MovementSystem) SetMaxSpeed(maxSpeed float64) {
	ms.maxSpeed = maxSpeed
}

// GetMaxSpeed returns the current maximum speed limit.
func (ms *MovementSystem) GetMaxSpeed() float64 {
	return ms.maxSpeed
}

// SetBoundary sets movement boundary constraints.
func (ms *MovementSystem) SetBoundary(x, y, width, height float64) {
	ms.boundary = &Rectangle{X: x, Y: y, Width: width, Height: height}
}

// GetBoundary returns the current movement boundary, or nil if unset.
func (ms *MovementSystem) GetBoundary() *Rectangle {
	return ms.boundary
}

func (ms *MovementSystem) limitSpeed(velocity *ecs.Vector2) {
	if ms.maxSpeed <= 0 {
		return
	}
	speed := math.Sqrt(velocity.X*velocity.X + velocity.Y*velocity.Y)
	if speed > ms.maxSpeed {
		scale := ms.maxSpeed / speed
		velocity.X *= scale
		velocity.Y *= scale
	}
}

func (ms *MovementSystem) clampToBoundary(position *ecs.Vector2) {
	if ms.boundary == nil {
		return
	}
	if position.X < ms.boundary.X {
		position.X = ms.boundary.X
	} else if position.X > ms.boundary.X+ms.boundary.Width {
		position.X = ms.boundary.X + ms.boundary.Width
	}
	if position.Y < ms.boundary.Y {
		position.Y = ms.boundary.Y
	} else if position.Y > ms.boundary.Y+ms.boundary.Height {
		position.Y = ms.boundary.Y + ms.boundary.Height
	}
}
