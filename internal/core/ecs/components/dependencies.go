package components

import "github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"

// RegisterDependencies installs the built-in component dependency rules on
// r: a PhysicsComponent requires a TransformComponent (physics without a
// place to apply its velocity makes no sense), and an AIComponent requires
// a TransformComponent for the same reason its behaviors reference
// position. Call once per Registry, typically right after NewRegistry.
func RegisterDependencies(r *ecs.Registry) {
	r.RegisterDependency(ecs.DependencyRule{
		Component: ecs.ComponentTypePhysics,
		Requires:  ecs.ComponentTypeTransform,
		EnsureDefault: func(r *ecs.Registry, e ecs.EntityID) {
			_ = ecs.AddComponent(r, e, ecs.ComponentTypeTransform, *NewTransformComponent())
		},
	})
	r.RegisterDependency(ecs.DependencyRule{
		Component: ecs.ComponentTypeAI,
		Requires:  ecs.ComponentTypeTransform,
		EnsureDefault: func(r *ecs.Registry, e ecs.EntityID) {
			_ = ecs.AddComponent(r, e, ecs.ComponentTypeTransform, *NewTransformComponent())
		},
	})
}
