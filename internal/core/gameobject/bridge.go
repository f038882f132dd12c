package gameobject

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
)

// entry tracks which registry a GameObject's entity was created in, so a
// GameObject handed to a different Bridge (a scene reload, typically) gets
// a fresh entity instead of silently reusing a handle from a dead registry.
type entry struct {
	entity   ecs.EntityID
	registry *ecs.Registry
}

// Bridge is the GameObject<->ECS adapter used during the migration from the
// legacy scene-object model to the transform/sprite/physics component set:
// every bound GameObject gets a shadow entity whose components mirror its
// fields, so systems (rendering, physics) can operate on components alone
// while scripts keep addressing the flat GameObject surface.
type Bridge struct {
	mapping map[*GameObject]entry
}

// NewBridge returns an empty Bridge. One Bridge is typically shared by an
// entire scene.
func NewBridge() *Bridge {
	return &Bridge{mapping: make(map[*GameObject]entry)}
}

// EnsureEntity returns obj's shadow entity in r, creating it (with default
// Transform and Sprite components seeded from obj's current fields) on
// first use or after a registry switch. A stale mapping into a different,
// still-live registry is torn down before the new entity is created.
func (b *Bridge) EnsureEntity(r *ecs.Registry, obj *GameObject) ecs.EntityID {
	if e, ok := b.mapping[obj]; ok {
		if e.registry == r && r.ContainsEntity(e.entity) {
			return e.entity
		}
		if e.registry != nil && e.registry != r && e.registry.ContainsEntity(e.entity) {
			e.registry.DestroyEntity(e.entity)
		}
		delete(b.mapping, obj)
	}

	id := r.CreateEntity()

	transform := components.NewTransformComponent()
	transform.Position = ecs.Vector2{X: obj.X, Y: obj.Y}
	transform.Rotation = obj.Angle
	// TransformComponent has no dedicated pixel-size field, so width/height
	// ride in Scale; a GameObject with the default 32x32 size maps to a
	// (32, 32) scale rather than a (1, 1) unit scale.
	transform.Scale = ecs.Vector2{X: obj.Width, Y: obj.Height}
	_ = ecs.AddComponent(r, id, ecs.ComponentTypeTransform, *transform)

	sprite := components.NewSpriteComponent()
	sprite.TextureID = obj.TexturePath
	sprite.Color = colorFromTint(obj)
	sprite.Visible = obj.Visible
	sprite.FlipX = obj.FlipX
	sprite.FlipY = obj.FlipY
	sprite.ZOrder = obj.Layer
	_ = ecs.AddComponent(r, id, ecs.ComponentTypeSprite, *sprite)

	if obj.Physics {
		physics := components.NewPhysicsComponent()
		physics.Velocity = ecs.Vector2{X: obj.SpeedX, Y: obj.SpeedY}
		physics.Gravity = obj.Gravity != 0
		physics.Friction = obj.Friction
		_ = ecs.AddComponent(r, id, ecs.ComponentTypePhysics, *physics)
	}

	b.mapping[obj] = entry{entity: id, registry: r}
	return id
}

// Sync copies obj's current field values onto its shadow entity's
// components, creating the entity first via EnsureEntity if needed.
// Intended to run once per frame after scripts have had a chance to
// mutate the GameObject.
func (b *Bridge) Sync(r *ecs.Registry, obj *GameObject) {
	id := b.EnsureEntity(r, obj)
	if !r.ContainsEntity(id) {
		return
	}

	if t, ok := ecs.GetComponent[components.TransformComponent](r, id, ecs.ComponentTypeTransform); ok {
		t.Position = ecs.Vector2{X: obj.X, Y: obj.Y}
		t.Rotation = obj.Angle
		t.Scale = ecs.Vector2{X: obj.Width, Y: obj.Height}
	}
	if s, ok := ecs.GetComponent[components.SpriteComponent](r, id, ecs.ComponentTypeSprite); ok {
		s.Color = colorFromTint(obj)
		s.Visible = obj.Visible
		s.FlipX = obj.FlipX
		s.FlipY = obj.FlipY
		s.ZOrder = obj.Layer
		if s.TextureID != obj.TexturePath {
			s.TextureID = obj.TexturePath
		}
	}
	if obj.Physics {
		if p, ok := ecs.GetComponent[components.PhysicsComponent](r, id, ecs.ComponentTypePhysics); ok {
			p.Velocity = ecs.Vector2{X: obj.SpeedX, Y: obj.SpeedY}
			p.Gravity = obj.Gravity != 0
			p.Friction = obj.Friction
		} else {
			physics := components.NewPhysicsComponent()
			physics.Velocity = ecs.Vector2{X: obj.SpeedX, Y: obj.SpeedY}
			physics.Gravity = obj.Gravity != 0
			physics.Friction = obj.Friction
			_ = ecs.AddComponent(r, id, ecs.ComponentTypePhysics, *physics)
		}
	}
}

// Remove destroys obj's shadow entity, if any, and forgets the mapping.
func (b *Bridge) Remove(obj *GameObject) {
	e, ok := b.mapping[obj]
	if !ok {
		return
	}
	if e.registry != nil && e.registry.ContainsEntity(e.entity) {
		e.registry.DestroyEntity(e.entity)
	}
	delete(b.mapping, obj)
}

// colorFromTint applies obj.Alpha on top of obj.Color, mirroring the
// original bridge's "GameObject.alpha overrides the tint's own alpha
// channel" rule.
func colorFromTint(obj *GameObject) ecs.Color {
	c := ParseColor(obj.Color)
	c.A = uint8(clamp01(obj.Alpha) * 255)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseColor resolves a color spelled as a colornames.Map entry (e.g.
// "crimson"), a "#rrggbb"/"#rrggbbaa" hex literal, or a "r,g,b[,a]"
// comma-separated byte list. An unrecognized spelling falls back to opaque
// white rather than erroring, matching the engine's tolerant-scripting
// propagation policy.
func ParseColor(s string) ecs.Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return ecs.Color{R: 255, G: 255, B: 255, A: 255}
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ecs.Color{R: named.R, G: named.G, B: named.B, A: named.A}
	}
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHexColor(s); ok {
			return c
		}
	}
	if strings.Contains(s, ",") {
		if c, ok := parseCSVColor(s); ok {
			return c
		}
	}
	return ecs.Color{R: 255, G: 255, B: 255, A: 255}
}

func parseHexColor(s string) (ecs.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return ecs.Color{}, false
	}
	r, errR := strconv.ParseUint(s[0:2], 16, 8)
	g, errG := strconv.ParseUint(s[2:4], 16, 8)
	bl, errB := strconv.ParseUint(s[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return ecs.Color{}, false
	}
	a := uint64(255)
	if len(s) == 8 {
		parsed, errA := strconv.ParseUint(s[6:8], 16, 8)
		if errA != nil {
			return ecs.Color{}, false
		}
		a = parsed
	}
	return ecs.Color{R: uint8(r), G: uint8(g), B: uint8(bl), A: uint8(a)}, true
}

func parseCSVColor(s string) (ecs.Color, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return ecs.Color{}, false
	}
	vals := make([]uint8, 4)
	vals[3] = 255
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return ecs.Color{}, false
		}
		vals[i] = uint8(n)
	}
	return ecs.Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, true
}
