// Package gameobject implements the legacy-style scene record that LogCon
// scripts bind to and that the ECS bridge mirrors onto Transform/Sprite/
// Physics components, bridging the engine's transform-component-system core
// and its pre-ECS scripting surface during migration.
package gameobject

import (
	"strconv"
	"sync/atomic"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/scripting/logcon"
)

var nextID uint64

// GameObject is a flat, named bag of the legacy fields LogCon scripts read
// and write directly (x, y, width, height, angle, layer, visible, physics,
// alpha, speedX, speedY, gravity, friction) plus the visual identity
// (texture path, tint color, flip flags) the ECS bridge needs to populate a
// SpriteComponent. It implements logcon.EntityHost so the interpreter can
// resolve bare identifiers against it without importing this package.
type GameObject struct {
	Name string
	id   string

	X, Y          float64
	Width, Height float64
	Angle         float64
	Layer         int
	Visible       bool
	Physics       bool
	Alpha         float64
	SpeedX, SpeedY float64
	Gravity       float64
	Friction      float64
	Grounded      bool

	// TexturePath and Color feed the ECS bridge's SpriteComponent sync;
	// Color accepts any spelling bridge.ParseColor understands (named,
	// hex, or "r,g,b,a").
	TexturePath string
	Color       string
	FlipX       bool
	FlipY       bool

	onCreate  func()
	onUpdate  func(dt float64)
	onDestroy func()
}

// New returns a GameObject with the original engine's defaults: full size,
// visible, opaque white, no physics.
func New(name string) *GameObject {
	id := atomic.AddUint64(&nextID, 1)
	return &GameObject{
		Name:    name,
		id:      name + "#" + strconv.FormatUint(id, 10),
		Width:   32,
		Height:  32,
		Visible: true,
		Alpha:   1,
		Color:   "white",
	}
}

func (g *GameObject) ID() string { return g.id }

// OnCreate, OnUpdate, and OnDestroy invoke whatever lifecycle hooks are
// currently installed (native or script-chained), doing nothing if none
// have been bound yet.
func (g *GameObject) OnCreate() {
	if g.onCreate != nil {
		g.onCreate()
	}
}

func (g *GameObject) OnUpdate(dt float64) {
	if g.onUpdate != nil {
		g.onUpdate(dt)
	}
}

func (g *GameObject) OnDestroy() {
	if g.onDestroy != nil {
		g.onDestroy()
	}
}

// InstallLifecycleHooks implements logcon.EntityHost: it swaps in the
// interpreter's own create/update/destroy callbacks and hands back whatever
// was installed before, so NewRuntimeEntityInstance can chain to it.
func (g *GameObject) InstallLifecycleHooks(onCreate func(), onUpdate func(float64), onDestroy func()) (func(), func(float64), func()) {
	prevCreate, prevUpdate, prevDestroy := g.onCreate, g.onUpdate, g.onDestroy
	g.onCreate, g.onUpdate, g.onDestroy = onCreate, onUpdate, onDestroy
	return prevCreate, prevUpdate, prevDestroy
}

// GetField implements logcon.EntityHost, exposing the fixed set of
// script-visible fields. An unrecognized name reports ok=false so the
// interpreter's identifier resolution can fall through to treating it as
// an opaque string.
func (g *GameObject) GetField(name string) (logcon.Value, bool) {
	switch name {
	case "x":
		return logcon.Number(g.X), true
	case "y":
		return logcon.Number(g.Y), true
	case "width":
		return logcon.Number(g.Width), true
	case "height":
		return logcon.Number(g.Height), true
	case "angle":
		return logcon.Number(g.Angle), true
	case "layer":
		return logcon.Number(float64(g.Layer)), true
	case "visible":
		return logcon.Bool(g.Visible), true
	case "physics":
		return logcon.Bool(g.Physics), true
	case "alpha":
		return logcon.Number(g.Alpha), true
	case "speedX":
		return logcon.Number(g.SpeedX), true
	case "speedY":
		return logcon.Number(g.SpeedY), true
	case "gravity":
		return logcon.Number(g.Gravity), true
	case "friction":
		return logcon.Number(g.Friction), true
	case "grounded":
		return logcon.Bool(g.Grounded), true
	case "name":
		return logcon.String(g.Name), true
	case "color":
		return logcon.String(g.Color), true
	case "texturePath":
		return logcon.String(g.TexturePath), true
	case "flipX":
		return logcon.Bool(g.FlipX), true
	case "flipY":
		return logcon.Bool(g.FlipY), true
	default:
		return logcon.Unit, false
	}
}

// SetField implements logcon.EntityHost. Writes to an unrecognized name
// are a no-op (ok=false), matching the propagation policy: scripts never
// crash the host over a typo'd field name.
func (g *GameObject) SetField(name string, v logcon.Value) bool {
	switch name {
	case "x":
		g.X = v.AsNumber()
	case "y":
		g.Y = v.AsNumber()
	case "width":
		g.Width = v.AsNumber()
	case "height":
		g.Height = v.AsNumber()
	case "angle":
		g.Angle = v.AsNumber()
	case "layer":
		g.Layer = int(v.AsNumber())
	case "visible":
		g.Visible = v.AsBool()
	case "physics":
		g.Physics = v.AsBool()
	case "alpha":
		g.Alpha = v.AsNumber()
	case "speedX":
		g.SpeedX = v.AsNumber()
	case "speedY":
		g.SpeedY = v.AsNumber()
	case "gravity":
		g.Gravity = v.AsNumber()
	case "friction":
		g.Friction = v.AsNumber()
	case "grounded":
		g.Grounded = v.AsBool()
	case "color":
		g.Color = v.AsString()
	case "texturePath":
		g.TexturePath = v.AsString()
	case "flipX":
		g.FlipX = v.AsBool()
	case "flipY":
		g.FlipY = v.AsBool()
	default:
		return false
	}
	return true
}
