// Package core wires the ECS registry, its systems, the GameObject/ECS
// bridge, and the LogCon interpreter into a single ebiten.Game loop.
package core

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/gameobject"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/logx"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/systems"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/scripting/logcon"
)

// scriptedEntity pairs a scene's GameObject with the RuntimeEntityInstance
// bound to it, so Game.Update can drive both the script and its ECS
// shadow each frame.
type scriptedEntity struct {
	object *gameobject.GameObject
	inst   *logcon.RuntimeEntityInstance
}

// Game owns one scene's worth of engine state: the ECS registry and its
// systems, the GameObject<->ECS bridge, the LogCon interpreter and
// compiled scripts bound to it, and the pressed-key set scripts query via
// iskeypressed().
type Game struct {
	registry  *ecs.Registry
	bridge    *gameobject.Bridge
	movement  *systems.MovementSystem
	physics   *systems.PhysicsSystem
	rendering *systems.RenderingSystem
	audio     *systems.AudioSystem

	compiler *logcon.ScriptCompiler
	funcs    *logcon.FunctionRegistry
	interp   *logcon.Interpreter

	entities []*scriptedEntity
	pressed  map[ebiten.Key]bool

	whitePixel *ebiten.Image
	logger     *logx.Logger
	frame      int64
}

// NewGame assembles a fresh Game: an empty registry with the built-in
// component dependency rules installed, the movement/physics/rendering/
// audio systems at their defaults, and a LogCon interpreter wired to a
// fresh builtin function registry.
func NewGame(logger *logx.Logger) *Game {
	if logger == nil {
		logger = logx.Default("game")
	}

	registry := ecs.NewRegistry()
	registry.SetWarnLogger(logger.Warn)
	components.RegisterDependencies(registry)

	funcs := logcon.NewFunctionRegistry()
	logcon.RegisterBuiltins(funcs)
	interp := logcon.NewInterpreter(funcs)
	interp.Warn = logger.Warn

	g := &Game{
		registry:   registry,
		bridge:     gameobject.NewBridge(),
		movement:   systems.NewMovementSystem(),
		physics:    systems.NewPhysicsSystem(),
		rendering:  systems.NewRenderingSystem(),
		audio:      systems.NewAudioSystem(),
		compiler:   logcon.NewScriptCompiler(),
		funcs:      funcs,
		interp:     interp,
		pressed:    make(map[ebiten.Key]bool),
		whitePixel: ebiten.NewImage(1, 1),
		logger:     logger,
	}
	g.whitePixel.Fill(color.White)
	interp.KeyPressed = g.isKeyPressed

	onSystemError := func(err error) { logger.Errorf("system error: %v", err) }
	g.movement.SetErrorHandler(onSystemError)
	g.physics.SetErrorHandler(onSystemError)
	g.rendering.SetErrorHandler(onSystemError)
	g.audio.SetErrorHandler(onSystemError)

	return g
}

// Registry exposes the ECS registry for callers (tests, tooling) that need
// direct component access alongside the scripted scene.
func (g *Game) Registry() *ecs.Registry { return g.registry }

// Spawn binds a compiled entity declaration to obj, registering it for
// per-frame updates and creating its ECS shadow entity immediately. The
// returned RuntimeEntityInstance has already run its "create" event.
func (g *Game) Spawn(obj *gameobject.GameObject, decl *logcon.EntityDecl) *logcon.RuntimeEntityInstance {
	inst := logcon.NewRuntimeEntityInstance(g.interp, obj, decl)
	g.bridge.EnsureEntity(g.registry, obj)
	obj.OnCreate()
	g.entities = append(g.entities, &scriptedEntity{object: obj, inst: inst})
	return inst
}

// LoadScript compiles source (via g.compiler) and returns it, ready to be
// passed to Spawn for each entity kind it declares.
func (g *Game) LoadScript(path, source string) (*logcon.CompiledScript, error) {
	return g.compiler.CompileSource(path, source)
}

func (g *Game) isKeyPressed(name string) bool {
	key, ok := keyByName[name]
	if !ok {
		return false
	}
	return g.pressed[key]
}

// Update advances one simulation tick: script update hooks run first (they
// may move entities, spawn/destroy, or toggle flags), then each scripted
// object is synced onto its ECS shadow, and finally the ECS systems run in
// their usual order (movement integrates velocity into position, physics
// applies gravity/collision, rendering rebuilds the draw list, audio
// advances playing sounds).
func (g *Game) Update() error {
	g.trackKeys()
	g.frame++
	if g.frame%300 == 0 {
		m := g.registry.Metrics()
		g.logger.Debugf("frame %d: %d entities, %d components", g.frame, m.EntityCount, m.ComponentCount)
	}

	const dt = 1.0 / 60.0
	for _, se := range g.entities {
		se.object.OnUpdate(dt)
		g.bridge.Sync(g.registry, se.object)
	}

	if err := g.movement.Update(g.registry, dt); err != nil {
		return err
	}
	if err := g.physics.Update(g.registry, dt); err != nil {
		return err
	}
	if err := g.rendering.Update(g.registry, dt); err != nil {
		return err
	}
	return g.audio.Update(g.registry, dt)
}

// Draw paints every visible, Z-ordered entity as a tinted rectangle sized
// and placed per its TransformComponent/SpriteComponent. There is no
// texture atlas in this core, so every sprite renders as a solid-color
// block; a host application wanting real art supplies its own renderer
// against the same RenderingSystem.GetVisibleEntities() feed.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 20, B: 30, A: 255})

	for _, re := range g.rendering.GetVisibleEntities() {
		if re.Sprite == nil || re.Transform == nil || !re.Sprite.Visible {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		w, h := re.Transform.Scale.X, re.Transform.Scale.Y
		if w <= 0 {
			w = 1
		}
		if h <= 0 {
			h = 1
		}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(re.Transform.Position.X, re.Transform.Position.Y)
		c := re.Sprite.Color
		op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
		screen.DrawImage(g.whitePixel, op)
	}

	ebitenutil.DebugPrint(screen, "SAGE Engine console")
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return 1280, 720
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("SAGE Engine console")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}

func (g *Game) trackKeys() {
	for name, key := range keyByName {
		g.pressed[key] = ebiten.IsKeyPressed(key)
		_ = name
	}
}

// keyByName maps the lowercase key names LogCon's iskeypressed() builtin
// accepts onto ebiten's key constants. Extend as scripts need more keys.
var keyByName = map[string]ebiten.Key{
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"space": ebiten.KeySpace,
	"enter": ebiten.KeyEnter,
	"z":     ebiten.KeyZ,
	"x":     ebiten.KeyX,
}
