package ecs

import "fmt"

// System is implemented by every engine subsystem registered with an
// ECSContext (movement, physics, rendering, scripting, ...). Update runs
// once per frame at variable delta time; FixedUpdate runs zero or more
// times per frame at a fixed timestep for deterministic simulation (e.g.
// physics integration). Systems are free to leave FixedUpdate a no-op.
type System interface {
	Init(r *Registry) error
	Update(r *Registry, deltaTime float64) error
	FixedUpdate(r *Registry, fixedDeltaTime float64) error
	Shutdown(r *Registry) error

	IsActive() bool
	SetActive(active bool)

	GetPriority() Priority
	SetPriority(p Priority)

	GetName() string
}

// BaseSystem is an embeddable default implementation of the bookkeeping
// portions of System (active flag, priority, name), leaving Init/Update/
// FixedUpdate/Shutdown to the embedder. Mirrors the source engine's
// ISystem default behavior: FixedUpdate is a no-op unless overridden, and
// priority clamps to [MinPriority, MaxPriority], reported through the warn
// callback set by SetWarnLogger.
type BaseSystem struct {
	name     string
	active   bool
	priority Priority
	warn     func(format string, args ...any)
}

// NewBaseSystem creates a BaseSystem with PriorityNormal and active=true.
func NewBaseSystem(name string) BaseSystem {
	return BaseSystem{
		name:     name,
		active:   true,
		priority: PriorityNormal,
		warn:     func(string, ...any) {},
	}
}

// SetWarnLogger installs the callback used to report a clamped priority.
func (b *BaseSystem) SetWarnLogger(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	b.warn = fn
}

func (b *BaseSystem) Init(*Registry) error                       { return nil }
func (b *BaseSystem) FixedUpdate(*Registry, float64) error        { return nil }
func (b *BaseSystem) Shutdown(*Registry) error                    { return nil }
func (b *BaseSystem) IsActive() bool                              { return b.active }
func (b *BaseSystem) SetActive(active bool)                       { b.active = active }
func (b *BaseSystem) GetPriority() Priority                       { return b.priority }
func (b *BaseSystem) GetName() string                             { return b.name }

// SetPriority clamps p into [MinPriority, MaxPriority], warning if it had
// to.
func (b *BaseSystem) SetPriority(p Priority) {
	if p < MinPriority {
		b.warn("ecs: system %q priority %d below minimum, clamped to %d", b.name, p, MinPriority)
		p = MinPriority
	}
	if p > MaxPriority {
		b.warn("ecs: system %q priority %d above maximum, clamped to %d", b.name, p, MaxPriority)
		p = MaxPriority
	}
	b.priority = p
}

// ==============================================
// ECSContext - owns the Registry and the system pipeline
// ==============================================

// ECSContext bundles a Registry with an ordered, priority-sorted list of
// Systems and drives both the variable-step and fixed-step update loops.
type ECSContext struct {
	registry *Registry
	systems  []System
	warn     func(format string, args ...any)
}

// NewECSContext creates a context wrapping a fresh Registry.
func NewECSContext() *ECSContext {
	ctx := &ECSContext{
		registry: NewRegistry(),
		warn:     func(string, ...any) {},
	}
	ctx.registry.SetWarnLogger(func(format string, args ...any) { ctx.warn(format, args...) })
	return ctx
}

// SetWarnLogger installs the warning sink used by the context and its
// Registry. Systems added via AddSystem do not receive it; a system that
// embeds BaseSystem takes its own through BaseSystem.SetWarnLogger.
func (c *ECSContext) SetWarnLogger(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	c.warn = fn
	c.registry.SetWarnLogger(fn)
}

// Registry returns the owned Registry.
func (c *ECSContext) Registry() *Registry { return c.registry }

// AddSystem initializes sys and appends it, then re-sorts every system by
// priority (ascending: lower priority runs first).
func (c *ECSContext) AddSystem(sys System) error {
	if err := sys.Init(c.registry); err != nil {
		return fmt.Errorf("ecs: init system %q: %w", sys.GetName(), err)
	}
	c.systems = append(c.systems, sys)
	c.ResortSystems()
	return nil
}

// AddSystemAt inserts sys at a specific position without re-sorting,
// for callers that want to pin exact placement regardless of priority.
func (c *ECSContext) AddSystemAt(index int, sys System) error {
	if err := sys.Init(c.registry); err != nil {
		return fmt.Errorf("ecs: init system %q: %w", sys.GetName(), err)
	}
	if index < 0 || index > len(c.systems) {
		index = len(c.systems)
	}
	c.systems = append(c.systems, nil)
	copy(c.systems[index+1:], c.systems[index:])
	c.systems[index] = sys
	return nil
}

// ResortSystems re-sorts the pipeline by ascending priority. Stable, so
// systems sharing a priority keep their relative insertion order.
func (c *ECSContext) ResortSystems() {
	sortSystemsByPriority(c.systems)
}

func sortSystemsByPriority(systems []System) {
	for i := 1; i < len(systems); i++ {
		j := i
		for j > 0 && systems[j-1].GetPriority() > systems[j].GetPriority() {
			systems[j-1], systems[j] = systems[j], systems[j-1]
			j--
		}
	}
}

// Update runs Update on every active system in priority order, then
// processes any pending destructions (a no-op in this immediate-destroy
// registry, kept for symmetry with deferred-destruction engines).
func (c *ECSContext) Update(deltaTime float64) error {
	for _, sys := range c.systems {
		if !sys.IsActive() {
			continue
		}
		if err := sys.Update(c.registry, deltaTime); err != nil {
			return fmt.Errorf("ecs: update system %q: %w", sys.GetName(), err)
		}
	}
	c.registry.ProcessPendingDestructions()
	return nil
}

// FixedUpdate runs FixedUpdate on every active system in priority order.
func (c *ECSContext) FixedUpdate(fixedDeltaTime float64) error {
	for _, sys := range c.systems {
		if !sys.IsActive() {
			continue
		}
		if err := sys.FixedUpdate(c.registry, fixedDeltaTime); err != nil {
			return fmt.Errorf("ecs: fixed update system %q: %w", sys.GetName(), err)
		}
	}
	c.registry.ProcessPendingDestructions()
	return nil
}

// GetSystem returns the first system whose GetName matches name.
func (c *ECSContext) GetSystem(name string) (System, bool) {
	for _, sys := range c.systems {
		if sys.GetName() == name {
			return sys, true
		}
	}
	return nil, false
}

// Systems returns the current pipeline in execution order.
func (c *ECSContext) Systems() []System {
	return c.systems
}

// Shutdown calls Shutdown on every system in pipeline order, collecting
// (not stopping on) individual errors, then clears the Registry.
func (c *ECSContext) Shutdown() error {
	var errs []error
	for _, sys := range c.systems {
		if err := safeShutdown(sys, c.registry); err != nil {
			errs = append(errs, fmt.Errorf("ecs: shutdown system %q: %w", sys.GetName(), err))
		}
	}
	c.systems = nil
	c.registry.Clear()
	if len(errs) > 0 {
		return fmt.Errorf("ecs: %d system(s) failed to shut down cleanly: %v", len(errs), errs)
	}
	return nil
}

func safeShutdown(sys System, r *Registry) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return sys.Shutdown(r)
}
