package ecs

import "time"

// DependencyRule auto-inserts a default value for a required component
// whenever a dependent component is added to an entity that lacks it. For
// example a PhysicsComponent might declare a dependency on TransformComponent
// so that adding physics to a bare entity always leaves it transformable.
type DependencyRule struct {
	Component     ComponentType
	Requires      ComponentType
	EnsureDefault func(r *Registry, e EntityID)
}

// Registry owns entity identity (ids, generations, free-list) and every
// component pool. It is the central object handed to systems each frame.
//
// The core is single-threaded cooperative (see SPEC_FULL.md §5); Registry
// does not synchronize internally, matching that scheduling model.
type Registry struct {
	pools     map[ComponentType]componentPool
	poolsAny  map[ComponentType]any
	poolOrder []ComponentType // insertion order, for deterministic pool fan-out

	entities    []EntityID
	generations []uint32
	freeIDs     []uint32
	entitySet   map[uint32]struct{}
	nextIndex   uint32

	dependencies map[ComponentType]DependencyRule

	warn func(format string, args ...any)
}

// NewRegistry creates an empty registry. nextIndex starts at 1 so that
// InvalidEntityID (0) never collides with a real handle.
func NewRegistry() *Registry {
	return &Registry{
		pools:        make(map[ComponentType]componentPool),
		poolsAny:     make(map[ComponentType]any),
		entitySet:    make(map[uint32]struct{}),
		dependencies: make(map[ComponentType]DependencyRule),
		nextIndex:    1,
		warn:         func(string, ...any) {},
	}
}

// SetWarnLogger installs a callback invoked for recoverable, logged-and-
// ignored error conditions (stale handle writes, dependency auto-insert,
// destroy-of-invalid-handle). Defaults to a no-op.
func (r *Registry) SetWarnLogger(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	r.warn = fn
}

// RegisterDependency installs a DependencyRule consulted by AddComponent.
func (r *Registry) RegisterDependency(rule DependencyRule) {
	r.dependencies[rule.Component] = rule
}

// ==============================================
// Entity lifecycle
// ==============================================

// CreateEntity allocates a new handle: reuses a freed index (bumping its
// generation) or appends a fresh one.
func (r *Registry) CreateEntity() EntityID {
	var index uint32
	if n := len(r.freeIDs); n > 0 {
		index = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
	} else {
		index = r.nextIndex
		r.nextIndex++
	}

	for int(index) >= len(r.generations) {
		r.generations = append(r.generations, 0)
	}
	r.generations[index]++
	generation := r.generations[index]

	handle := MakeEntity(index, generation)
	r.entitySet[index] = struct{}{}
	r.entities = append(r.entities, handle)
	return handle
}

// ContainsEntity reports whether handle e is both structurally valid and
// matches the registry's current generation for its index.
func (r *Registry) ContainsEntity(e EntityID) bool {
	if !IsValidEntity(e) {
		return false
	}
	index := GetEntityIndex(e)
	if int(index) >= len(r.generations) || r.generations[index] != GetEntityGeneration(e) {
		return false
	}
	_, live := r.entitySet[index]
	return live
}

// DestroyEntity removes e immediately: every component pool drops its
// entry for e, the index returns to the free list, and the handle becomes
// permanently stale (its generation will never be reissued for that
// index... until the index is recycled, at which point the generation is
// bumped again, so old handles never compare live; see §4.1).
//
// Destroying an invalid or already-destroyed handle is a no-op, logged as
// a warning.
func (r *Registry) DestroyEntity(e EntityID) {
	if !r.ContainsEntity(e) {
		r.warn("ecs: DestroyEntity called on invalid or stale handle %d", e)
		return
	}
	index := GetEntityIndex(e)

	for _, ct := range r.poolOrder {
		r.pools[ct].Remove(e)
	}

	for i, live := range r.entities {
		if live == e {
			last := len(r.entities) - 1
			r.entities[i] = r.entities[last]
			r.entities = r.entities[:last]
			break
		}
	}
	delete(r.entitySet, index)
	r.freeIDs = append(r.freeIDs, index)
}

// DestroyEntities destroys a batch of handles in order.
func (r *Registry) DestroyEntities(handles []EntityID) {
	for _, h := range handles {
		r.DestroyEntity(h)
	}
}

// ProcessPendingDestructions exists for API fidelity with engines that
// support deferred destruction; this registry destroys entities
// immediately (see SPEC_FULL.md §8 open-question 1), so this is a no-op.
func (r *Registry) ProcessPendingDestructions() {}

// Reserve pre-grows the entity bookkeeping slices to reduce reallocation
// during bulk entity creation.
func (r *Registry) Reserve(capacity int) {
	if cap(r.entities) < capacity {
		grown := make([]EntityID, len(r.entities), capacity)
		copy(grown, r.entities)
		r.entities = grown
	}
}

// GetEntities returns the live entity handles. Iteration order is
// unspecified; callers must not depend on it (§4.1).
func (r *Registry) GetEntities() []EntityID {
	return r.entities
}

// GetEntityCount returns the number of live entities.
func (r *Registry) GetEntityCount() int {
	return len(r.entities)
}

// Clear removes every entity, every component pool, and resets id
// allocation to its initial state.
func (r *Registry) Clear() {
	for _, ct := range r.poolOrder {
		r.pools[ct].Clear()
	}
	r.entities = nil
	r.generations = nil
	r.freeIDs = nil
	r.entitySet = make(map[uint32]struct{})
	r.nextIndex = 1
}

// SafeClear wraps Clear, recovering from any panic raised by a pool's
// Clear implementation. Returns false (registry state may be partial, but
// consistent) if a panic was recovered.
func (r *Registry) SafeClear() (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.warn("ecs: SafeClear recovered panic: %v", rec)
			ok = false
		}
	}()
	r.Clear()
	return true
}

// ShrinkComponentPools calls Shrink on every registered pool.
func (r *Registry) ShrinkComponentPools() {
	for _, ct := range r.poolOrder {
		r.pools[ct].Shrink()
	}
}

// ==============================================
// Component pool access (generic, package-level functions)
// ==============================================

// getOrCreatePool returns the typed pool for ct, creating and registering
// one (both in the type-erased fan-out map and the typed lookup map) if
// this is the first use of that component type.
func getOrCreatePool[T any](r *Registry, ct ComponentType) *ComponentPool[T] {
	if existing, ok := r.poolsAny[ct]; ok {
		return existing.(*ComponentPool[T])
	}
	pool := NewComponentPool[T]()
	r.poolsAny[ct] = pool
	r.pools[ct] = pool
	r.poolOrder = append(r.poolOrder, ct)
	return pool
}

// AddComponent attaches value to e under component type ct. A stale or
// invalid handle is an error; a registered DependencyRule for ct whose
// required component is missing auto-inserts a default value (warning
// logged).
func AddComponent[T any](r *Registry, e EntityID, ct ComponentType, value T) error {
	if !r.ContainsEntity(e) {
		return InvalidEntityIDErr(e).WithComponent(ct).WithDetails("AddComponent on stale or invalid handle")
	}

	if rule, ok := r.dependencies[ct]; ok && rule.Requires != "" {
		if dep, depOK := r.pools[rule.Requires]; !depOK || !dep.Has(e) {
			if rule.EnsureDefault != nil {
				r.warn("ecs: entity %d missing dependency %q for component %q, inserting default", e, rule.Requires, ct)
				rule.EnsureDefault(r, e)
			}
		}
	}

	pool := getOrCreatePool[T](r, ct)
	pool.Set(e, value)
	return nil
}

// GetComponent returns a pointer to e's component of type T under ct, or
// nil/false if e is stale or has none.
func GetComponent[T any](r *Registry, e EntityID, ct ComponentType) (*T, bool) {
	if !r.ContainsEntity(e) {
		return nil, false
	}
	any, ok := r.poolsAny[ct]
	if !ok {
		return nil, false
	}
	return any.(*ComponentPool[T]).Get(e)
}

// HasComponent reports whether e has a component under ct.
func (r *Registry) HasComponent(e EntityID, ct ComponentType) bool {
	if !r.ContainsEntity(e) {
		return false
	}
	pool, ok := r.pools[ct]
	if !ok {
		return false
	}
	return pool.Has(e)
}

// RemoveComponent removes e's component under ct, a no-op if absent or e
// is stale.
func (r *Registry) RemoveComponent(e EntityID, ct ComponentType) {
	if !r.ContainsEntity(e) {
		return
	}
	if pool, ok := r.pools[ct]; ok {
		pool.Remove(e)
	}
}

// GetComponentCount returns the number of live components of type ct.
func (r *Registry) GetComponentCount(ct ComponentType) int {
	if pool, ok := r.pools[ct]; ok {
		return pool.Len()
	}
	return 0
}

// ComponentStorageStats reports sparse/dense backing-array capacities for
// ct's pool, for memory-optimization tooling. Zero value if ct has never
// had a pool created for it.
func (r *Registry) ComponentStorageStats(ct ComponentType) StorageStats {
	pool, ok := r.pools[ct]
	if !ok {
		return StorageStats{ComponentType: ct}
	}
	sparse, dense := pool.Capacities()
	return StorageStats{
		ComponentType:  ct,
		ComponentCount: pool.Len(),
		SparseCapacity: sparse,
		DenseCapacity:  dense,
	}
}

// Metrics snapshots registry-wide performance counters: live entity count,
// total component count across every registered pool, and the sampling
// timestamp. SystemCount and frame/update timings are left at zero here;
// a host assembling a full PerformanceMetrics fills those in from its own
// ECSContext/BaseSystem bookkeeping.
func (r *Registry) Metrics() PerformanceMetrics {
	componentCount := 0
	for _, ct := range r.poolOrder {
		componentCount += r.pools[ct].Len()
	}
	return PerformanceMetrics{
		EntityCount:    len(r.entities),
		ComponentCount: componentCount,
		Timestamp:      time.Now(),
	}
}

// GetAllWith returns a snapshot slice of (entity, component) pairs for
// every live entity currently holding a component of type T under ct.
func GetAllWith[T any](r *Registry, ct ComponentType) []EntityComponentPair[T] {
	any, ok := r.poolsAny[ct]
	if !ok {
		return nil
	}
	pool := any.(*ComponentPool[T])
	out := make([]EntityComponentPair[T], 0, pool.Len())
	for i, e := range pool.Entities() {
		if r.ContainsEntity(e) {
			out = append(out, EntityComponentPair[T]{Entity: e, Component: &pool.components[i]})
		}
	}
	return out
}

// EntityComponentPair pairs an entity with a pointer to its component.
type EntityComponentPair[T any] struct {
	Entity    EntityID
	Component *T
}

// ForEach snapshots the live entities currently in pool ct, then invokes
// fn for each, re-validating liveness immediately before every call. This
// is what makes removing (or destroying) entities mid-iteration safe: a
// removal only prevents a callback for an index not yet visited, and never
// invokes fn with a stale component pointer (§4.2, §5).
func ForEach[T any](r *Registry, ct ComponentType, fn func(e EntityID, component *T)) {
	any, ok := r.poolsAny[ct]
	if !ok {
		return
	}
	pool := any.(*ComponentPool[T])
	snapshot := make([]EntityID, len(pool.Entities()))
	copy(snapshot, pool.Entities())

	for _, e := range snapshot {
		component, ok := pool.Get(e)
		if !ok {
			continue
		}
		fn(e, component)
	}
}
