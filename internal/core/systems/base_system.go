// Package systems provides the core game systems for the ECS framework.
//
// This package implements the basic systems required for game functionality:
// Movement, Physics, Rendering, and Audio systems. All systems implement
// ecs.System and share BaseSystem for metrics collection, active-state
// tracking, and error handling.
package systems

import (
	"sync"
	"time"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
)

// System priority constants for the built-in systems. Lower values run
// first (ecs.Priority is ascending-sorted), so input/movement settle
// before physics integrates, which settles before rendering/audio observe
// the frame's final state.
const (
	MovementSystemPriority  ecs.Priority = -50
	PhysicsSystemPriority   ecs.Priority = -25
	RenderingSystemPriority ecs.Priority = 75
	AudioSystemPriority     ecs.Priority = 50
)

// SystemMetrics tracks per-frame execution statistics for a single system.
type SystemMetrics struct {
	ExecutionCount    int64
	TotalTime         int64 // nanoseconds
	AverageTime       int64
	MaxTime           int64
	MinTime           int64
	ErrorCount        int64
	LastExecution     int64 // UnixNano
	EntitiesProcessed int64
}

// BaseSystem embeds ecs.BaseSystem (active flag, priority, name) and adds
// metrics collection plus a pluggable error handler, mirroring how the
// source engine's systems report health back to their owner.
type BaseSystem struct {
	ecs.BaseSystem

	mutex   sync.RWMutex
	metrics SystemMetrics

	errorHandler func(error)
	lastError    error
}

// NewBaseSystem creates a BaseSystem named name at the given priority.
func NewBaseSystem(name string, priority ecs.Priority) *BaseSystem {
	bs := &BaseSystem{BaseSystem: ecs.NewBaseSystem(name)}
	bs.BaseSystem.SetPriority(priority)
	return bs
}

// Track wraps a system's per-frame work, recording execution time and
// routing any returned error through handleError before propagating it.
// Embedders call this from their Update/FixedUpdate implementation:
//
//	func (s *MovementSystem) Update(r *ecs.Registry, dt float64) error {
//	    return s.Track(func() error { ...; return nil })
//	}
func (bs *BaseSystem) Track(work func() error) error {
	start := time.Now()
	err := work()

	bs.mutex.Lock()
	elapsed := time.Since(start).Nanoseconds()
	bs.metrics.ExecutionCount++
	bs.metrics.TotalTime += elapsed
	bs.metrics.LastExecution = start.UnixNano()
	if bs.metrics.ExecutionCount > 0 {
		bs.metrics.AverageTime = bs.metrics.TotalTime / bs.metrics.ExecutionCount
	}
	if elapsed > bs.metrics.MaxTime {
		bs.metrics.MaxTime = elapsed
	}
	if bs.metrics.MinTime == 0 || elapsed < bs.metrics.MinTime {
		bs.metrics.MinTime = elapsed
	}
	if err != nil {
		bs.metrics.ErrorCount++
		bs.lastError = err
	}
	bs.mutex.Unlock()

	if err != nil && bs.errorHandler != nil {
		bs.errorHandler(err)
	}
	return err
}

// AddProcessed increments the entities-processed counter for this frame's
// metrics snapshot.
func (bs *BaseSystem) AddProcessed(n int64) {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()
	bs.metrics.EntitiesProcessed += n
}

// SetErrorHandler installs a callback invoked whenever Track observes an
// error.
func (bs *BaseSystem) SetErrorHandler(handler func(error)) {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()
	bs.errorHandler = handler
}

// GetLastError returns the most recent error recorded by Track.
func (bs *BaseSystem) GetLastError() error {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()
	return bs.lastError
}

// GetMetrics returns a copy of the system's current metrics snapshot.
func (bs *BaseSystem) GetMetrics() SystemMetrics {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()
	return bs.metrics
}

// ResetMetrics clears all collected metrics.
func (bs *BaseSystem) ResetMetrics() {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()
	bs.metrics = SystemMetrics{LastExecution: time.Now().UnixNano()}
}
