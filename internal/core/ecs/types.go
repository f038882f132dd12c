// Package ecs provides the core Entity Component System framework for the
// engine: entity identity with generational recycling, sparse-set component
// pools, cache-aligned archetype chunks, and priority-ordered systems.
//
// The framework targets 2D game development, aiming for 10,000+ live
// entities at 60 FPS with memory-efficient component storage.
package ecs

import (
	"time"
)

// ==============================================
// Basic Types
// ==============================================

// EntityID is an opaque 64-bit entity handle packing a 32-bit index in the
// low bits and a 32-bit generation in the high bits. Use MakeEntity,
// GetEntityIndex, and GetEntityGeneration rather than manipulating the raw
// value; the packing is an implementation detail, not a public contract.
type EntityID uint64

// ComponentType represents the type of a component.
// String-based for human readability and debugging ease.
type ComponentType string

// SystemType represents the type of a system.
// String-based for clear system identification and dependency management.
type SystemType string

// Priority defines execution priority for systems.
// Lower values execute first; systems are sorted ascending by priority.
type Priority int

// Priority constants for common system execution order.
const (
	PriorityHighest Priority = -10000 // Runs first (input/physics-critical systems)
	PriorityHigh    Priority = -75
	PriorityNormal  Priority = 0 // Default priority
	PriorityLow     Priority = 75
	PriorityLowest  Priority = 10000 // Runs last (background/cleanup systems)

	// MinPriority and MaxPriority bound SetPriority; values outside this
	// range are clamped with a warning.
	MinPriority Priority = -10000
	MaxPriority Priority = 10000
)

// ==============================================
// Performance Metrics Types
// ==============================================

// PerformanceMetrics contains real-time performance data for the ECS framework.
type PerformanceMetrics struct {
	EntityCount    int           `json:"entity_count"`
	ComponentCount int           `json:"component_count"`
	SystemCount    int           `json:"system_count"`
	MemoryUsage    int64         `json:"memory_usage"`
	FrameTime      time.Duration `json:"frame_time"`
	UpdateTime     time.Duration `json:"update_time"`
	Timestamp      time.Time     `json:"timestamp"`

	TargetFPS        float64 `json:"target_fps"`
	ActualFPS        float64 `json:"actual_fps"`
	MemoryLimitBytes int64   `json:"memory_limit_bytes"`
}

// StorageStats contains component storage statistics for memory optimization.
type StorageStats struct {
	ComponentType  ComponentType `json:"component_type"`
	ComponentCount int           `json:"component_count"`
	SparseCapacity int           `json:"sparse_capacity"`
	DenseCapacity  int           `json:"dense_capacity"`
}

// ==============================================
// Configuration Types
// ==============================================

// WorldConfig contains world initialization parameters.
type WorldConfig struct {
	MaxEntities    int           `json:"max_entities" yaml:"max_entities"`
	MemoryLimit    int64         `json:"memory_limit" yaml:"memory_limit"`
	EnableMetrics  bool          `json:"enable_metrics" yaml:"enable_metrics"`
	ThreadPoolSize int           `json:"thread_pool_size" yaml:"thread_pool_size"`
	GCInterval     time.Duration `json:"gc_interval" yaml:"gc_interval"`

	ComponentPoolSize int `json:"component_pool_size" yaml:"component_pool_size"`
	SystemBatchSize   int `json:"system_batch_size" yaml:"system_batch_size"`
	CacheLineSize     int `json:"cache_line_size" yaml:"cache_line_size"`

	EnableDebugMode bool `json:"enable_debug_mode" yaml:"enable_debug_mode"`
	LogLevel        int  `json:"log_level" yaml:"log_level"`
}

// DefaultWorldConfig returns a default configuration tuned for 2D games.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		MaxEntities:       10000,
		MemoryLimit:       256 * 1024 * 1024,
		EnableMetrics:     true,
		ThreadPoolSize:    4,
		GCInterval:        30 * time.Second,
		ComponentPoolSize: 1000,
		SystemBatchSize:   64,
		CacheLineSize:     CacheLineSize,
		EnableDebugMode:   false,
		LogLevel:          2,
	}
}

// ==============================================
// Utility Types
// ==============================================

// Vector2 represents a 2D vector for positions, velocities, etc.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AABB (Axis-Aligned Bounding Box) for collision detection.
type AABB struct {
	Min Vector2 `json:"min"`
	Max Vector2 `json:"max"`
}

// Color represents RGBA color values.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// TransformMatrix represents a 3x3 2D transformation matrix in column-major order.
type TransformMatrix [9]float64

// ==============================================
// Constants
// ==============================================

const (
	// Performance targets
	TargetFPS      = 60
	MaxEntityCount = 10000

	// Memory management
	DefaultMemoryLimit = 256 * 1024 * 1024
	CacheLineSize      = 64
	ChunkSize          = 16384 // Default archetype chunk size in bytes

	// Threading
	DefaultThreadPoolSize = 4

	// Sparse-set sentinel marking "no dense index" for an id.
	sparseSentinel = 0xFFFFFFFF

	// InvalidEntityID is the zero-value entity handle; it is never a valid
	// live handle (entity indices start at 1).
	InvalidEntityID EntityID = 0

	// NullEntity is the all-ones sentinel handle, matching the source
	// engine's representation of "no entity."
	NullEntity EntityID = 0xFFFFFFFFFFFFFFFF

	InvalidComponentType ComponentType = ""
	InvalidSystemType    SystemType    = ""
)

// Component type constants for built-in components.
const (
	ComponentTypeTransform ComponentType = "transform"
	ComponentTypeSprite    ComponentType = "sprite"
	ComponentTypePhysics   ComponentType = "physics"
	ComponentTypeHealth    ComponentType = "health"
	ComponentTypeAI        ComponentType = "ai"
	ComponentTypeAudio     ComponentType = "audio"
)

// System type constants for built-in systems.
const (
	SystemTypeMovement  SystemType = "movement"
	SystemTypePhysics   SystemType = "physics"
	SystemTypeRendering SystemType = "rendering"
	SystemTypeAudio     SystemType = "audio"
	SystemTypeScript    SystemType = "script"
)
