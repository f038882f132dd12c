package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Registry_MetricsReflectsLiveEntitiesAndComponents(t *testing.T) {
	// Arrange
	r := NewRegistry()
	e1 := r.CreateEntity()
	e2 := r.CreateEntity()
	assert.NoError(t, AddComponent(r, e1, ComponentTypeTransform, 1))
	assert.NoError(t, AddComponent(r, e2, ComponentTypeTransform, 2))

	// Act
	metrics := r.Metrics()

	// Assert
	assert.Equal(t, 2, metrics.EntityCount)
	assert.Equal(t, 2, metrics.ComponentCount)
	assert.False(t, metrics.Timestamp.IsZero())
}

func Test_Registry_ComponentStorageStatsReportsCapacities(t *testing.T) {
	// Arrange
	r := NewRegistry()
	e := r.CreateEntity()
	assert.NoError(t, AddComponent(r, e, ComponentTypeTransform, 42))

	// Act
	stats := r.ComponentStorageStats(ComponentTypeTransform)

	// Assert
	assert.Equal(t, ComponentTypeTransform, stats.ComponentType)
	assert.Equal(t, 1, stats.ComponentCount)
	assert.GreaterOrEqual(t, stats.SparseCapacity, 1)
	assert.GreaterOrEqual(t, stats.DenseCapacity, 1)
}

func Test_Registry_ComponentStorageStatsZeroValueForUnusedType(t *testing.T) {
	// Arrange
	r := NewRegistry()

	// Act
	stats := r.ComponentStorageStats(ComponentTypeSprite)

	// Assert
	assert.Equal(t, 0, stats.ComponentCount)
	assert.Equal(t, 0, stats.SparseCapacity)
}
