package systems_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/systems"
)

func TestBaseSystem_TrackRecordsMetricsAndErrors(t *testing.T) {
	bs := systems.NewBaseSystem("test-system", systems.MovementSystemPriority)

	var handled error
	bs.SetErrorHandler(func(err error) { handled = err })

	require.NoError(t, bs.Track(func() error { return nil }))
	metrics := bs.GetMetrics()
	assert.Equal(t, int64(1), metrics.ExecutionCount)

	boom := errors.New("boom")
	err := bs.Track(func() error { return boom })
	assert.Equal(t, boom, err)
	assert.Equal(t, boom, handled)
	assert.Equal(t, boom, bs.GetLastError())

	metrics = bs.GetMetrics()
	assert.Equal(t, int64(2), metrics.ExecutionCount)
	assert.Equal(t, int64(1), metrics.ErrorCount)
}

func TestBaseSystem_PriorityClampsToBounds(t *testing.T) {
	bs := systems.NewBaseSystem("test-system", ecs.PriorityNormal)
	bs.SetPriority(ecs.Priority(999999))
	assert.Equal(t, ecs.MaxPriority, bs.GetPriority())

	bs.SetPriority(ecs.Priority(-999999))
	assert.Equal(t, ecs.MinPriority, bs.GetPriority())
}

func TestBaseSystem_ActiveToggle(t *testing.T) {
	bs := systems.NewBaseSystem("test-system", ecs.PriorityNormal)
	assert.True(t, bs.IsActive())
	bs.SetActive(false)
	assert.False(t, bs.IsActive())
}
