package reclaimer

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failing    int
	}{
		{
			name:       "simple tasks",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:       "failing task does not stop the pool",
			numTasks:   4,
			numWorkers: 2,
			failing:    1,
		},
		{
			name:       "zero workers still runs tasks",
			numTasks:   3,
			numWorkers: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var executed, failed atomic.Int32
			for i := 0; i < tt.numTasks; i++ {
				i := i
				err := wp.AddTask(context.Background(), func() error {
					if i < tt.failing {
						failed.Add(1)
						return assert.AnError
					}
					executed.Add(1)
					return nil
				})
				require.NoError(t, err, "failed to add task to pool")
			}

			wp.Close()

			assert.Equal(t, int32(tt.numTasks-tt.failing), executed.Load())
			assert.Equal(t, int32(tt.failing), failed.Load())
		})
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error {
		t.Error("task must not run")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
