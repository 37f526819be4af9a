package worker

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPool_RunsSubmittedTasks(t *testing.T) {
	pool := NewPool(3, 16, discardLogger())

	var ran atomic.Int32
	for i := 0; i < 20; i++ {
		pool.Submit(func() { ran.Add(1) })
	}

	pool.Shutdown()
	assert.Equal(t, int32(20), ran.Load())
}

func TestPool_SurvivesPanickingTask(t *testing.T) {
	pool := NewPool(1, 4, discardLogger())

	var ran atomic.Bool
	pool.Submit(func() { panic("boom") })
	pool.Submit(func() { ran.Store(true) })

	pool.Shutdown()
	assert.True(t, ran.Load())
}

func TestPool_ShutdownIsIdempotent(t *testing.T) {
	pool := NewPool(2, 4, discardLogger())
	pool.Submit(func() {})

	pool.Shutdown()
	assert.NotPanics(t, func() { pool.Shutdown() })
}
