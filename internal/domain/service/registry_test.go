package service_test

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/payment-router/internal/domain/service"
)

func TestProcessorRegistry_Register(t *testing.T) {
	t.Run("lists in registration order", func(t *testing.T) {
		registry := service.NewProcessorRegistry(slog.Default())
		registry.Register(newFakeProcessor("b", true, 1, 0, 90, []string{"USD"}, []string{"*"}))
		registry.Register(newFakeProcessor("a", true, 1, 0, 90, []string{"USD"}, []string{"*"}))

		processors := registry.List()
		require.Len(t, processors, 2)
		assert.Equal(t, "b", processors[0].Name())
		assert.Equal(t, "a", processors[1].Name())
	})

	t.Run("re-registering a name replaces in place", func(t *testing.T) {
		registry := service.NewProcessorRegistry(slog.Default())
		registry.Register(newFakeProcessor("x", true, 1, 0, 50, []string{"USD"}, []string{"*"}))
		registry.Register(newFakeProcessor("y", true, 1, 0, 60, []string{"USD"}, []string{"*"}))
		registry.Register(newFakeProcessor("x", true, 1, 0, 99, []string{"USD"}, []string{"*"}))

		processors := registry.List()
		require.Len(t, processors, 2)
		assert.Equal(t, "x", processors[0].Name())
		assert.Equal(t, 99.0, processors[0].ReliabilityScore())
		assert.Equal(t, "y", processors[1].Name())
	})
}

func TestProcessorRegistry_Remove(t *testing.T) {
	registry := service.NewProcessorRegistry(slog.Default())
	registry.Register(newFakeProcessor("a", true, 1, 0, 90, []string{"USD"}, []string{"*"}))
	registry.Register(newFakeProcessor("b", true, 1, 0, 90, []string{"USD"}, []string{"*"}))

	registry.Remove("a")
	processors := registry.List()
	require.Len(t, processors, 1)
	assert.Equal(t, "b", processors[0].Name())

	// removing an absent name is a no-op
	registry.Remove("a")
	registry.Remove("never-registered")
	assert.Equal(t, 1, registry.Len())
}

func TestProcessorRegistry_List(t *testing.T) {
	t.Run("snapshot is isolated from later mutation", func(t *testing.T) {
		registry := service.NewProcessorRegistry(slog.Default())
		registry.Register(newFakeProcessor("a", true, 1, 0, 90, []string{"USD"}, []string{"*"}))

		snapshot := registry.List()
		registry.Remove("a")

		require.Len(t, snapshot, 1)
		assert.Equal(t, "a", snapshot[0].Name())
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("repeated calls without mutation are equal", func(t *testing.T) {
		registry := service.NewProcessorRegistry(slog.Default())
		registry.Register(newFakeProcessor("a", true, 1, 0, 90, []string{"USD"}, []string{"*"}))
		registry.Register(newFakeProcessor("b", true, 1, 0, 90, []string{"USD"}, []string{"*"}))

		assert.Equal(t, registry.List(), registry.List())
	})

	t.Run("empty registry lists empty", func(t *testing.T) {
		registry := service.NewProcessorRegistry(slog.Default())
		assert.Empty(t, registry.List())
	})
}

func TestProcessorRegistry_Concurrency(t *testing.T) {
	registry := service.NewProcessorRegistry(slog.Default())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(3)
		name := fmt.Sprintf("p%d", i)
		go func() {
			defer wg.Done()
			registry.Register(newFakeProcessor(name, true, 1, 0, 90, []string{"USD"}, []string{"*"}))
		}()
		go func() {
			defer wg.Done()
			for _, p := range registry.List() {
				_ = p.Name()
			}
		}()
		go func() {
			defer wg.Done()
			registry.Remove(name)
		}()
	}
	wg.Wait()

	// every processor has a consistent entry or none at all
	assert.LessOrEqual(t, registry.Len(), 16)
}
