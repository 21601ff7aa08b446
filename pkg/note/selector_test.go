package note

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/utils/options"
)

func TestSelectorDefaultsToMemory(t *testing.T) {
	// No BACKEND value at all behaves like explicit memory selection.
	s := NewSelector(&options.Config{})

	b, err := s.Backend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memory", b.Name())
}

func TestSelectorExplicitMemory(t *testing.T) {
	s := NewSelector(&options.Config{Backend: options.BackendMemory})

	b, err := s.Backend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memory", b.Name())
}

func TestSelectorUnrecognizedFallsBackToMemory(t *testing.T) {
	s := NewSelector(&options.Config{Backend: "cassandra"})

	b, err := s.Backend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memory", b.Name())
}

func TestSelectorRemoteCache(t *testing.T) {
	// Construction is lazy, no server needed to select the variant.
	s := NewSelector(&options.Config{Backend: options.BackendRemoteCache})

	b, err := s.Backend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "remote-cache", b.Name())
}

func TestSelectorCachesInstance(t *testing.T) {
	s := NewSelector(&options.Config{Backend: options.BackendMemory})
	ctx := context.Background()

	first, err := s.Backend(ctx)
	require.NoError(t, err)
	second, err := s.Backend(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSelectorConstructsOnceUnderConcurrency(t *testing.T) {
	s := NewSelector(&options.Config{Backend: options.BackendMemory})

	var constructions atomic.Int32
	inner := s.build
	s.build = func(ctx context.Context) (Backend, error) {
		constructions.Add(1)
		return inner(ctx)
	}

	const callers = 16
	backends := make([]Backend, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			backends[i], errs[i] = s.Backend(context.Background())
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, constructions.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, backends[0], backends[i])
	}
}
