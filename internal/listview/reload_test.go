package listview

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_AbsorbsConcurrentReloads(t *testing.T) {
	var calls int32
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	loader := NewLoader(func(ctx context.Context) ([]int, error) {
		atomic.AddInt32(&calls, 1)
		once.Do(func() { close(entered) })
		<-release
		return []int{1, 2, 3}, nil
	})

	var wg sync.WaitGroup
	results := make([][]int, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = loader.Load(context.Background())
	}()

	<-entered
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = loader.Load(context.Background())
	}()

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second reload joins the in-flight fetch")
	assert.Equal(t, []int{1, 2, 3}, results[0])
	assert.Equal(t, []int{1, 2, 3}, results[1])
}

func TestLoader_SequentialReloadsFetchAgain(t *testing.T) {
	var calls int32
	loader := NewLoader(func(ctx context.Context) ([]int, error) {
		return []int{int(atomic.AddInt32(&calls, 1))}, nil
	})

	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	second, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1}, first)
	assert.Equal(t, []int{2}, second)
}

func TestLoader_LoadInto(t *testing.T) {
	loader := NewLoader(func(ctx context.Context) ([]orderRow, error) {
		return []orderRow{{CustomerID: "A", Quantity: 1}}, nil
	})
	view := NewView(orderRowFields)

	loader.LoadInto(context.Background(), view)
	require.Equal(t, Ready, view.Phase())
	_, total := view.Rows()
	assert.Equal(t, 1, total)
}

func TestLoader_LoadIntoFailure(t *testing.T) {
	loader := NewLoader(func(ctx context.Context) ([]orderRow, error) {
		return nil, errors.New("connection refused")
	})
	view := NewView(orderRowFields)

	loader.LoadInto(context.Background(), view)
	assert.Equal(t, Failed, view.Phase())
	assert.Error(t, view.Err())
}

func TestLoader_TornDownViewDiscardsResult(t *testing.T) {
	loader := NewLoader(func(ctx context.Context) ([]orderRow, error) {
		return []orderRow{{CustomerID: "A", Quantity: 1}}, nil
	})
	view := NewView(orderRowFields)
	view.Close()

	loader.LoadInto(context.Background(), view)
	assert.Equal(t, Loading, view.Phase(), "late result is discarded, not applied")
}
