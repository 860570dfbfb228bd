// Package curry_test verifies that one Builder can be derived from and one
// Func applied from many goroutines at once.
package curry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/curried/curry"
	"github.com/stretchr/testify/require"
)

func TestConcurrentDerivation(t *testing.T) {
	base := curry.Must(newAffine(t).Takes(0))
	const workers = 64

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			b, err := base.WithBound(2, i)
			if err != nil {
				errs <- err
				return
			}
			if b, err = b.Takes(1); err != nil {
				errs <- err
				return
			}
			res, err := b.Build().Call(1, 2)
			if err != nil {
				errs <- err
				return
			}
			if want := affine(1, 2, i); res.First() != want {
				errs <- fmt.Errorf("worker %d: want %d, got %v", i, want, res.First())
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 1, base.Arity())
}

func TestConcurrentApply(t *testing.T) {
	g := curry.Must(curry.Must(newAffine(t).Takes(1)).Takes(2)).Build()
	half, err := g.Apply(3)
	require.NoError(t, err)

	const workers = 64
	results := make([]any, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			res, err := half.Call(i)
			if err == nil {
				results[i] = res.First()
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, affine(0, 3, i), got)
	}
}
