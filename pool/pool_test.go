// SPDX-License-Identifier: MIT
// Package pool_test contains unit tests for the bounded free-list Pool.
package pool_test

import (
	"testing"

	"github.com/katalvlaran/affine/pool"
	"github.com/stretchr/testify/require"
)

// payload is a small mutable object standing in for a pooled value type.
type payload struct {
	a, b, c float64
}

func newPayloadPool(opts ...pool.Option) *pool.Pool[*payload] {
	return pool.New(func() *payload { return &payload{} }, opts...)
}

func TestFetch_EmptyPoolConstructs(t *testing.T) {
	constructed := 0
	p := pool.New(func() *payload {
		constructed++
		return &payload{}
	})

	first := p.Fetch()
	require.NotNil(t, first)
	require.Equal(t, 1, constructed, "empty pool must construct via factory")
	require.Equal(t, 0, p.Len())
}

func TestFetch_RecyclesReleasedInstance(t *testing.T) {
	p := newPayloadPool()

	item := p.Fetch()
	item.a, item.b, item.c = 1, 2, 3
	p.Release(item)
	require.Equal(t, 1, p.Len())

	again := p.Fetch()
	require.Same(t, item, again, "LIFO pool must hand back the released instance")
	require.Equal(t, 0, p.Len())
}

// TestFetchRelease_RecycleRoundTrip exercises the recycle contract: after n
// fetches and n releases (n <= capacity), subsequent fetches return instances
// whose fields hold exactly what the caller rebinds them to.
func TestFetchRelease_RecycleRoundTrip(t *testing.T) {
	const n = 16
	p := newPayloadPool(pool.WithCapacity(n))

	items := make([]*payload, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, p.Fetch())
	}
	for _, item := range items {
		p.Release(item)
	}
	require.Equal(t, n, p.Len())

	for i := 0; i < n; i++ {
		item := p.Fetch()
		// rebind, exactly as a typed FromPool helper would
		item.a, item.b, item.c = float64(i), float64(i)+0.5, -float64(i)
		require.Equal(t, float64(i), item.a)
		require.Equal(t, float64(i)+0.5, item.b)
		require.Equal(t, -float64(i), item.c)
	}
	require.Equal(t, 0, p.Len())
}

func TestRelease_DropsBeyondCapacity(t *testing.T) {
	const capacity = 4
	p := newPayloadPool(pool.WithCapacity(capacity))

	for i := 0; i < capacity+3; i++ {
		p.Release(&payload{})
	}
	require.Equal(t, capacity, p.Len(), "releases past capacity must be dropped")
	require.Equal(t, capacity, p.Cap())
}

func TestLIFO_Order(t *testing.T) {
	p := newPayloadPool()

	first := &payload{a: 1}
	second := &payload{a: 2}
	p.Release(first)
	p.Release(second)

	require.Same(t, second, p.Fetch(), "most recently released comes out first")
	require.Same(t, first, p.Fetch())
}

func TestWithWarm_PreconstructsInstances(t *testing.T) {
	constructed := 0
	p := pool.New(func() *payload {
		constructed++
		return &payload{}
	}, pool.WithCapacity(8), pool.WithWarm(5))

	require.Equal(t, 5, constructed)
	require.Equal(t, 5, p.Len())

	// all five fetches must be recycled, not fresh
	for i := 0; i < 5; i++ {
		p.Fetch()
	}
	require.Equal(t, 5, constructed)
}

func TestWithWarm_ClampedToCapacity(t *testing.T) {
	p := newPayloadPool(pool.WithCapacity(3), pool.WithWarm(10))
	require.Equal(t, 3, p.Len())
}

func TestClear_EmptiesButKeepsPoolUsable(t *testing.T) {
	p := newPayloadPool(pool.WithCapacity(8), pool.WithWarm(4))

	p.Clear()
	require.Equal(t, 0, p.Len())

	item := p.Fetch()
	require.NotNil(t, item)
	p.Release(item)
	require.Equal(t, 1, p.Len())
}

func TestOptionValidation_Panics(t *testing.T) {
	require.Panics(t, func() { pool.WithCapacity(0) })
	require.Panics(t, func() { pool.WithCapacity(-1) })
	require.Panics(t, func() { pool.WithWarm(-1) })
	require.Panics(t, func() { pool.New[*payload](nil) })
}
