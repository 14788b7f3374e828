package pool_test

import (
	"fmt"

	"github.com/katalvlaran/affine/pool"
)

// scratch is a reusable accumulator recycled across loop iterations.
type scratch struct {
	sum float64
}

// ExamplePool demonstrates the fetch → rebind → release cycle.
func ExamplePool() {
	p := pool.New(func() *scratch { return &scratch{} }, pool.WithCapacity(4))

	s := p.Fetch()
	s.sum = 0
	for _, x := range []float64{1, 2, 3, 4} {
		s.sum += x
	}
	fmt.Println("sum =", s.sum)
	p.Release(s)

	// the next fetch recycles the same instance
	again := p.Fetch()
	fmt.Println("recycled =", again == s)

	// Output:
	// sum = 10
	// recycled = true
}
