package vec_test

import (
	"fmt"

	"github.com/katalvlaran/affine/vec"
)

// ExampleVector3 contrasts the immutable and mutable method families.
func ExampleVector3() {
	a := vec.Vector3{X: 1, Y: 2, Z: 2}

	// immutable: returns a new value, a is untouched
	unit, _ := a.Normalized()
	fmt.Println("normalized:", unit)
	fmt.Println("original:  ", a)

	// mutable: rewrites the receiver in place, chainable
	a.Add(vec.Vector3{X: 2, Y: 1, Z: 1}).MultiplyScalar(0.5)
	fmt.Println("mutated:   ", a)

	// Output:
	// normalized: (0.3333333333333333, 0.6666666666666666, 0.6666666666666666)
	// original:   (1, 2, 2)
	// mutated:    (1.5, 1.5, 1.5)
}
