package mat_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/affine/mat"
	"github.com/katalvlaran/affine/vec"
)

// ExampleMatrix3_TimesMatrix shows the typed fast paths at work: two
// translations compose in O(1) and keep their tag.
func ExampleMatrix3_TimesMatrix() {
	move := mat.Translation(5, 7)
	nudge := mat.Translation(-2, 3)

	combined := move.TimesMatrix(nudge)
	fmt.Println("type:", combined.Type())
	fmt.Println("translation:", combined.Translation())

	// Output:
	// type: TRANSLATION_2D
	// translation: (3, 10)
}

// ExampleRotationZ demonstrates the exact-zero snap policy for quarter
// turns.
func ExampleRotationZ() {
	quarter := mat.RotationZ(math.Pi / 2)
	fmt.Println(quarter.TimesVector3(vec.Vector3{X: 1, Y: 0, Z: 0}))

	// Output:
	// (0, 1, 0)
}
