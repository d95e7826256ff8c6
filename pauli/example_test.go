package pauli_test

import (
	"fmt"

	"github.com/katalvlaran/qec/pauli"
)

// ExampleOperator_Mul composes a bit flip with a phase flip on the same
// qubit. Up to the discarded global phase the product is Y.
func ExampleOperator_Mul() {
	x, _ := pauli.Single(3, 1, pauli.X)
	z, _ := pauli.Single(3, 1, pauli.Z)

	y, _ := x.Mul(z)
	fmt.Println(y)

	// Squaring any operator returns the identity.
	sq, _ := y.Mul(y)
	fmt.Println(sq.IsIdentity())

	// Output:
	// IYI
	// true
}

// ExampleOperator_CommutesWith tests a five-qubit stabilizer generator
// against a single-qubit error. The generator carries X on qubit 3, so a
// Z error there anticommutes and the check fires.
func ExampleOperator_CommutesWith() {
	gen, _ := pauli.Parse("XZZXI")
	err, _ := pauli.Single(5, 3, pauli.Z)

	ok, _ := gen.CommutesWith(err)
	fmt.Println(ok)

	// Output:
	// false
}
