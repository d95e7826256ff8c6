package pauli_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qec/pauli"
)

// randomOperator builds a deterministic pseudo-random operator of n qubits.
func randomOperator(n int, rng *rand.Rand) pauli.Operator {
	op := make(pauli.Operator, n)
	for q := range op {
		op[q] = pauli.Symbol(rng.Intn(4))
	}

	return op
}

// BenchmarkOperator_Mul measures qubit-wise composition on 1024-qubit operators.
func BenchmarkOperator_Mul(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x := randomOperator(1024, rng)
	y := randomOperator(1024, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkOperator_CommutesWith measures the symplectic parity test on
// 1024-qubit operators.
func BenchmarkOperator_CommutesWith(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	x := randomOperator(1024, rng)
	y := randomOperator(1024, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.CommutesWith(y); err != nil {
			b.Fatalf("CommutesWith failed: %v", err)
		}
	}
}
