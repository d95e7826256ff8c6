package decoder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/decoder"
	"github.com/katalvlaran/qec/pauli"
)

// randomSyndrome derives the syndrome of a random weight-w error on c.
func randomSyndrome(b *testing.B, c *code.Code, w int, rng *rand.Rand) decoder.Syndrome {
	b.Helper()
	op := make(pauli.Operator, c.N)
	for i := 0; i < w; i++ {
		op[rng.Intn(c.N)] = pauli.Symbol(1 + rng.Intn(3))
	}
	raw, err := c.SyndromeOf(op)
	if err != nil {
		b.Fatalf("SyndromeOf failed: %v", err)
	}

	return decoder.Syndrome(c.FoldSyndrome(raw))
}

// BenchmarkTable_Decode measures the O(1) lookup path on the Steane code.
func BenchmarkTable_Decode(b *testing.B) {
	tab, err := decoder.NewTable(code.Steane())
	if err != nil {
		b.Fatalf("NewTable failed: %v", err)
	}
	syn := randomSyndrome(b, tab.Code(), 1, rand.New(rand.NewSource(3)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tab.Decode(syn); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkMatching_Decode measures the per-shot matching path on the
// distance-5 surface code with a multi-error syndrome.
func BenchmarkMatching_Decode(b *testing.B) {
	c, err := code.Surface(5)
	if err != nil {
		b.Fatalf("Surface failed: %v", err)
	}
	m, err := decoder.NewMatching(c)
	if err != nil {
		b.Fatalf("NewMatching failed: %v", err)
	}
	syn := randomSyndrome(b, c, 4, rand.New(rand.NewSource(4)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Decode(syn); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}
