package protocol_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qec/backend"
	"github.com/katalvlaran/qec/channel"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/decoder"
	"github.com/katalvlaran/qec/pauli"
	"github.com/katalvlaran/qec/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustSingleX builds an X operator on one qubit or fails the test.
func mustSingleX(t *testing.T, n, q int) pauli.Operator {
	t.Helper()
	op, err := pauli.Single(n, q, pauli.X)
	require.NoError(t, err)

	return op
}

// protocolTestDecoder builds the stock decoder for c.
func protocolTestDecoder(c *code.Code) (decoder.Decoder, error) {
	return decoder.New(c)
}

// TestRunner_ZeroErrorRoundTrip runs every catalogue code with no error
// injected: the correction must be trivial and every shot must succeed.
func TestRunner_ZeroErrorRoundTrip(t *testing.T) {
	for _, e := range code.Catalog() {
		e := e
		t.Run(e.Name, func(t *testing.T) {
			c, err := e.New(code.Params{})
			require.NoError(t, err)
			r, err := protocol.New(c, protocol.Options{Shots: 64})
			require.NoError(t, err)
			res, err := r.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1.0, res.SuccessRate, "no error, no failures")
			assert.Zero(t, res.LogicalErrors)
			assert.Len(t, res.Syndromes, 1, "only the all-clear syndrome appears")
		})
	}
}

// TestRunner_BitFlipScenario pins the end-to-end walk-through: input 0,
// X on qubit 1, syndrome (1,1), correction X on qubit 1, full recovery.
func TestRunner_BitFlipScenario(t *testing.T) {
	c := code.BitFlip()
	r, err := protocol.New(c, protocol.Options{
		Input: []int{0},
		Fault: &protocol.Fault{Qubit: 1, Type: pauli.X},
		Shots: 512,
	})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.SuccessRate)
	assert.Equal(t, map[string]int{"11": 512}, res.Syndromes, "both Z checks fire every shot")
	assert.Equal(t, backend.Counts{"010 11": 512}, res.Histogram)
}

// TestRunner_FiveQubitScenario pins the perfect-code walk-through: input
// 1, Z on qubit 2, unique syndrome, recovery of logical 1.
func TestRunner_FiveQubitScenario(t *testing.T) {
	c := code.FiveQubit()
	r, err := protocol.New(c, protocol.Options{
		Input: []int{1},
		Fault: &protocol.Fault{Qubit: 2, Type: pauli.Z},
		Shots: 256,
	})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.SuccessRate)
	assert.Len(t, res.Syndromes, 1, "the Z2 syndrome is unique")
}

// TestRunner_SurfaceScenario pins the matching walk-through: X on the
// central qubit of the distance-3 surface code is repaired exactly.
func TestRunner_SurfaceScenario(t *testing.T) {
	c, err := code.Surface(3)
	require.NoError(t, err)
	r, err := protocol.New(c, protocol.Options{
		Fault: &protocol.Fault{Qubit: 4, Type: pauli.X},
		Shots: 128,
	})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.SuccessRate)
}

// TestRunner_ToricTwoLogicals drives both logical qubits of the toric
// code through an error on a horizontal edge.
func TestRunner_ToricTwoLogicals(t *testing.T) {
	c, err := code.Toric(3)
	require.NoError(t, err)
	r, err := protocol.New(c, protocol.Options{
		Input: []int{1, 0},
		Fault: &protocol.Fault{Qubit: 0, Type: pauli.X},
		Shots: 128,
	})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.SuccessRate)
	assert.Equal(t, []int{1, 0}, res.Input)
}

// TestRunner_LogicalErrorCounted verifies the modelled failure mode: two
// bit flips exceed the repetition code's reach, and every shot lands in
// the logical-error bucket rather than erroring out.
func TestRunner_LogicalErrorCounted(t *testing.T) {
	c := code.BitFlip()
	noisy, err := channel.NewBitFlip(1) // X on every qubit, weight 3 = logical X exactly
	require.NoError(t, err)
	run, err := protocol.New(c, protocol.Options{
		Shots:       50,
		Noise:       &noisy,
		NoiseTarget: protocol.TargetAll,
	})
	require.NoError(t, err)
	res, err := run.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.SuccessRate, "XXX is undetectable and flips the logical bit every shot")
	assert.Equal(t, 50, res.LogicalErrors)
}

// TestRunner_ChannelStatistics runs a depolarizing channel on the Steane
// code and checks the success rate sits in the expected band: all weight-1
// errors recover, so failures need two or more flips.
func TestRunner_ChannelStatistics(t *testing.T) {
	c := code.Steane()
	noise, err := channel.NewDepolarizing(0.05)
	require.NoError(t, err)
	r, err := protocol.New(c, protocol.Options{
		Shots:       2000,
		Noise:       &noise,
		NoiseTarget: protocol.TargetAll,
		Seed:        99,
	})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Greater(t, res.SuccessRate, 0.9, "single faults dominate at p=0.05")
	assert.Less(t, res.SuccessRate, 1.0, "multi-qubit faults must appear across 2000 shots")
	assert.Equal(t, res.Shots, res.Successes+res.LogicalErrors)
}

// TestRunner_WorkerInvariance verifies the fan-out contract: per-shot RNG
// streams derive from the shot index, so the merged statistics cannot
// depend on the worker count.
func TestRunner_WorkerInvariance(t *testing.T) {
	c := code.BitFlip()
	noise, err := channel.NewDepolarizing(0.2)
	require.NoError(t, err)

	results := make([]*protocol.Result, 0, 2)
	for _, workers := range []int{1, 4} {
		r, rerr := protocol.New(c, protocol.Options{
			Shots:       400,
			Workers:     workers,
			Noise:       &noise,
			NoiseTarget: protocol.TargetAll,
			Seed:        7,
		})
		require.NoError(t, rerr)
		res, runErr := r.Run(context.Background())
		require.NoError(t, runErr)
		results = append(results, res)
	}

	assert.Equal(t, results[0].Successes, results[1].Successes)
	if diff := cmp.Diff(results[0].Histogram, results[1].Histogram); diff != "" {
		t.Errorf("histogram differs across worker counts (-w1 +w4):\n%s", diff)
	}
	if diff := cmp.Diff(results[0].Syndromes, results[1].Syndromes); diff != "" {
		t.Errorf("syndrome histogram differs across worker counts:\n%s", diff)
	}
}

// TestRunner_OptionValidation sweeps the constructor guards.
func TestRunner_OptionValidation(t *testing.T) {
	c := code.BitFlip()

	_, err := protocol.New(nil, protocol.Options{})
	assert.ErrorIs(t, err, protocol.ErrNilCode)

	_, err = protocol.New(c, protocol.Options{Shots: -1})
	assert.ErrorIs(t, err, protocol.ErrShots)

	_, err = protocol.New(c, protocol.Options{Input: []int{0, 1}})
	assert.ErrorIs(t, err, protocol.ErrInvalidLogicalValue)

	steaneDec, err := protocolTestDecoder(code.Steane())
	require.NoError(t, err)
	sim, err := backend.NewFrameSimulator()
	require.NoError(t, err)
	_, err = protocol.NewRunner(c, steaneDec, sim, protocol.Options{})
	assert.ErrorIs(t, err, protocol.ErrDecoderMismatch)

	// A bad fault surfaces at run time with the offending value.
	r, err := protocol.New(c, protocol.Options{Fault: &protocol.Fault{Qubit: 9, Type: pauli.X}})
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	assert.ErrorIs(t, err, protocol.ErrInvalidQubitIndex)
}
