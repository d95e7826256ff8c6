// Package channel models single-qubit Pauli noise. Every channel, including
// the damping ones, is reduced at construction time to a triple of X/Y/Z
// flip probabilities; sampling is then one uniform draw against the
// cumulative triple. The damping reductions are explicit approximations
// (Pauli twirls) and are documented on their constructors.
package channel

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qec/pauli"
)

// Model is a validated single-qubit noise channel. The zero value is the
// noiseless channel; constructors return models by value because they are
// three floats and a tag.
type Model struct {
	kind       Kind
	px, py, pz float64
}

// NewDepolarizing returns the depolarizing channel: each of X, Y, Z occurs
// with probability p/3.
// Returns ErrInvalidChannelParameter if p ∉ [0,1].
func NewDepolarizing(p float64) (Model, error) {
	if err := checkProb("p", p); err != nil {
		return Model{}, err
	}

	return Model{kind: Depolarizing, px: p / 3, py: p / 3, pz: p / 3}, nil
}

// NewBitFlip returns the bit-flip channel: X with probability p.
// Returns ErrInvalidChannelParameter if p ∉ [0,1].
func NewBitFlip(p float64) (Model, error) {
	if err := checkProb("p", p); err != nil {
		return Model{}, err
	}

	return Model{kind: BitFlip, px: p}, nil
}

// NewPhaseFlip returns the phase-flip channel: Z with probability p.
// Returns ErrInvalidChannelParameter if p ∉ [0,1].
func NewPhaseFlip(p float64) (Model, error) {
	if err := checkProb("p", p); err != nil {
		return Model{}, err
	}

	return Model{kind: PhaseFlip, pz: p}, nil
}

// NewBitPhaseFlip returns the bit-phase-flip channel: Y with probability p.
// Returns ErrInvalidChannelParameter if p ∉ [0,1].
func NewBitPhaseFlip(p float64) (Model, error) {
	if err := checkProb("p", p); err != nil {
		return Model{}, err
	}

	return Model{kind: BitPhaseFlip, py: p}, nil
}

// NewAmplitudeDamping returns the Pauli twirl of the amplitude damping
// channel with decay probability γ: pX = pY = γ/4 and
// pZ = (2 - γ - 2·√(1-γ))/4. The twirl keeps the channel's Pauli error
// rates and drops its coherences, which is the standard stabilizer-frame
// approximation; pZ is O(γ²), matching the physical channel.
// Returns ErrInvalidChannelParameter if γ ∉ [0,1].
func NewAmplitudeDamping(gamma float64) (Model, error) {
	if err := checkProb("gamma", gamma); err != nil {
		return Model{}, err
	}
	pz := (2 - gamma - 2*math.Sqrt(1-gamma)) / 4

	return Model{kind: AmplitudeDamping, px: gamma / 4, py: gamma / 4, pz: pz}, nil
}

// NewPhaseDamping returns pure dephasing with parameter γ as a Z flip of
// probability (1 - √(1-γ))/2, the exact Pauli form of the phase damping
// channel.
// Returns ErrInvalidChannelParameter if γ ∉ [0,1].
func NewPhaseDamping(gamma float64) (Model, error) {
	if err := checkProb("gamma", gamma); err != nil {
		return Model{}, err
	}

	return Model{kind: PhaseDamping, pz: (1 - math.Sqrt(1-gamma)) / 2}, nil
}

// NewThermalRelaxation returns the combined T1/T2 channel over one gate
// duration. The T1 part is the amplitude damping twirl with
// γ1 = 1 - exp(-t/T1). The excess dephasing beyond T1's own contribution
// decays as exp(-t·(1/T2 - 1/(2·T1))); its square gives the residual
// coherence, converted to a Z flip, and the two Z processes compose as
// independent flips. Requires T1 > 0, T2 > 0, t ≥ 0 and the physicality
// bound T2 ≤ 2·T1; violations return ErrInvalidChannelParameter.
func NewThermalRelaxation(t1, t2, gateTime float64) (Model, error) {
	switch {
	case !(t1 > 0) || math.IsInf(t1, 0):
		return Model{}, fmt.Errorf("%w: t1 = %v, want t1 > 0", ErrInvalidChannelParameter, t1)
	case !(t2 > 0) || math.IsInf(t2, 0):
		return Model{}, fmt.Errorf("%w: t2 = %v, want t2 > 0", ErrInvalidChannelParameter, t2)
	case math.IsNaN(gateTime) || gateTime < 0 || math.IsInf(gateTime, 0):
		return Model{}, fmt.Errorf("%w: gate time = %v, want ≥ 0", ErrInvalidChannelParameter, gateTime)
	case t2 > 2*t1:
		return Model{}, fmt.Errorf("%w: t2 = %v exceeds 2·t1 = %v", ErrInvalidChannelParameter, t2, 2*t1)
	}
	gamma1 := 1 - math.Exp(-gateTime/t1)
	amp, err := NewAmplitudeDamping(gamma1)
	if err != nil {
		return Model{}, err
	}
	ratio := math.Exp(-gateTime * (1/t2 - 1/(2*t1)))
	pzPhi := (1 - ratio) / 2
	// Independent flip composition: flip iff exactly one process flips.
	pz := amp.pz*(1-pzPhi) + pzPhi*(1-amp.pz)

	return Model{kind: ThermalRelaxation, px: amp.px, py: amp.py, pz: pz}, nil
}

// NewCustomPauli returns a channel with caller-chosen X, Y, Z probabilities.
// Returns ErrInvalidChannelParameter if any probability is outside [0,1] or
// the three sum past one.
func NewCustomPauli(px, py, pz float64) (Model, error) {
	if err := checkProb("px", px); err != nil {
		return Model{}, err
	}
	if err := checkProb("py", py); err != nil {
		return Model{}, err
	}
	if err := checkProb("pz", pz); err != nil {
		return Model{}, err
	}
	if sum := px + py + pz; sum > 1 {
		return Model{}, fmt.Errorf("%w: px+py+pz = %v exceeds 1", ErrInvalidChannelParameter, sum)
	}

	return Model{kind: CustomPauli, px: px, py: py, pz: pz}, nil
}

// Kind returns the channel family tag.
func (m Model) Kind() Kind { return m.kind }

// Probabilities returns the reduced X, Y, Z flip probabilities.
func (m Model) Probabilities() (px, py, pz float64) {
	return m.px, m.py, m.pz
}

// FlipProbability returns the total probability of a non-identity outcome.
func (m Model) FlipProbability() float64 {
	return m.px + m.py + m.pz
}

// Sample draws one Pauli letter from the channel using rng. The identity
// is returned with probability 1 - (px+py+pz).
// Complexity: O(1), one uniform draw.
func (m Model) Sample(rng *rand.Rand) pauli.Symbol {
	u := rng.Float64()
	switch {
	case u < m.px:
		return pauli.X
	case u < m.px+m.py:
		return pauli.Y
	case u < m.px+m.py+m.pz:
		return pauli.Z
	default:
		return pauli.I
	}
}

// String renders the channel with its reduced probabilities, e.g.
// "depolarizing(px=0.033, py=0.033, pz=0.033)".
func (m Model) String() string {
	return fmt.Sprintf("%s(px=%.4g, py=%.4g, pz=%.4g)", m.kind, m.px, m.py, m.pz)
}

// checkProb validates a single probability-like parameter.
func checkProb(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s = %v, want [0,1]", ErrInvalidChannelParameter, name, v)
	}

	return nil
}
