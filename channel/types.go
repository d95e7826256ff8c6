// Package channel defines core types and sentinel errors for the channel
// subpackage of github.com/katalvlaran/qec.
package channel

import "errors"

// ErrInvalidChannelParameter indicates a probability or time constant
// outside its physical range, e.g. p ∉ [0,1], T2 > 2·T1, or Pauli
// probabilities summing past one.
var ErrInvalidChannelParameter = errors.New("channel: invalid channel parameter")

// ErrUnknownChannel indicates a channel kind name outside the catalogue.
var ErrUnknownChannel = errors.New("channel: unknown channel kind")

// Kind enumerates the supported single-qubit noise channels.
type Kind uint8

const (
	// Depolarizing applies X, Y or Z with probability p/3 each.
	Depolarizing Kind = iota
	// BitFlip applies X with probability p.
	BitFlip
	// PhaseFlip applies Z with probability p.
	PhaseFlip
	// BitPhaseFlip applies Y with probability p.
	BitPhaseFlip
	// AmplitudeDamping is the Pauli twirl of energy relaxation with rate γ.
	AmplitudeDamping
	// PhaseDamping is pure dephasing with rate γ.
	PhaseDamping
	// ThermalRelaxation combines T1 relaxation and T2 dephasing over one
	// gate duration.
	ThermalRelaxation
	// CustomPauli applies X, Y, Z with caller-chosen probabilities.
	CustomPauli
)

// kindNames maps Kind values to their wire/CLI spellings.
var kindNames = [...]string{
	Depolarizing:      "depolarizing",
	BitFlip:           "bitflip",
	PhaseFlip:         "phaseflip",
	BitPhaseFlip:      "bitphaseflip",
	AmplitudeDamping:  "amplitude-damping",
	PhaseDamping:      "phase-damping",
	ThermalRelaxation: "thermal-relaxation",
	CustomPauli:       "custom",
}

// String returns the CLI spelling of k, or "?" for invalid values.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "?"
	}

	return kindNames[k]
}

// ParseKind converts a CLI spelling into a Kind.
// Returns ErrUnknownChannel for names outside the catalogue.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return Depolarizing, ErrUnknownChannel
}

// Names returns every channel spelling in declaration order.
func Names() []string {
	out := make([]string, len(kindNames))
	copy(out, kindNames[:])

	return out
}
