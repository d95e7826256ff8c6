// Package protocol defines core types, sentinel errors, and run options
// for the protocol subpackage of github.com/katalvlaran/qec.
package protocol

import (
	"errors"

	"github.com/google/uuid"
	"github.com/katalvlaran/qec/backend"
	"github.com/katalvlaran/qec/channel"
	"github.com/katalvlaran/qec/pauli"
	"go.uber.org/zap"
)

// Sentinel errors for protocol operations.
var (
	// ErrNilCode indicates a runner or helper invoked without a code.
	ErrNilCode = errors.New("protocol: nil code")
	// ErrNilDecoder indicates a runner constructed without a decoder.
	ErrNilDecoder = errors.New("protocol: nil decoder")
	// ErrNilBackend indicates a runner constructed without a backend.
	ErrNilBackend = errors.New("protocol: nil backend")
	// ErrDecoderMismatch indicates a decoder built for a different code
	// than the runner's.
	ErrDecoderMismatch = errors.New("protocol: decoder built for a different code")
	// ErrInvalidQubitIndex indicates an error-injection target outside [0, n).
	ErrInvalidQubitIndex = errors.New("protocol: qubit index out of range")
	// ErrInvalidErrorType indicates a deterministic fault type outside {X, Y, Z}.
	ErrInvalidErrorType = errors.New("protocol: error type must be X, Y or Z")
	// ErrInvalidLogicalValue indicates logical input bits that are not 0/1
	// or do not match the code's logical qubit count.
	ErrInvalidLogicalValue = errors.New("protocol: logical input must supply one 0/1 value per logical qubit")
	// ErrDataLength indicates measured data bits spanning a different qubit
	// count than the code.
	ErrDataLength = errors.New("protocol: data bits do not span the code's qubits")
	// ErrShots indicates a negative shot request.
	ErrShots = errors.New("protocol: shot count must be positive")
	// ErrEmptyCounts indicates syndrome extraction over an empty histogram.
	ErrEmptyCounts = errors.New("protocol: no measurement outcomes to extract from")
)

// DefaultShots is the shot count used when Options leaves it unset.
const DefaultShots = 1024

// TargetAll selects every qubit as an independent noise target.
const TargetAll = -1

// Fault is a deterministic single-qubit error injection.
type Fault struct {
	// Qubit is the physical qubit index in [0, n).
	Qubit int
	// Type is the injected Pauli letter, one of X, Y, Z.
	Type pauli.Symbol
}

// Options configures one protocol run. The zero value runs DefaultShots
// noiseless, fault-free shots on one worker with a nop logger.
type Options struct {
	// Input holds one logical bit per logical qubit; nil means all zeros.
	Input []int
	// Fault injects a deterministic error before extraction; nil injects
	// nothing.
	Fault *Fault
	// Noise switches the run to per-shot channel sampling; nil keeps the
	// run deterministic.
	Noise *channel.Model
	// NoiseTarget selects the qubit hit by the channel; TargetAll applies
	// it independently to every qubit. The zero value targets qubit 0.
	NoiseTarget int
	// Shots is the number of trials; 0 means DefaultShots.
	Shots int
	// Workers bounds the per-shot fan-out on the channel path; 0 means
	// GOMAXPROCS. The deterministic path ignores it.
	Workers int
	// Seed drives every random draw; 0 selects the stable default so runs
	// are reproducible unless a caller opts out.
	Seed int64
	// Logger receives run summaries and per-phase debug events; nil means
	// no logging.
	Logger *zap.Logger
}

// Result aggregates one run. Successes counts shots whose corrected
// readout recovered the logical input; every failed shot is a logical
// error by construction, never an error return.
type Result struct {
	// RunID tags the run for log correlation.
	RunID uuid.UUID
	// Code is the code's registry name.
	Code string
	// Input is the logical value the run tried to protect.
	Input []int
	// Shots, Successes and LogicalErrors partition the trials.
	Shots         int
	Successes     int
	LogicalErrors int
	// SuccessRate is Successes over Shots.
	SuccessRate float64
	// Histogram holds raw backend outcome keys with counts.
	Histogram backend.Counts
	// Syndromes holds folded syndrome keys with counts.
	Syndromes map[string]int
}
