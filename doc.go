// Package qec emulates the control logic of a quantum error-correction
// stack: encode a logical qubit into a stabilizer code, inject a Pauli
// error, extract the syndrome, decode it into a correction, and verify
// recovery of the logical state.
//
// 🚀 What is qec?
//
//	A data-driven stabilizer-code engine plus the classical protocol
//	around it:
//		• Pauli algebra: phase-free n-qubit operators, composition, commutation
//		• Code catalogue: bit-flip, phase-flip, Shor, five-qubit, Steane,
//		  Bacon-Shor, surface(d), toric(L) — each a plain data record
//		• Noise channels: depolarizing, flips, damping twirls, thermal
//		  relaxation, custom Pauli mixtures, YAML-configurable
//		• Decoders: exhaustive syndrome tables for the block codes,
//		  minimum-weight matching for the topological ones
//		• Protocol runner: deterministic faults or per-shot channel
//		  sampling across a bounded worker pool, merged histograms
//
// ✨ Design rules
//
//   - Codes are data, not scripts – one generic engine, eight records
//   - Every tie-break is documented and deterministic – reruns reproduce
//   - Logical errors are counted outcomes, never error returns
//   - The quantum state lives behind the narrow backend seam; the shipped
//     FrameSimulator is classical Pauli-frame bookkeeping
//
// Under the hood, everything is organized per concern:
//
//	pauli/    — operator algebra every other package builds on
//	code/     — the catalogue: checks, stabilizers, logicals, layouts
//	channel/  — single-qubit noise models and their YAML config
//	backend/  — the execution seam and the frame simulator
//	decoder/  — table lookup and matching decoders
//	protocol/ — encode→inject→extract→decode→verify, shot aggregation
//	cmd/qec/  — one subcommand per catalogue code, uniform flags
//
// Quick ASCII example, the distance-3 surface code's data grid:
//
//	0 1 2
//	3 4 5      an X error on qubit 4 fires the two adjacent
//	6 7 8      Z plaquettes; matching repairs the shared qubit
//
// Dive into README.md for full examples and the per-code flag matrix.
//
//	go get github.com/katalvlaran/qec
package qec
