package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/qec/channel"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/pauli"
	"github.com/katalvlaran/qec/protocol"
	"github.com/spf13/cobra"
)

// codeFlags is the uniform flag set every code subcommand carries.
type codeFlags struct {
	input      int
	input2     int
	injectErr  bool
	errorQubit int
	errorType  string
	shots      int
	noDraw     bool
	noisePath  string
	noiseProb  float64
	noiseQubit int
	seed       int64
	workers    int
	distance   int
	lattice    int
}

// newCodeCmd builds the subcommand for one catalogue entry.
func newCodeCmd(a *app, entry code.Entry) *cobra.Command {
	f := &codeFlags{}
	cmd := &cobra.Command{
		Use:   entry.Name,
		Short: entry.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCode(cmd, a, entry, f)
		},
	}
	cmd.Flags().IntVar(&f.input, "input", 0, "logical input bit")
	cmd.Flags().BoolVar(&f.injectErr, "error", false, "inject a deterministic error before extraction")
	cmd.Flags().IntVar(&f.errorQubit, "error-qubit", 0, "qubit hit by the deterministic error")
	cmd.Flags().StringVar(&f.errorType, "error-type", "X", "deterministic error type: X, Y or Z")
	cmd.Flags().IntVar(&f.shots, "shots", protocol.DefaultShots, "number of trials")
	cmd.Flags().BoolVar(&f.noDraw, "no-draw", false, "suppress the code layout sketch")
	cmd.Flags().StringVar(&f.noisePath, "noise", "", "YAML noise-model file enabling per-shot channel sampling")
	cmd.Flags().Float64Var(&f.noiseProb, "noise-prob", 0, "depolarizing probability shorthand for --noise")
	cmd.Flags().IntVar(&f.noiseQubit, "noise-qubit", protocol.TargetAll, "channel target qubit; -1 hits every qubit")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed; 0 keeps the reproducible default")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "worker pool size for channel runs; 0 uses every CPU")
	switch entry.Name {
	case "surface":
		cmd.Flags().IntVar(&f.distance, "distance", code.DefaultSurfaceDistance, "code distance, odd and ≥ 3")
	case "toric":
		cmd.Flags().IntVar(&f.lattice, "lattice", code.DefaultToricSize, "lattice size L, ≥ 2")
		cmd.Flags().IntVar(&f.input2, "input2", 0, "second logical input bit")
	}

	return cmd
}

// runCode executes one correction experiment and renders the outcome.
func runCode(cmd *cobra.Command, a *app, entry code.Entry, f *codeFlags) error {
	c, err := entry.New(code.Params{Distance: f.distance, Lattice: f.lattice})
	if err != nil {
		return err
	}
	input := []int{f.input}
	if c.K == 2 {
		input = append(input, f.input2)
	}
	opts := protocol.Options{
		Input:   input,
		Shots:   f.shots,
		Seed:    f.seed,
		Workers: f.workers,
		Logger:  a.logger,
	}
	if f.injectErr {
		sym, perr := parseErrorType(f.errorType)
		if perr != nil {
			return perr
		}
		opts.Fault = &protocol.Fault{Qubit: f.errorQubit, Type: sym}
	}
	noise, err := buildNoise(f)
	if err != nil {
		return err
	}
	if noise != nil {
		opts.Noise = noise
		opts.NoiseTarget = f.noiseQubit
	}
	r, err := protocol.New(c, opts)
	if err != nil {
		return err
	}
	res, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !f.noDraw {
		fmt.Fprintln(out, renderSketch(c))
	}
	fmt.Fprintln(out, renderSummary(c, res))
	fmt.Fprintln(out, renderSyndromes(res))

	return nil
}

// parseErrorType maps the --error-type spelling onto a Pauli letter.
func parseErrorType(s string) (pauli.Symbol, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if len(up) != 1 {
		return pauli.I, fmt.Errorf("%w: got %q", protocol.ErrInvalidErrorType, s)
	}
	sym, err := pauli.ParseSymbol(up[0])
	if err != nil || sym == pauli.I {
		return pauli.I, fmt.Errorf("%w: got %q", protocol.ErrInvalidErrorType, s)
	}

	return sym, nil
}

// buildNoise resolves --noise / --noise-prob into a channel model.
func buildNoise(f *codeFlags) (*channel.Model, error) {
	switch {
	case f.noisePath != "":
		data, err := os.ReadFile(f.noisePath)
		if err != nil {
			return nil, fmt.Errorf("read noise config: %w", err)
		}
		m, err := channel.ParseYAML(data)
		if err != nil {
			return nil, err
		}

		return &m, nil
	case f.noiseProb > 0:
		m, err := channel.NewDepolarizing(f.noiseProb)
		if err != nil {
			return nil, err
		}

		return &m, nil
	default:
		return nil, nil
	}
}
