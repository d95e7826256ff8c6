// Command qec emulates the control logic of a quantum error-correction
// stack from the terminal: pick a code, encode a logical value, inject an
// error, and watch the decoder recover it over many shots.
//
// One subcommand exists per catalogued code, all sharing the same flag
// shape, plus `codes` to list the catalogue and `validate` to re-check
// every code's structural invariants.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/qec/code"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand: the global flags and
// the logger built once per invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "qec",
		Short: "stabilizer-code error-correction emulator",
		Long: `qec runs the classical control loop of quantum error correction:
encode a logical value into a stabilizer code, inject a Pauli error,
extract the syndrome, decode it into a correction, and verify recovery.

Each catalogued code is a subcommand with a uniform flag shape:

  qec bitflip --input 0 --error --error-qubit 1 --error-type X
  qec surface --distance 5 --noise-prob 0.01 --shots 4096
  qec toric   --lattice 3 --input 1 --input2 0`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every protocol phase at debug level")
	for _, e := range code.Catalog() {
		root.AddCommand(newCodeCmd(a, e))
	}
	root.AddCommand(newCodesCmd(), newValidateCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qec:", err)
		os.Exit(1)
	}
}
