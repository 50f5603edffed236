package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-widgets/internal/cli"
	"github.com/pluqqy/pluqqy-widgets/pkg/calculator"
	"github.com/pluqqy/pluqqy-widgets/pkg/tui"
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

// CalcResult represents the output structure for the calc command
type CalcResult struct {
	Sequence string                   `json:"sequence" yaml:"sequence"`
	Display  string                   `json:"display" yaml:"display"`
	Pending  string                   `json:"pending,omitempty" yaml:"pending,omitempty"`
	History  []calculator.Computation `json:"history,omitempty" yaml:"history,omitempty"`
}

// NewCalcCommand creates the calc command
func NewCalcCommand() *cobra.Command {
	var copyResult bool

	cmd := &cobra.Command{
		Use:   "calc [sequence]",
		Short: "Run a key sequence through the calculator",
		Long: `Press calculator keys from a sequence and print the display.

Each symbol is one key: digits, '.', operators (+ - * / x), '=' to
evaluate, 'C' to clear and '<' for backspace. Whitespace is ignored.
Without a sequence the interactive calculator is opened.

Examples:
  # Chain operations
  widgets calc "6+4-2="

  # Division by zero shows 0
  widgets calc "9/0="

  # Show the computations as JSON
  widgets calc "1.5*4=" -o json

  # Copy the result
  widgets calc "12*12=" --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runInteractive(tui.ViewCalculator, 0)
			}
			return runCalc(cmd, args[0], copyResult)
		},
	}

	cmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the display to the clipboard")

	return cmd
}

func runCalc(cmd *cobra.Command, sequence string, copyResult bool) error {
	if err := cli.ValidateSequence(sequence); err != nil {
		return err
	}

	var history []calculator.Computation
	engine := calculator.New(calculator.WithObserver(func(c calculator.Computation) {
		history = append(history, c)
	}))
	if err := calculator.NewKeypad(engine).Run(sequence); err != nil {
		return fmt.Errorf("invalid key sequence: %w", err)
	}

	result := CalcResult{
		Sequence: sequence,
		Display:  engine.DisplayText(),
		History:  history,
	}
	if operand, op, ok := engine.Pending(); ok {
		result.Pending = operand + " " + op.String()
	}

	format := outputFormat(cmd)
	if format == string(cli.FormatText) {
		fmt.Fprintln(cmd.OutOrStdout(), result.Display)
	} else if err := cli.OutputResults(cmd.OutOrStdout(), format, result); err != nil {
		return err
	}

	if copyResult {
		if err := copyToClipboard(result.Display); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied %s to clipboard", result.Display)
	}

	return nil
}
