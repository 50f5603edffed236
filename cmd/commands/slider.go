package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-widgets/internal/cli"
	"github.com/pluqqy/pluqqy-widgets/pkg/tui"
)

// NewSliderCommand creates the slider command
func NewSliderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Open the image slider",
		Long: `Open the interactive image slider on the configured slide deck.

Slides come from .widgets/slides.yaml, or the built-in deck when the file
is missing. Autoplay advances every slider.interval_ms milliseconds.

Examples:
  # Use the configured interval
  widgets slider

  # Advance every two seconds
  widgets slider --interval 2s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, _ := cmd.Flags().GetDuration("interval")
			if cmd.Flags().Changed("interval") {
				if err := cli.ValidateInterval(interval); err != nil {
					return err
				}
			}
			return runInteractive(tui.ViewSlider, interval)
		},
	}

	cmd.Flags().Duration("interval", 0, "Autoplay interval (overrides settings)")

	return cmd
}
