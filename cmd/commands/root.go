package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-widgets/internal/cli"
	"github.com/pluqqy/pluqqy-widgets/pkg/tui"
)

// launchTUI runs the interactive app until the user quits; replaced in tests
var launchTUI = func(opts tui.AppOptions) error {
	app, err := tui.NewApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

// NewRootCommand creates the widgets command with all subcommands attached
func NewRootCommand(version string) *cobra.Command {
	var (
		quiet   bool
		noColor bool
	)

	root := &cobra.Command{
		Use:   "widgets",
		Short: "Terminal calculator and image slider",
		Long: `Widgets is a terminal calculator and image slider.

Running widgets without a subcommand opens the interactive TUI on the
calculator. Press tab to switch to the slider.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(quiet, noColor)
			return cli.ValidateOutputFormat(outputFormat(cmd))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(tui.ViewCalculator, 0)
		},
	}

	root.PersistentFlags().StringP("output", "o", string(cli.FormatText), "Output format (text, json, yaml)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols in messages")

	root.AddCommand(
		NewCalcCommand(),
		NewSliderCommand(),
		NewSlidesCommand(),
		NewInitCommand(),
		newVersionCommand(version),
	)

	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of widgets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "widgets version %s\n", version)
		},
	}
}

// runInteractive loads the project files and opens the TUI on view.
// A non-zero interval overrides the configured autoplay interval.
func runInteractive(view string, interval time.Duration) error {
	ctx := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()
	deck, err := ctx.LoadDeck()
	if err != nil {
		return fmt.Errorf("failed to load slides: %w", err)
	}

	return launchTUI(tui.AppOptions{
		Settings:  settings,
		Deck:      deck,
		StartView: view,
		Interval:  interval,
	})
}

// outputFormat returns the --output flag value, defaulting to text when the
// command runs without the root's persistent flags
func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(cli.FormatText)
	}
	return format
}
